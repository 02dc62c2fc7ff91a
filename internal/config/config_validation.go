package config

import "net/url"

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAPIConfigs
	}
	if cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Uploads.MaxUploadBytes <= 0 {
		return ErrInvalidUploadConfigs
	}

	if cfg.Session.CredentialFile == "" {
		return ErrInvalidSessionConfigs
	}

	return nil
}
