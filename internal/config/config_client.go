package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied when neither environment, flags, nor the JSON file set a
// value. The base URL points at the production backend, matching the web
// client's fallback.
const (
	DefaultBaseURL        = "https://sol-backend-production.up.railway.app"
	DefaultRequestTimeout = 30 * time.Second
	DefaultMaxUploadMB    = 10
)

// ClientAPI holds the resolved backend endpoint settings.
type ClientAPI struct {
	// BaseURL is the root address of the SOL backend.
	BaseURL string
	// RequestTimeout is the per-request deadline for outbound calls.
	RequestTimeout time.Duration
}

// ClientUploads holds the resolved upload constraints.
type ClientUploads struct {
	// MaxUploadBytes is the upload size ceiling in bytes.
	MaxUploadBytes int64
}

// ClientSession holds the resolved credential persistence settings.
type ClientSession struct {
	// CredentialFile is where the bearer token survives between runs.
	CredentialFile string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig], with defaults applied.
type ClientConfig struct {
	// API contains backend endpoint settings.
	API ClientAPI
	// Uploads contains file upload constraints.
	Uploads ClientUploads
	// Session contains credential persistence settings.
	Session ClientSession
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration, filling in defaults for anything left unset.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API: ClientAPI{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Uploads: ClientUploads{
			MaxUploadBytes: int64(cfg.Uploads.MaxSizeMB) * 1024 * 1024,
		},
		Session: ClientSession{
			CredentialFile: cfg.Session.CredentialFile,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = DefaultBaseURL
	}
	if cfg.API.RequestTimeout <= 0 {
		cfg.API.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Uploads.MaxUploadBytes <= 0 {
		cfg.Uploads.MaxUploadBytes = DefaultMaxUploadMB * 1024 * 1024
	}
	if cfg.Session.CredentialFile == "" {
		cfg.Session.CredentialFile = defaultCredentialFile()
	}
}

// defaultCredentialFile resolves to <user config dir>/sol/credential, the
// closest OS equivalent of the browser storage key the web client uses.
// Falls back to a dotfile in the working directory when the config dir is
// unknown.
func defaultCredentialFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".sol-credential"
	}
	return filepath.Join(dir, "sol", "credential")
}
