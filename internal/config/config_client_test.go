package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsEverything(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, int64(DefaultMaxUploadMB*1024*1024), cfg.Uploads.MaxUploadBytes)
	assert.NotEmpty(t, cfg.Session.CredentialFile)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		API:     ClientAPI{BaseURL: "http://localhost:8000", RequestTimeout: time.Minute},
		Uploads: ClientUploads{MaxUploadBytes: 512},
		Session: ClientSession{CredentialFile: "/tmp/cred"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, time.Minute, cfg.API.RequestTimeout)
	assert.Equal(t, int64(512), cfg.Uploads.MaxUploadBytes)
	assert.Equal(t, "/tmp/cred", cfg.Session.CredentialFile)
}

func TestValidate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			API:     ClientAPI{BaseURL: "https://sol.example.com", RequestTimeout: 30 * time.Second},
			Uploads: ClientUploads{MaxUploadBytes: 1024},
			Session: ClientSession{CredentialFile: "/tmp/cred"},
		}
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid().validate())
	})

	t.Run("base url without scheme", func(t *testing.T) {
		cfg := valid()
		cfg.API.BaseURL = "sol.example.com"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAPIConfigs)
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := valid()
		cfg.API.RequestTimeout = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAPIConfigs)
	})

	t.Run("zero upload limit", func(t *testing.T) {
		cfg := valid()
		cfg.Uploads.MaxUploadBytes = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidUploadConfigs)
	})

	t.Run("empty credential file", func(t *testing.T) {
		cfg := valid()
		cfg.Session.CredentialFile = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidSessionConfigs)
	})
}
