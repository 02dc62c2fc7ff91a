package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("SOL_CONFIG", "/path/to/config.json")
	t.Setenv("SOL_API_BASE_URL", "https://sol.example.com")
	t.Setenv("SOL_API_REQUEST_TIMEOUT", "45s")
	t.Setenv("SOL_UPLOADS_MAX_SIZE_MB", "25")
	t.Setenv("SOL_SESSION_CREDENTIAL_FILE", "/home/ana/.sol/credential")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "https://sol.example.com", cfg.API.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 25, cfg.Uploads.MaxSizeMB)
	assert.Equal(t, "/home/ana/.sol/credential", cfg.Session.CredentialFile)
}

func TestParseEnv_PartialFields(t *testing.T) {
	t.Setenv("SOL_API_BASE_URL", "http://localhost:8000")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Zero(t, cfg.API.RequestTimeout)
	assert.Zero(t, cfg.Uploads.MaxSizeMB)
	assert.Empty(t, cfg.Session.CredentialFile)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SOL_API_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
