package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EarlierSourcesWin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{API: API{BaseURL: "https://from-env"}},
		&StructuredConfig{API: API{BaseURL: "https://from-flags", RequestTimeout: 10 * time.Second}},
		&StructuredConfig{
			API:     API{BaseURL: "https://from-json", RequestTimeout: 99 * time.Second},
			Uploads: Uploads{MaxSizeMB: 25},
		},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	// The env value survives; later sources only fill gaps.
	assert.Equal(t, "https://from-env", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 25, cfg.Uploads.MaxSizeMB)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("env exploded")

	_, err := b.build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env exploded")
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestWithJSON_BadPathFailsBuild(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/not/here.json"})

	_, err := b.withJSON().build()

	require.Error(t, err)
}
