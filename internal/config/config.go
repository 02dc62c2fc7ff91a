package config

import "time"

// StructuredConfig is the top-level configuration container for the SOL
// client. It aggregates all sub-configurations and is populated by merging
// values from environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All environment lookups carry the global "SOL_" prefix, so the backend
// address is selected by SOL_API_BASE_URL, the upload limit by
// SOL_UPLOADS_MAX_SIZE_MB, and so on.
type StructuredConfig struct {
	// API holds the backend endpoint settings used by the transport layer.
	API API `envPrefix:"API_"`

	// Uploads holds client-side file upload constraints.
	Uploads Uploads `envPrefix:"UPLOADS_"`

	// Session holds settings for the persisted credential.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the SOL_CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds the backend endpoint settings.
type API struct {
	// BaseURL is the root address of the SOL backend. Every endpoint path
	// is resolved against it. Defaults to the production deployment when
	// unset.
	// Env: SOL_API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the maximum duration for a single outbound request
	// (e.g. "30s", "1m").
	// Env: SOL_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Uploads holds client-side file upload constraints.
type Uploads struct {
	// MaxSizeMB is the largest file, in megabytes, the client will accept
	// for any multipart upload. Oversized files are rejected locally before
	// a request is issued.
	// Env: SOL_UPLOADS_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
}

// Session holds settings for the persisted credential.
type Session struct {
	// CredentialFile is the path of the file holding the bearer token
	// between runs. It is the only durable client-side state. Defaults to
	// a file under the user config directory.
	// Env: SOL_SESSION_CREDENTIAL_FILE
	CredentialFile string `env:"CREDENTIAL_FILE"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
