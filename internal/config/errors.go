package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid backend endpoint settings
	// (for example, a base URL without scheme or host, or a non-positive
	// request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidUploadConfigs indicates an invalid upload size limit.
	ErrInvalidUploadConfigs = errors.New("invalid uploads configuration")
	// ErrInvalidSessionConfigs indicates invalid credential persistence
	// settings (for example, an empty credential file path).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
