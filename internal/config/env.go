package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// envPrefix is the global prefix applied to every environment lookup, so all
// client variables live in one namespace (SOL_API_BASE_URL, SOL_CONFIG, ...).
const envPrefix = "SOL_"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
