// Package config loads process settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every variable the game reads.
const EnvPrefix = "SCC_"

// ParseEnv loads configuration from environment variables.
//
// Struct tags name variables without the prefix; ParseEnv applies EnvPrefix,
// so `env:"SEED"` reads SCC_SEED.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
