package config

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// Validate checks the struct tags on cfg.
func Validate(cfg *Config) error {
	return validator.New().Struct(cfg)
}

// Warnings lists settings that are legal but risky for the environment.
func Warnings(cfg *Config) []string {
	if !cfg.IsProduction() {
		return nil
	}

	var warnings []string
	if cfg.Redis.Password == "" {
		warnings = append(warnings, "REDIS_PASSWORD is empty in production")
	}
	if !cfg.Redis.TLS {
		warnings = append(warnings, "REDIS_TLS is disabled in production")
	}
	if len(cfg.AllowedOrigins) == 0 || slices.Contains(cfg.AllowedOrigins, "*") {
		warnings = append(warnings, "ALLOWED_ORIGINS accepts any origin in production")
	}
	return warnings
}
