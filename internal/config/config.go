// Package config provides centralized configuration management for the
// generator. It loads settings from environment variables with sensible
// defaults and validates the result on startup to fail fast on
// misconfiguration. CLI flags take precedence over environment values.
package config

import (
	"fmt"
	"strings"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Generator GeneratorConfig
	Logging   LoggingConfig
}

// GeneratorConfig holds generation run settings. Each field has a
// matching CLI flag which, when set, overrides the environment value.
type GeneratorConfig struct {
	// Input is the catalogue CSV path (required unless --input is given)
	Input string `env:"CARDSMITH_INPUT"`

	// OutDir is the output directory, created if absent (default: out)
	OutDir string `env:"CARDSMITH_OUTDIR" default:"out"`

	// Langs are the requested language codes (default: en,fa)
	Langs []string `env:"CARDSMITH_LANGS" default:"en,fa"`

	// MaxTags caps the hashtag list per record (default: 18)
	MaxTags int `env:"CARDSMITH_MAX_TAGS" default:"18"`

	// Seed seeds the random source; 0 means seed from the clock
	Seed int64 `env:"CARDSMITH_SEED" default:"0"`

	// Pack is an optional copy-pack YAML path
	Pack string `env:"CARDSMITH_PACK"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Generator.MaxTags <= 0 {
		errs = append(errs, "CARDSMITH_MAX_TAGS must be positive")
	}
	if len(c.Generator.Langs) == 0 {
		errs = append(errs, "CARDSMITH_LANGS must name at least one language code")
	}
	if c.Generator.OutDir == "" {
		errs = append(errs, "CARDSMITH_OUTDIR must not be empty")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
