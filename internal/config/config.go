// Package config loads deployment configuration from a YAML file with
// environment variable overrides (TUTORLY_*). Engine thresholds are code
// constants, not configuration; config covers deployment concerns only.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the deployment configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default XDG
	// location (see store.DefaultDBPath).
	DBPath string `koanf:"db_path"`

	// Listen is the HTTP listen address for the serve command.
	Listen string `koanf:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat is json or console.
	LogFormat string `koanf:"log_format"`

	// PatternCacheTTL bounds how long in-memory cached patterns are
	// served before expiring. Zero disables expiry.
	PatternCacheTTL time.Duration `koanf:"pattern_cache_ttl"`
}

// DefaultConfig returns the configuration used when no file or overrides
// are present.
func DefaultConfig() *Config {
	return &Config{
		Listen:          ":8080",
		LogLevel:        "info",
		LogFormat:       "json",
		PatternCacheTTL: 15 * time.Minute,
	}
}

// Load reads configuration from the given YAML file (if it exists), then
// overlays TUTORLY_* environment variables.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// TUTORLY_DB_PATH -> db_path, TUTORLY_LOG_LEVEL -> log_level, etc.
	if err := k.Load(env.Provider("TUTORLY_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TUTORLY_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, cfg.Validate()
}

var validLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return fmt.Errorf("invalid log_format %q: must be json or console", c.LogFormat)
	}
	if c.PatternCacheTTL < 0 {
		return fmt.Errorf("pattern_cache_ttl must be non-negative")
	}
	return nil
}
