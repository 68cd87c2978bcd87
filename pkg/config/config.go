// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/cbodonnell/grouphell/pkg/game/types"
	"github.com/cbodonnell/grouphell/pkg/log"
	"golang.org/x/text/language"
)

type Config struct {
	// LogLevel is one of error, warn, info, debug or trace
	LogLevel string `env:"GROUPHELL_LOG_LEVEL" envDefault:"warn"`
	// DatabaseURL selects the archive. Empty disables archiving
	DatabaseURL string `env:"GROUPHELL_DATABASE_URL"`
	// Seed seeds role sampling. Zero draws a random seed
	Seed int64 `env:"GROUPHELL_SEED" envDefault:"0"`
	// Language is the BCP 47 tag of the narrator language
	Language string `env:"GROUPHELL_LANGUAGE" envDefault:"en-US"`
	// ArchiveBuffer is the capacity of the archive record channel
	ArchiveBuffer int `env:"GROUPHELL_ARCHIVE_BUFFER" envDefault:"64"`
}

// Load parses the process environment and validates the result.
func Load() (*Config, error) {
	return LoadFrom(env.ToMap(os.Environ()))
}

// LoadFrom parses vars instead of the process environment.
func LoadFrom(vars map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return nil, types.NewConfigurationError("parse env: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the environment parser cannot.
func (c *Config) Validate() error {
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return types.NewConfigurationError("GROUPHELL_LOG_LEVEL: %v", err)
	}
	if _, err := c.LanguageTag(); err != nil {
		return err
	}
	if c.ArchiveBuffer <= 0 {
		return types.NewConfigurationError("GROUPHELL_ARCHIVE_BUFFER must be positive, got %d", c.ArchiveBuffer)
	}
	return nil
}

// LanguageTag returns the parsed narrator language.
func (c *Config) LanguageTag() (language.Tag, error) {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.Und, types.NewConfigurationError("GROUPHELL_LANGUAGE %q: %v", c.Language, err)
	}
	return tag, nil
}

// ArchiveEnabled reports whether records should be stored.
func (c *Config) ArchiveEnabled() bool {
	return c.DatabaseURL != ""
}

func (c *Config) String() string {
	return fmt.Sprintf("log_level=%s archive=%t seed=%d language=%s archive_buffer=%d",
		c.LogLevel, c.ArchiveEnabled(), c.Seed, c.Language, c.ArchiveBuffer)
}
