// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"github.com/timefield/locale-time-codec/internal/infrastructure/logger"
	"github.com/timefield/locale-time-codec/internal/infrastructure/retry"
	"github.com/timefield/locale-time-codec/internal/pattern"
)

// Config holds all application configuration.
type Config struct {
	Codec   CodecConfig
	Logging logger.Config
}

// CodecConfig holds the default codec settings.
type CodecConfig struct {
	// Locale is a BCP-47 identifier such as "en-US" or "ar-EG-u-nu-latn"
	Locale string `env:"CODEC_LOCALE" envDefault:"en-US"`

	// Pattern is an explicit format pattern; empty means native formatting
	Pattern string `env:"CODEC_PATTERN"`

	// Parsers are parse patterns tried in order, separated by '|'
	Parsers []string `env:"CODEC_PARSERS" envSeparator:"|"`

	// Step is the input granularity in seconds; 0 means no step
	Step float64 `env:"CODEC_STEP" envDefault:"60"`

	// ReadyInterval is the first delay between host readiness checks
	ReadyInterval time.Duration `env:"CODEC_READY_INTERVAL" envDefault:"200ms"`

	// ReadyMaxInterval caps the delay between readiness checks
	ReadyMaxInterval time.Duration `env:"CODEC_READY_MAX_INTERVAL" envDefault:"200ms"`

	// ReadyBackoff multiplies the delay after each failed check; 1 polls at
	// a fixed interval
	ReadyBackoff float64 `env:"CODEC_READY_BACKOFF" envDefault:"1"`

	// ReadyJitter adds up to this fraction of the delay at random
	ReadyJitter float64 `env:"CODEC_READY_JITTER" envDefault:"0"`

	// ReadyAttempts bounds the readiness checks; 0 polls until the command ends
	ReadyAttempts int `env:"CODEC_READY_ATTEMPTS" envDefault:"0"`
}

// Readiness returns the polling settings for host readiness.
func (c CodecConfig) Readiness() retry.Config {
	return retry.Config{
		MaxAttempts:  c.ReadyAttempts,
		InitialDelay: c.ReadyInterval,
		MaxDelay:     c.ReadyMaxInterval,
		Multiplier:   c.ReadyBackoff,
		JitterFactor: c.ReadyJitter,
	}
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if _, err := language.Parse(cfg.Codec.Locale); err != nil {
		return fmt.Errorf("CODEC_LOCALE must be a BCP-47 language tag, got %q: %v", cfg.Codec.Locale, err)
	}

	// Parsers are not checked here: an invalid parser is skipped at parse time
	if cfg.Codec.Pattern != "" {
		if _, err := pattern.Compile(cfg.Codec.Pattern); err != nil {
			return fmt.Errorf("CODEC_PATTERN is invalid: %w", err)
		}
	}

	if cfg.Codec.Step < 0 {
		return fmt.Errorf("CODEC_STEP must not be negative, got %g", cfg.Codec.Step)
	}
	if cfg.Codec.ReadyInterval <= 0 {
		return fmt.Errorf("CODEC_READY_INTERVAL must be positive")
	}
	if cfg.Codec.ReadyMaxInterval < cfg.Codec.ReadyInterval {
		return fmt.Errorf("CODEC_READY_MAX_INTERVAL must not be below CODEC_READY_INTERVAL")
	}
	if cfg.Codec.ReadyBackoff < 1 {
		return fmt.Errorf("CODEC_READY_BACKOFF must be at least 1, got %g", cfg.Codec.ReadyBackoff)
	}
	if cfg.Codec.ReadyJitter < 0 || cfg.Codec.ReadyJitter > 1 {
		return fmt.Errorf("CODEC_READY_JITTER must be between 0 and 1, got %g", cfg.Codec.ReadyJitter)
	}
	if cfg.Codec.ReadyAttempts < 0 {
		return fmt.Errorf("CODEC_READY_ATTEMPTS must not be negative, got %d", cfg.Codec.ReadyAttempts)
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	return nil
}
