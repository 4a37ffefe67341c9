package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults tests that all default values load correctly without any env vars.
func TestLoad_Defaults(t *testing.T) {
	// Clear all config-related env vars
	clearEnvVars(t)

	cfg, err := Load()
	require.NoError(t, err)

	// Codec defaults
	assert.Equal(t, "en-US", cfg.Codec.Locale, "default locale")
	assert.Empty(t, cfg.Codec.Pattern, "default pattern")
	assert.Empty(t, cfg.Codec.Parsers, "default parsers")
	assert.Equal(t, float64(60), cfg.Codec.Step, "default step")
	assert.Equal(t, 200*time.Millisecond, cfg.Codec.ReadyInterval, "default ready interval")
	assert.Equal(t, 200*time.Millisecond, cfg.Codec.ReadyMaxInterval, "default ready max interval")
	assert.Equal(t, float64(1), cfg.Codec.ReadyBackoff, "default ready backoff")
	assert.Zero(t, cfg.Codec.ReadyJitter, "default ready jitter")
	assert.Zero(t, cfg.Codec.ReadyAttempts, "default ready attempts")

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
	assert.Equal(t, "json", cfg.Logging.Format, "default log format")
	assert.False(t, cfg.Logging.EnableCaller, "default caller")
	assert.Equal(t, "timecodec", cfg.Logging.ServiceName, "default service name")
}

// TestLoad_EnvironmentOverrides tests that environment variables override defaults.
func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"CODEC_LOCALE":         "ar-EG",
		"CODEC_PATTERN":        "HH:mm:ss.SSS",
		"CODEC_PARSERS":        "HH'h'mm|H.mm|h:mm a",
		"CODEC_STEP":           "0.5",
		"CODEC_READY_INTERVAL": "50ms",
		"CODEC_READY_ATTEMPTS": "5",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "console",
		"LOG_CALLER":           "true",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ar-EG", cfg.Codec.Locale)
	assert.Equal(t, "HH:mm:ss.SSS", cfg.Codec.Pattern)
	assert.Equal(t, []string{"HH'h'mm", "H.mm", "h:mm a"}, cfg.Codec.Parsers)
	assert.Equal(t, 0.5, cfg.Codec.Step)
	assert.Equal(t, 50*time.Millisecond, cfg.Codec.ReadyInterval)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 5, cfg.Codec.ReadyAttempts)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.True(t, cfg.Logging.EnableCaller)
}

// TestLoad_PartialOverrides tests that only overridden values change.
func TestLoad_PartialOverrides(t *testing.T) {
	clearEnvVars(t)

	setEnvVars(t, map[string]string{
		"CODEC_LOCALE": "bg-BG",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bg-BG", cfg.Codec.Locale, "overridden locale")
	assert.Equal(t, float64(60), cfg.Codec.Step, "default step")
	assert.Equal(t, "info", cfg.Logging.Level, "default log level")
}

// TestLoad_Validation_Codec tests codec setting validation.
func TestLoad_Validation_Codec(t *testing.T) {
	tests := []struct {
		name    string
		vars    map[string]string
		wantErr bool
		errMsg  string
	}{
		{"extension locale", map[string]string{"CODEC_LOCALE": "ar-EG-u-nu-latn"}, false, ""},
		{"script locale", map[string]string{"CODEC_LOCALE": "zh-Hant-TW"}, false, ""},
		{"malformed locale", map[string]string{"CODEC_LOCALE": "not a tag!"}, true, "CODEC_LOCALE must be a BCP-47 language tag"},
		{"valid pattern", map[string]string{"CODEC_PATTERN": "h:mm a"}, false, ""},
		{"invalid pattern", map[string]string{"CODEC_PATTERN": "yyyy-MM-dd"}, true, "CODEC_PATTERN is invalid"},
		{"invalid parser accepted", map[string]string{"CODEC_PARSERS": "yyyy|HH:mm"}, false, ""},
		{"zero step", map[string]string{"CODEC_STEP": "0"}, false, ""},
		{"fractional step", map[string]string{"CODEC_STEP": "0.001"}, false, ""},
		{"negative step", map[string]string{"CODEC_STEP": "-1"}, true, "CODEC_STEP must not be negative"},
		{"zero ready interval", map[string]string{"CODEC_READY_INTERVAL": "0s"}, true, "CODEC_READY_INTERVAL must be positive"},
		{"negative ready interval", map[string]string{"CODEC_READY_INTERVAL": "-1s"}, true, "CODEC_READY_INTERVAL must be positive"},
		{"growing ready interval", map[string]string{"CODEC_READY_BACKOFF": "2", "CODEC_READY_MAX_INTERVAL": "2s"}, false, ""},
		{"max interval below interval", map[string]string{"CODEC_READY_INTERVAL": "1s"}, true, "CODEC_READY_MAX_INTERVAL must not be below"},
		{"shrinking backoff", map[string]string{"CODEC_READY_BACKOFF": "0.5"}, true, "CODEC_READY_BACKOFF must be at least 1"},
		{"jitter above one", map[string]string{"CODEC_READY_JITTER": "1.5"}, true, "CODEC_READY_JITTER must be between 0 and 1"},
		{"negative attempts", map[string]string{"CODEC_READY_ATTEMPTS": "-1"}, true, "CODEC_READY_ATTEMPTS must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, tt.vars)

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, cfg)
			}
		})
	}
}

// TestLoad_Validation_LogLevel tests log level validation.
func TestLoad_Validation_LogLevel(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"trace", true},
		{"INFO", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_LEVEL": tt.level})

			_, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL must be one of")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestLoad_Validation_LogFormat tests log format validation.
func TestLoad_Validation_LogFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"console", false},
		{"text", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			clearEnvVars(t)
			setEnvVars(t, map[string]string{"LOG_FORMAT": tt.format})

			_, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_FORMAT must be one of")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// TestLoad_ParseError tests that malformed values fail parsing.
func TestLoad_ParseError(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{"CODEC_STEP": "sixty"})

	cfg, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
	assert.Nil(t, cfg)
}

// TestCodecConfig_Readiness tests that readiness settings map onto the poll config.
func TestCodecConfig_Readiness(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"CODEC_READY_INTERVAL":     "10ms",
		"CODEC_READY_MAX_INTERVAL": "1s",
		"CODEC_READY_BACKOFF":      "2",
		"CODEC_READY_JITTER":       "0.1",
		"CODEC_READY_ATTEMPTS":     "8",
	})

	cfg, err := Load()
	require.NoError(t, err)

	poll := cfg.Codec.Readiness()
	assert.Equal(t, 8, poll.MaxAttempts)
	assert.Equal(t, 10*time.Millisecond, poll.InitialDelay)
	assert.Equal(t, time.Second, poll.MaxDelay)
	assert.Equal(t, float64(2), poll.Multiplier)
	assert.Equal(t, 0.1, poll.JitterFactor)
}

// Helper functions

// clearEnvVars clears all config-related environment variables.
func clearEnvVars(t *testing.T) {
	t.Helper()
	envVars := []string{
		"CODEC_LOCALE",
		"CODEC_PATTERN",
		"CODEC_PARSERS",
		"CODEC_STEP",
		"CODEC_READY_INTERVAL",
		"CODEC_READY_MAX_INTERVAL",
		"CODEC_READY_BACKOFF",
		"CODEC_READY_JITTER",
		"CODEC_READY_ATTEMPTS",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"LOG_CALLER",
		"SERVICE_NAME",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
}

// setEnvVars sets multiple environment variables.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		os.Setenv(k, v)
	}
}
