// Package logger wraps zerolog for the codec and the command line tool.
// Output goes to stderr so that results on stdout stay machine readable.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName is attached to every entry as "service"
	ServiceName string `env:"SERVICE_NAME" envDefault:"timecodec"`
}

// Logger wraps zerolog.Logger with codec-specific context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stderr.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stderr)
}

// NewWithOutput creates a Logger writing to output. Tests pass a buffer.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	ctx := zerolog.New(writerFor(cfg.Format, output)).
		Level(levelOf(cfg.Level)).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}
	return &Logger{Logger: ctx.Logger()}
}

// levelOf parses a level name; unknown names log at info.
func levelOf(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return zerolog.InfoLevel
	}
	return level
}

func writerFor(format string, output io.Writer) io.Writer {
	if format != "console" {
		return output
	}
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
	}
}

// WithContext returns a new logger with an additional string field.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithCodec tags entries with a codec instance id.
func (l *Logger) WithCodec(codecID string) *Logger {
	return l.WithContext("codec_id", codecID)
}

// WithLocale tags entries with the locale a codec is configured for.
func (l *Logger) WithLocale(locale string) *Logger {
	return l.WithContext("locale", locale)
}

// Nop returns a disabled logger that produces no output.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}
