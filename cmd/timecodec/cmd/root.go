// Package cmd implements the timecodec commands.
package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/timefield/locale-time-codec/internal/adapter/cldr"
	"github.com/timefield/locale-time-codec/internal/adapter/host"
	"github.com/timefield/locale-time-codec/internal/config"
	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/infrastructure/logger"
	"github.com/timefield/locale-time-codec/internal/usecase"
)

// codecFlags are the settings shared by every subcommand. Unset flags fall
// back to the configuration.
type codecFlags struct {
	locale  string
	pattern string
	parsers []string
	step    float64
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	flags := &codecFlags{}

	root := &cobra.Command{
		Use:   "timecodec",
		Short: "Format and parse localized times of day",
		Long: `timecodec renders times of day the way a locale writes them and reads
them back from free-form localized text.

Defaults come from the environment (CODEC_LOCALE, CODEC_PATTERN,
CODEC_PARSERS, CODEC_STEP) or a .env file.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.locale, "locale", "l", "", "BCP-47 locale (default: CODEC_LOCALE)")
	pf.StringVarP(&flags.pattern, "pattern", "p", "", "explicit pattern such as HH:mm:ss.SSS (default: CODEC_PATTERN)")
	pf.StringArrayVar(&flags.parsers, "parser", nil, "parse pattern, repeatable, tried in order (default: CODEC_PARSERS)")
	pf.Float64VarP(&flags.step, "step", "s", 0, "step in seconds: below 60 shows seconds, below 1 milliseconds (default: CODEC_STEP)")

	root.AddCommand(
		newProbeCmd(flags),
		newFormatCmd(flags),
		newParseCmd(flags),
		newLocalesCmd(),
	)
	return root
}

// newCodec builds a codec from configuration overridden by flags.
func newCodec(cmd *cobra.Command, flags *codecFlags) (*usecase.LocaleTimeCodec, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := setupLogger(cfg)

	locale, pattern, parsers, step := cfg.Codec.Locale, cfg.Codec.Pattern, cfg.Codec.Parsers, cfg.Codec.Step
	pf := cmd.Flags()
	if pf.Changed("locale") {
		locale = flags.locale
	}
	if pf.Changed("pattern") {
		pattern = flags.pattern
	}
	if pf.Changed("parser") {
		parsers = flags.parsers
	}
	if pf.Changed("step") {
		step = flags.step
	}

	h := host.NewMemory(step).
		WithContext(commandContext(cmd)).
		WithReady(func() bool { return true }, cfg.Codec.Readiness()).
		WithLogger(log)

	codec := usecase.NewLocaleTimeCodec(cldr.NewFormatter(), h, log)

	err = codec.Configure(locale, pattern, parsers)
	var localeErr *domain.LocaleError
	if errors.As(err, &localeErr) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", localeErr)
		err = nil
	}
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("locale", codec.Locale()).
		Float64("step", step).
		Msg("Codec configured")
	return codec, nil
}

// setupLogger configures the global zerolog level and returns the codec
// logger based on config.
func setupLogger(cfg *config.Config) *logger.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Set log level from config
	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	return logger.New(cfg.Logging)
}

// commandContext returns the command context or a background context when
// the command runs outside Execute, as in tests.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
