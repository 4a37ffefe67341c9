// Package usecase contains the locale time codec. It learns how a locale
// writes a time of day from the native formatter's output, then formats and
// parses time strings with that knowledge or with explicit patterns.
//
// Day period names used by explicit patterns come from the derived profile,
// not from a table keyed by language. The language subtag is only reported
// through Language and in log entries.
package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/infrastructure/logger"
	"github.com/timefield/locale-time-codec/internal/pattern"
)

// DefaultLocale is used before any locale is set and in place of
// unsupported locales.
const DefaultLocale = "en-US"

// ErrNotConfigured is returned when the codec could not derive a profile
// even for DefaultLocale.
var ErrNotConfigured = errors.New("codec is not configured")

// LocaleTimeCodec formats and parses times of day for one host input.
// It is not safe for concurrent use.
type LocaleTimeCodec struct {
	id     string
	native domain.LocaleFormatter
	host   domain.Host
	log    *logger.Logger

	configured bool
	locale     string
	patternSrc string
	parsers    []string

	profile   domain.LocaleProfile
	parser    *timeStringParser
	formatter *timeStringFormatter
}

// NewLocaleTimeCodec creates a codec over the native formatter. The host may
// be nil, in which case the step is zero and no previous value is carried
// over on reconfiguration. A nil log discards output.
func NewLocaleTimeCodec(native domain.LocaleFormatter, host domain.Host, log *logger.Logger) *LocaleTimeCodec {
	if log == nil {
		log = logger.Nop()
	}
	id := uuid.NewString()
	return &LocaleTimeCodec{
		id:     id,
		native: native,
		host:   host,
		log:    log.WithCodec(id),
	}
}

// ID returns the codec instance id used in log entries.
func (c *LocaleTimeCodec) ID() string {
	return c.id
}

// SetLocale switches the locale, keeping the pattern and parsers.
// An unsupported locale is replaced by DefaultLocale and reported as a
// *domain.LocaleError; the codec stays usable.
func (c *LocaleTimeCodec) SetLocale(locale string) error {
	return c.Configure(locale, c.patternSrc, c.parsers)
}

// SetPattern switches the explicit pattern. An empty pattern returns to
// native formatting.
func (c *LocaleTimeCodec) SetPattern(source string) error {
	return c.Configure(c.currentLocale(), source, c.parsers)
}

// SetParsers replaces the ordered list of parse patterns.
func (c *LocaleTimeCodec) SetParsers(parsers ...string) error {
	return c.Configure(c.currentLocale(), c.patternSrc, parsers)
}

// Configure applies locale, pattern and parsers together. The profile is
// derived again and the parse memo is dropped. A value the host already
// holds is re-rendered with the new settings once the host is ready.
//
// Returns a wrapped domain.ErrInvalidPattern error, leaving the codec
// unchanged, when source does not compile.
func (c *LocaleTimeCodec) Configure(locale, source string, parsers []string) error {
	var compiled *pattern.Pattern
	if source != "" {
		p, err := pattern.Compile(source)
		if err != nil {
			return err
		}
		compiled = p
	}

	previous := c.previousValue()

	var localeErr error
	profile, err := probe(c.native, locale)
	if err != nil {
		c.log.WithLocale(locale).Warn().
			Err(err).
			Str("fallback", DefaultLocale).
			Msg("Locale not supported, falling back")
		localeErr = domain.NewLocaleError(locale, DefaultLocale, err)

		locale = DefaultLocale
		profile, err = probe(c.native, locale)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNotConfigured, err)
		}
	}

	periods := pattern.DefaultPeriods
	if profile.UsesTwelveHour {
		periods = pattern.Periods{AM: profile.AMToken, PM: profile.PMToken}
	}

	c.locale = locale
	c.patternSrc = source
	c.parsers = append([]string(nil), parsers...)
	c.profile = profile
	c.parser = newTimeStringParser(profile, periods, c.parsers, source, c.log)
	c.formatter = newTimeStringFormatter(c.native, profile, compiled, periods)
	c.configured = true

	c.log.WithLocale(locale).Debug().
		Str("language", languageOf(locale)).
		Str("am_token", profile.AMToken).
		Str("pm_token", profile.PMToken).
		Str("separator", profile.Separator).
		Bool("twelve_hour", profile.UsesTwelveHour).
		Str("pattern", source).
		Int("parsers", len(c.parsers)).
		Msg("Locale profile derived")

	c.carryOver(previous)
	return localeErr
}

// FormatTime renders t as localized text. A nil t renders as "".
func (c *LocaleTimeCodec) FormatTime(t *domain.TimeOfDay) (string, error) {
	if !c.ensureConfigured() {
		return "", ErrNotConfigured
	}
	return c.formatter.format(t, c.step())
}

// ParseTime reads a time of day from localized text. It returns nil when the
// text cannot be read. Parsing the same text twice in a row returns the same
// pointer.
func (c *LocaleTimeCodec) ParseTime(text string) *domain.TimeOfDay {
	if !c.ensureConfigured() {
		return nil
	}
	return c.parser.parse(text, domain.GranularityFromStep(c.step()))
}

// Profile returns the derived locale profile.
func (c *LocaleTimeCodec) Profile() domain.LocaleProfile {
	c.ensureConfigured()
	return c.profile
}

// Locale returns the locale in effect, after any fallback.
func (c *LocaleTimeCodec) Locale() string {
	return c.currentLocale()
}

// Language returns the language subtag of the locale in effect.
func (c *LocaleTimeCodec) Language() string {
	return languageOf(c.currentLocale())
}

// Pattern returns the explicit pattern, or "" for native formatting.
func (c *LocaleTimeCodec) Pattern() string {
	return c.patternSrc
}

// Parsers returns a copy of the parse pattern list.
func (c *LocaleTimeCodec) Parsers() []string {
	return append([]string(nil), c.parsers...)
}

// Stats reports parser work since the last reconfiguration.
func (c *LocaleTimeCodec) Stats() ParseStats {
	if c.parser == nil {
		return ParseStats{}
	}
	return c.parser.stats
}

func (c *LocaleTimeCodec) ensureConfigured() bool {
	if c.configured {
		return true
	}
	if err := c.Configure(DefaultLocale, "", nil); err != nil {
		c.log.Error().Err(err).Msg("Default configuration failed")
		return false
	}
	return true
}

func (c *LocaleTimeCodec) currentLocale() string {
	if c.locale == "" {
		return DefaultLocale
	}
	return c.locale
}

func (c *LocaleTimeCodec) step() float64 {
	if c.host == nil {
		return 0
	}
	return c.host.Step()
}

// previousValue reads the host's committed value with the settings about to
// be replaced. Before the first configuration the value is in canonical
// H:MM[:SS[.fff]] form.
func (c *LocaleTimeCodec) previousValue() *domain.TimeOfDay {
	if c.host == nil {
		return nil
	}
	value := c.host.Value()
	if value == "" {
		return nil
	}

	if !c.configured {
		t, err := domain.ParseClock(value)
		if err != nil {
			c.log.Debug().Err(err).Str("value", value).Msg("Previous value not in canonical form")
			return nil
		}
		return &t
	}

	t := c.parser.parse(value, domain.GranularityFromStep(c.step()))
	if t == nil {
		return nil
	}
	copied := *t
	return &copied
}

// carryOver renders the previous value with the current settings and pushes
// it to the host display once the host is ready. The text is computed now, so
// the callback touches only the host and may run on any goroutine.
func (c *LocaleTimeCodec) carryOver(previous *domain.TimeOfDay) {
	if previous == nil || c.host == nil {
		return
	}

	text, err := c.formatter.format(previous, c.step())
	if err != nil {
		c.log.Warn().Err(err).Str("value", previous.String()).Msg("Failed to re-render previous value")
		return
	}

	host := c.host
	host.WhenReady(func() {
		if host.DisplayValue() != text {
			host.SetDisplayValue(text)
		}
	})
}

// languageOf returns the part of a locale before the first '-'.
func languageOf(locale string) string {
	language, _, _ := strings.Cut(locale, "-")
	return language
}
