// Package mock provides test doubles for the locale time codec.
// These doubles replay recorded locale behaviour and let tests control when
// a host becomes ready.
package mock

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/numeral"
)

// LocaleFixture is one recorded native rendering layout.
type LocaleFixture struct {
	Locale      string `yaml:"locale"`
	Hour12      bool   `yaml:"hour12"`
	PadHour     bool   `yaml:"padHour"`
	Separator   string `yaml:"separator"`
	AM          string `yaml:"am"`
	PM          string `yaml:"pm"`
	PeriodFirst bool   `yaml:"periodFirst"`
	Gap         string `yaml:"gap"`
	Suffix      string `yaml:"suffix"`
	Numerals    string `yaml:"numerals"`

	// Profile is what the probe should derive from this layout
	Profile ExpectedProfile `yaml:"profile"`

	// Cases are exact format/parse expectations
	Cases []Case `yaml:"cases"`
}

// ExpectedProfile mirrors domain.LocaleProfile for fixtures.
type ExpectedProfile struct {
	AM         string `yaml:"am"`
	PM         string `yaml:"pm"`
	Separator  string `yaml:"separator"`
	TwelveHour bool   `yaml:"twelveHour"`
}

// Case is one recorded rendering of a time at a step.
type Case struct {
	Time      string  `yaml:"time"`
	Step      float64 `yaml:"step"`
	Text      string  `yaml:"text"`
	ParseOnly bool    `yaml:"parseOnly"`
	Note      string  `yaml:"note"`
}

// ExpectedLocaleProfile converts the profile expectation.
func (f LocaleFixture) ExpectedLocaleProfile() domain.LocaleProfile {
	return domain.LocaleProfile{
		Locale:         f.Locale,
		AMToken:        f.Profile.AM,
		PMToken:        f.Profile.PM,
		Separator:      f.Profile.Separator,
		UsesTwelveHour: f.Profile.TwelveHour,
	}
}

// render lays t out the way the recorded locale does.
func (f LocaleFixture) render(t time.Time, seconds bool) string {
	hour := t.Hour()
	if f.Hour12 {
		hour %= 12
		if hour == 0 {
			hour = 12
		}
	}

	h := strconv.Itoa(hour)
	if f.PadHour && len(h) < 2 {
		h = "0" + h
	}

	var b strings.Builder
	b.WriteString(h)
	b.WriteString(f.Separator)
	fmt.Fprintf(&b, "%02d", t.Minute())
	if seconds {
		b.WriteString(f.Separator)
		fmt.Fprintf(&b, "%02d", t.Second())
	}
	numbers := b.String()
	if f.Numerals == "arab" {
		numbers = numeral.ToArabicIndic(numbers)
	}

	if !f.Hour12 {
		return numbers + f.Suffix
	}

	period := f.AM
	if t.Hour() >= 12 {
		period = f.PM
	}
	if f.PeriodFirst {
		return period + f.Gap + numbers + f.Suffix
	}
	return numbers + f.Gap + period + f.Suffix
}

// ParseLocaleFixtures decodes a fixture document.
func ParseLocaleFixtures(data []byte) ([]LocaleFixture, error) {
	var doc struct {
		Locales []LocaleFixture `yaml:"locales"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode locale fixtures: %w", err)
	}
	return doc.Locales, nil
}

// Formatter is a domain.LocaleFormatter that replays fixtures.
type Formatter struct {
	fixtures  map[string]LocaleFixture
	err       error
	callCount int
	mu        sync.Mutex
}

// NewFormatter creates a formatter serving the given fixtures.
func NewFormatter(fixtures ...LocaleFixture) *Formatter {
	f := &Formatter{fixtures: make(map[string]LocaleFixture, len(fixtures))}
	for _, fx := range fixtures {
		f.fixtures[fx.Locale] = fx
	}
	return f
}

// WithError configures the formatter to fail every call with err.
func (f *Formatter) WithError(err error) *Formatter {
	f.err = err
	return f
}

// FormatTime implements domain.LocaleFormatter.FormatTime.
func (f *Formatter) FormatTime(locale string, t time.Time, opts domain.FormatOptions) (string, error) {
	f.mu.Lock()
	f.callCount++
	f.mu.Unlock()

	if f.err != nil {
		return "", f.err
	}

	fx, ok := f.fixtures[locale]
	if !ok {
		return "", fmt.Errorf("%w: no fixture for %q", domain.ErrUnsupportedLocale, locale)
	}
	return fx.render(t, opts.Seconds), nil
}

// CallCount returns the number of times FormatTime was called.
func (f *Formatter) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.callCount
}

// Reset resets the call count to zero.
func (f *Formatter) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callCount = 0
}

// Ensure Formatter implements domain.LocaleFormatter at compile time.
var _ domain.LocaleFormatter = (*Formatter)(nil)
