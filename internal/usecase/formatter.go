package usecase

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/infrastructure/timeutil"
	"github.com/timefield/locale-time-codec/internal/pattern"
)

// timeStringFormatter renders a time of day either through an explicit
// pattern or through the native locale formatter.
type timeStringFormatter struct {
	native  domain.LocaleFormatter
	locale  string
	profile domain.LocaleProfile
	pattern *pattern.Pattern
	periods pattern.Periods

	// Options are recomputed only when the step changes.
	cachedStep    float64
	cachedOptions *domain.FormatOptions
}

func newTimeStringFormatter(native domain.LocaleFormatter, profile domain.LocaleProfile, p *pattern.Pattern, periods pattern.Periods) *timeStringFormatter {
	return &timeStringFormatter{
		native:  native,
		locale:  profile.Locale,
		profile: profile,
		pattern: p,
		periods: periods,
	}
}

// format renders t at the granularity of step. A nil t renders as "".
func (f *timeStringFormatter) format(t *domain.TimeOfDay, step float64) (string, error) {
	if t == nil {
		return "", nil
	}
	if err := t.Validate(); err != nil {
		return "", err
	}

	instant := timeutil.InstantOf(*t)
	if f.pattern != nil {
		return f.pattern.Format(instant, f.periods), nil
	}

	text, err := f.native.FormatTime(f.locale, instant, f.options(step))
	if err != nil {
		return "", fmt.Errorf("format %s in %q: %w", t, f.locale, err)
	}

	if domain.GranularityFromStep(step).Milliseconds {
		text = spliceMilliseconds(text, t.Milliseconds, f.profile.AMToken, f.profile.PMToken)
	}
	return text, nil
}

func (f *timeStringFormatter) options(step float64) domain.FormatOptions {
	if f.cachedOptions == nil || f.cachedStep != step {
		opts := domain.GranularityFromStep(step).FormatOptions()
		f.cachedOptions = &opts
		f.cachedStep = step
	}
	return *f.cachedOptions
}

// spliceMilliseconds inserts ".mmm" before a trailing period token, keeping
// the gap between the numbers and the token, or appends it.
func spliceMilliseconds(text string, milliseconds int, tokens ...string) string {
	fraction := fmt.Sprintf(".%03d", milliseconds)

	for _, token := range tokens {
		if token == "" || !strings.HasSuffix(text, token) {
			continue
		}
		head := strings.TrimSuffix(text, token)
		numbers := strings.TrimRightFunc(head, unicode.IsSpace)
		return numbers + fraction + head[len(numbers):] + token
	}
	return text + fraction
}
