package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/infrastructure/timeutil"
	"github.com/timefield/locale-time-codec/internal/numeral"
)

// Period tokens are whatever non-digit text trails the rendering, or leads it
// when nothing trails (Chinese, Korean). Whitespace inside is kept so that
// tokens such as "a. m." survive.
var (
	trailingRun = regexp.MustCompile(`[^` + numeral.DigitClass + `]+$`)
	leadingRun  = regexp.MustCompile(`^[^` + numeral.DigitClass + `]+`)
)

// probeOptions renders the probe instants with seconds, as the native
// default rendering does.
var probeOptions = domain.FormatOptions{Seconds: true}

// probe derives the locale profile from how formatter renders one instant in
// each half of the day.
func probe(formatter domain.LocaleFormatter, locale string) (domain.LocaleProfile, error) {
	pmText, err := formatter.FormatTime(locale, timeutil.PMProbeInstant(), probeOptions)
	if err != nil {
		return domain.LocaleProfile{}, fmt.Errorf("probe %q: %w", locale, err)
	}
	amText, err := formatter.FormatTime(locale, timeutil.AMProbeInstant(), probeOptions)
	if err != nil {
		return domain.LocaleProfile{}, fmt.Errorf("probe %q: %w", locale, err)
	}

	profile := domain.LocaleProfile{
		Locale:    locale,
		AMToken:   periodToken(amText),
		PMToken:   periodToken(pmText),
		Separator: separatorOf(pmText, periodToken(pmText)),
	}
	profile.UsesTwelveHour = profile.AMToken != "" && profile.PMToken != "" && profile.HasPeriodDistinction()
	return profile, nil
}

func periodToken(rendered string) string {
	run := trailingRun.FindString(rendered)
	if run == "" {
		run = leadingRun.FindString(rendered)
	}
	return strings.TrimSpace(run)
}

// separatorOf returns the first character that is neither a digit nor
// whitespace, after dropping a leading PM token.
func separatorOf(rendered, pmToken string) string {
	if pmToken != "" {
		rendered = strings.TrimPrefix(rendered, pmToken)
	}
	for _, r := range rendered {
		if !numeral.IsDigit(r) && !unicode.IsSpace(r) {
			return string(r)
		}
	}
	return ""
}
