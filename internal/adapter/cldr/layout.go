package cldr

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/locales"

	"github.com/timefield/locale-time-codec/internal/infrastructure/timeutil"
	"github.com/timefield/locale-time-codec/internal/pattern"
)

// The generated translators print hour 0 of a 12-hour clock as "0" and carry
// period names from an older CLDR release. Rendering goes through a pattern
// derived from two sample renderings instead, which fixes the hour and lets
// the period names be corrected.
var (
	pmSample = timeutil.Instant(13, 4, 5, 0)
	amSample = timeutil.Instant(1, 4, 5, 0)
)

// periodNames replaces day period names that the generated tables got wrong,
// keyed by base language.
var periodNames = map[string]pattern.Periods{
	"en": {AM: "AM", PM: "PM"},
	"ko": {AM: "오전", PM: "오후"},
}

// layout is how one CLDR table writes a time of day.
type layout struct {
	short   *pattern.Pattern
	medium  *pattern.Pattern
	periods pattern.Periods
}

func (l *layout) forSeconds(seconds bool) *pattern.Pattern {
	if seconds {
		return l.medium
	}
	return l.short
}

// deriveLayout builds the short and medium patterns of a translator.
func deriveLayout(translator locales.Translator) (*layout, error) {
	short, shortPeriods, err := derivePattern(translator.FmtTimeShort, false)
	if err != nil {
		return nil, fmt.Errorf("short time of %s: %w", translator.Locale(), err)
	}
	medium, mediumPeriods, err := derivePattern(translator.FmtTimeMedium, true)
	if err != nil {
		return nil, fmt.Errorf("medium time of %s: %w", translator.Locale(), err)
	}

	periods := mediumPeriods
	if periods == (pattern.Periods{}) {
		periods = shortPeriods
	}
	if periods != (pattern.Periods{}) {
		base, _, _ := strings.Cut(translator.Locale(), "_")
		if names, ok := periodNames[base]; ok {
			periods = names
		}
	}

	return &layout{short: short, medium: medium, periods: periods}, nil
}

type run struct {
	text   string
	digits bool
}

// derivePattern turns the renderings of 13:04:05 and 01:04:05 into a pattern.
// Number runs are hour, minute and second in order; text that differs between
// the two renderings is the day period.
func derivePattern(render func(time.Time) string, seconds bool) (*pattern.Pattern, pattern.Periods, error) {
	pm := runsOf(strings.TrimSpace(render(pmSample)))
	am := runsOf(strings.TrimSpace(render(amSample)))
	if len(pm) != len(am) {
		return nil, pattern.Periods{}, fmt.Errorf("renderings %v and %v do not line up", pm, am)
	}

	var (
		parts     []string
		periods   pattern.Periods
		hourPart  = -1
		hourWidth int
		twelve    bool
		numbers   int
	)
	for i, r := range pm {
		if r.digits != am[i].digits {
			return nil, pattern.Periods{}, fmt.Errorf("renderings %v and %v do not line up", pm, am)
		}

		if r.digits {
			switch numbers {
			case 0:
				switch r.text {
				case "13":
				case "1", "01":
					twelve = true
				default:
					return nil, pattern.Periods{}, fmt.Errorf("unexpected hour %q", r.text)
				}
				hourPart, hourWidth = len(parts), len(am[i].text)
				parts = append(parts, "")
			case 1:
				parts = append(parts, strings.Repeat("m", len(r.text)))
			case 2:
				parts = append(parts, strings.Repeat("s", len(r.text)))
			default:
				return nil, pattern.Periods{}, fmt.Errorf("unexpected number %q", r.text)
			}
			numbers++
			continue
		}

		if r.text == am[i].text {
			parts = append(parts, quote(r.text))
			continue
		}
		if periods != (pattern.Periods{}) {
			return nil, pattern.Periods{}, fmt.Errorf("more than one day period in %v", pm)
		}
		lead, pmName, trail := splitSpace(r.text)
		_, amName, _ := splitSpace(am[i].text)
		if pmName == "" || amName == "" {
			return nil, pattern.Periods{}, fmt.Errorf("day period %q or %q is blank", amName, pmName)
		}
		periods = pattern.Periods{AM: amName, PM: pmName}
		parts = append(parts, quote(lead), "a", quote(trail))
	}

	if hourPart < 0 {
		return nil, pattern.Periods{}, fmt.Errorf("no hour in %v", pm)
	}
	// A 12-hour table without period names would render 01:00 and 13:00 the
	// same; those render on the 24-hour clock.
	hour := "H"
	if twelve && periods != (pattern.Periods{}) {
		hour = "h"
	}
	parts[hourPart] = strings.Repeat(hour, hourWidth)

	p, err := pattern.Compile(strings.Join(parts, ""))
	if err != nil {
		return nil, pattern.Periods{}, err
	}
	if p.HasSeconds() != seconds {
		return nil, pattern.Periods{}, fmt.Errorf("pattern %q: seconds field present is %t, want %t", p, p.HasSeconds(), seconds)
	}
	return p, periods, nil
}

// runsOf splits s into alternating runs of ASCII digits and other text.
func runsOf(s string) []run {
	var runs []run
	for _, c := range s {
		digit := c >= '0' && c <= '9'
		if n := len(runs); n > 0 && runs[n-1].digits == digit {
			runs[n-1].text += string(c)
			continue
		}
		runs = append(runs, run{text: string(c), digits: digit})
	}
	return runs
}

// splitSpace separates leading and trailing white space from s.
func splitSpace(s string) (lead, core, trail string) {
	core = strings.TrimLeftFunc(s, unicode.IsSpace)
	lead = s[:len(s)-len(core)]
	trimmed := strings.TrimRightFunc(core, unicode.IsSpace)
	trail = core[len(trimmed):]
	return lead, trimmed, trail
}

// quote makes s a pattern literal.
func quote(s string) string {
	if s == "" {
		return ""
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
