package pattern

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/infrastructure/timeutil"
	"github.com/timefield/locale-time-codec/internal/numeral"
)

// parsed collects field values while scanning input.
type parsed struct {
	hour     int
	hour12   bool
	minute   int
	second   int
	millis   int
	isPM     bool
	isPeriod bool
}

// Parse reads text according to the pattern and returns the time of day on
// the reference date. Eastern Arabic-Indic digits are accepted. Fields absent
// from the pattern are zero. Trailing whitespace is ignored.
// Returns a wrapped domain.ErrUnparseable error when text does not match.
func (p *Pattern) Parse(text string, periods Periods) (time.Time, error) {
	periods = periods.orDefault()
	input := strings.TrimLeftFunc(numeral.ToASCIIDigits(text), unicode.IsSpace)

	var v parsed
	for _, tok := range p.tokens {
		var err error
		switch tok.kind {
		case literalField:
			if !strings.HasPrefix(input, tok.text) {
				return time.Time{}, p.mismatch(text, "expected %q", tok.text)
			}
			input = input[len(tok.text):]
		case hour24Field:
			v.hour, input, err = readNumber(input, 2, 0, 23)
		case hour12Field:
			v.hour, input, err = readNumber(input, 2, 1, 12)
			v.hour12 = true
		case minuteField:
			v.minute, input, err = readNumber(input, 2, 0, 59)
		case secondField:
			v.second, input, err = readNumber(input, 2, 0, 59)
		case fractionField:
			// Scaled by the field width, not the digits read: SSS reads "25"
			// as 25 milliseconds, S reads "5" as 500.
			var n int
			n, input, err = readNumber(input, tok.width, 0, 999)
			for i := tok.width; i < 3; i++ {
				n *= 10
			}
			v.millis = n
		case periodField:
			v.isPM, input, err = readPeriod(input, periods)
			v.isPeriod = true
		}
		if err != nil {
			return time.Time{}, p.mismatch(text, "%v", err)
		}
	}

	if strings.TrimSpace(input) != "" {
		return time.Time{}, p.mismatch(text, "unexpected trailing text %q", input)
	}

	hour := v.hour
	if v.hour12 && v.isPeriod {
		switch {
		case v.isPM && hour != 12:
			hour += 12
		case !v.isPM && hour == 12:
			hour = 0
		}
	}

	return timeutil.Instant(hour, v.minute, v.second, v.millis), nil
}

func (p *Pattern) mismatch(text, format string, args ...any) error {
	return fmt.Errorf("%w: %q does not match %q: %s", domain.ErrUnparseable, text, p.source, fmt.Sprintf(format, args...))
}

// readNumber consumes one to maxDigits ASCII digits and checks the range.
func readNumber(input string, maxDigits, lo, hi int) (int, string, error) {
	n := 0
	for n < len(input) && n < maxDigits && input[n] >= '0' && input[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, input, fmt.Errorf("expected a number at %q", input)
	}

	value, err := strconv.Atoi(input[:n])
	if err != nil {
		return 0, input, err
	}
	if value < lo || value > hi {
		return 0, input, fmt.Errorf("%d is outside %d-%d", value, lo, hi)
	}
	return value, input[n:], nil
}

// readPeriod consumes a day period name, ignoring case. The longer name is
// tried first so that neither can shadow the other.
func readPeriod(input string, periods Periods) (bool, string, error) {
	candidates := []struct {
		name string
		pm   bool
	}{
		{periods.AM, false},
		{periods.PM, true},
	}
	if len(periods.PM) > len(periods.AM) {
		candidates[0], candidates[1] = candidates[1], candidates[0]
	}

	for _, c := range candidates {
		if len(input) >= len(c.name) && strings.EqualFold(input[:len(c.name)], c.name) {
			return c.pm, input[len(c.name):], nil
		}
	}
	return false, input, fmt.Errorf("expected %q or %q at %q", periods.AM, periods.PM, input)
}
