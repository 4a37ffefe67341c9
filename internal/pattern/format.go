package pattern

import (
	"strconv"
	"strings"
	"time"
)

// Format renders the clock fields of t. Day periods use the given names, or
// DefaultPeriods when they are incomplete.
func (p *Pattern) Format(t time.Time, periods Periods) string {
	periods = periods.orDefault()
	millis := t.Nanosecond() / int(time.Millisecond)

	var b strings.Builder
	for _, tok := range p.tokens {
		switch tok.kind {
		case literalField:
			b.WriteString(tok.text)
		case hour24Field:
			writePadded(&b, t.Hour(), tok.width)
		case hour12Field:
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			writePadded(&b, h, tok.width)
		case minuteField:
			writePadded(&b, t.Minute(), tok.width)
		case secondField:
			writePadded(&b, t.Second(), tok.width)
		case fractionField:
			// SSS is milliseconds, SS hundredths, S tenths.
			scaled := millis
			for i := tok.width; i < 3; i++ {
				scaled /= 10
			}
			writePadded(&b, scaled, tok.width)
		case periodField:
			if t.Hour() < 12 {
				b.WriteString(periods.AM)
			} else {
				b.WriteString(periods.PM)
			}
		}
	}
	return b.String()
}

func writePadded(b *strings.Builder, n, width int) {
	s := strconv.Itoa(n)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
