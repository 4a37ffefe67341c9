// Package pattern formats and parses times of day with LDML style patterns
// such as "HH:mm:ss.SSS" or "h:mm a", the syntax used by date-fns and
// Unicode CLDR. Only time-of-day fields are supported.
//
// Supported fields:
//
//	H, HH       hour 0-23
//	h, hh       hour 1-12
//	m, mm       minute
//	s, ss       second
//	S to SSS    fraction of a second
//	a to aaaaa  day period (AM/PM)
//
// Text between single quotes is literal, and '' is a single quote. Any other
// non-letter character is literal.
package pattern

import (
	"fmt"
	"strings"

	"github.com/timefield/locale-time-codec/internal/domain"
)

type fieldKind int

const (
	literalField fieldKind = iota
	hour24Field
	hour12Field
	minuteField
	secondField
	fractionField
	periodField
)

// fieldLetters maps pattern letters to their field and maximum repeat count.
var fieldLetters = map[rune]struct {
	kind     fieldKind
	maxWidth int
}{
	'H': {hour24Field, 2},
	'h': {hour12Field, 2},
	'm': {minuteField, 2},
	's': {secondField, 2},
	'S': {fractionField, 3},
	'a': {periodField, 5},
}

type token struct {
	kind  fieldKind
	width int
	text  string
}

// Periods holds the names used for the two halves of the day.
type Periods struct {
	AM string
	PM string
}

// DefaultPeriods are used when a locale table has no period names.
var DefaultPeriods = Periods{AM: "AM", PM: "PM"}

func (p Periods) orDefault() Periods {
	if p.AM == "" || p.PM == "" || p.AM == p.PM {
		return DefaultPeriods
	}
	return p
}

// Pattern is a compiled time pattern.
type Pattern struct {
	source string
	tokens []token
}

// Compile parses a pattern string.
// Returns a wrapped domain.ErrInvalidPattern error for unsupported fields,
// over-long fields, and unterminated quotes.
func Compile(source string) (*Pattern, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: pattern is empty", domain.ErrInvalidPattern)
	}

	var tokens []token
	appendLiteral := func(s string) {
		if n := len(tokens); n > 0 && tokens[n-1].kind == literalField {
			tokens[n-1].text += s
			return
		}
		tokens = append(tokens, token{kind: literalField, text: s})
	}

	runes := []rune(source)
	for i := 0; i < len(runes); {
		r := runes[i]

		switch {
		case r == '\'':
			if i+1 < len(runes) && runes[i+1] == '\'' {
				appendLiteral("'")
				i += 2
				continue
			}
			text, next, err := readQuoted(runes, i+1)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", domain.ErrInvalidPattern, source, err)
			}
			appendLiteral(text)
			i = next

		case isLetter(r):
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			field, ok := fieldLetters[r]
			if !ok {
				return nil, fmt.Errorf("%w: %q: unsupported field %q", domain.ErrInvalidPattern, source, string(runes[i:j]))
			}
			if j-i > field.maxWidth {
				return nil, fmt.Errorf("%w: %q: field %q is too long", domain.ErrInvalidPattern, source, string(runes[i:j]))
			}
			tokens = append(tokens, token{kind: field.kind, width: j - i})
			i = j

		default:
			appendLiteral(string(r))
			i++
		}
	}

	return &Pattern{source: source, tokens: tokens}, nil
}

// String returns the source pattern.
func (p *Pattern) String() string {
	return p.source
}

// HasSeconds reports whether the pattern contains a second field.
func (p *Pattern) HasSeconds() bool {
	for _, t := range p.tokens {
		if t.kind == secondField {
			return true
		}
	}
	return false
}

// readQuoted reads a quoted literal starting after the opening quote.
// It returns the literal text and the index after the closing quote.
func readQuoted(runes []rune, start int) (string, int, error) {
	var b strings.Builder
	for i := start; i < len(runes); i++ {
		if runes[i] != '\'' {
			b.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '\'' {
			b.WriteRune('\'')
			i++
			continue
		}
		return b.String(), i + 1, nil
	}
	return "", 0, fmt.Errorf("unterminated quote")
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
