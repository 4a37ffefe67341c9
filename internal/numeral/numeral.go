// Package numeral converts between ASCII digits and the Eastern Arabic-Indic
// digit block (U+0660 to U+0669) used by Arabic locales.
package numeral

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Code points of the Eastern Arabic-Indic digit block.
const (
	ArabicIndicZero = '٠'
	ArabicIndicNine = '٩'
)

// DigitClass is the regular expression character class content matching an
// ASCII digit or an Eastern Arabic-Indic digit. Wrap it in brackets to use it.
const DigitClass = `0-9\x{0660}-\x{0669}`

var (
	// ErrNotANumber is returned when normalized text is not an integer literal.
	ErrNotANumber = errors.New("not a number")

	// ErrMillisecondDigits is returned when a millisecond fragment does not
	// have between one and three digits.
	ErrMillisecondDigits = errors.New("millisecond fragment must have 1 to 3 digits")
)

// IsArabicIndic reports whether r is in the Eastern Arabic-Indic digit block.
func IsArabicIndic(r rune) bool {
	return r >= ArabicIndicZero && r <= ArabicIndicNine
}

// IsDigit reports whether r is an ASCII digit or an Eastern Arabic-Indic digit.
func IsDigit(r rune) bool {
	return (r >= '0' && r <= '9') || IsArabicIndic(r)
}

// ToASCIIDigits replaces every Eastern Arabic-Indic digit in text with its
// ASCII equivalent. All other characters pass through unchanged.
func ToASCIIDigits(text string) string {
	if !strings.ContainsFunc(text, IsArabicIndic) {
		return text
	}
	return strings.Map(func(r rune) rune {
		if IsArabicIndic(r) {
			return '0' + (r - ArabicIndicZero)
		}
		return r
	}, text)
}

// ToArabicIndic replaces every ASCII digit in text with the matching Eastern
// Arabic-Indic digit.
func ToArabicIndic(text string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return ArabicIndicZero + (r - '0')
		}
		return r
	}, text)
}

// DigitsToInt parses text as a base 10 integer after normalizing its digits.
func DigitsToInt(text string) (int, error) {
	normalized := ToASCIIDigits(text)
	n, err := strconv.Atoi(normalized)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	return n, nil
}

// MillisecondDigitsToInt interprets one to three digits as the leading digits
// of a three digit millisecond value: "5" is 500, "05" is 50, "005" is 5.
func MillisecondDigitsToInt(text string) (int, error) {
	normalized := ToASCIIDigits(text)
	if len(normalized) == 0 || len(normalized) > 3 {
		return 0, fmt.Errorf("%w: got %q", ErrMillisecondDigits, text)
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrNotANumber, text)
		}
	}

	padded := normalized + strings.Repeat("0", 3-len(normalized))
	return strconv.Atoi(padded)
}
