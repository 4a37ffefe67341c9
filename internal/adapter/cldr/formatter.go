package cldr

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/numeral"
)

// Formatter renders times of day with CLDR data. It is safe for concurrent
// use; one Formatter can back any number of codecs.
type Formatter struct {
	tables  []table
	matcher language.Matcher

	// layouts caches one *layout per tables index.
	layouts sync.Map
}

// Compile-time interface check.
var _ domain.LocaleFormatter = (*Formatter)(nil)

// NewFormatter creates a Formatter over every supported locale.
func NewFormatter() *Formatter {
	ts := tables()
	tags := make([]language.Tag, len(ts))
	for i, t := range ts {
		tags[i] = t.tag
	}
	return &Formatter{
		tables:  ts,
		matcher: language.NewMatcher(tags),
	}
}

// FormatTime renders hours and minutes of t, and seconds when opts.Seconds is
// set, as locale writes them. Locales whose numbering system is "arab" get
// Eastern Arabic-Indic digits.
// Returns an error wrapping domain.ErrUnsupportedLocale when locale does not
// parse or matches no CLDR table.
func (f *Formatter) FormatTime(locale string, t time.Time, opts domain.FormatOptions) (string, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", domain.ErrUnsupportedLocale, locale, err)
	}

	l, err := f.layout(tag)
	if err != nil {
		return "", fmt.Errorf("%q: %w", locale, err)
	}

	s := l.forSeconds(opts.Seconds).Format(t, l.periods)
	if NumberingSystem(tag) == NumberingArabic {
		s = numeral.ToArabicIndic(s)
	}
	return s, nil
}

func (f *Formatter) layout(tag language.Tag) (*layout, error) {
	_, index, conf := f.matcher.Match(tag)
	if conf == language.No {
		return nil, domain.ErrUnsupportedLocale
	}

	// Check cache first
	if l, ok := f.layouts.Load(index); ok {
		return l.(*layout), nil
	}

	l, err := deriveLayout(f.tables[index].new())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedLocale, err)
	}
	actual, _ := f.layouts.LoadOrStore(index, l)
	return actual.(*layout), nil
}
