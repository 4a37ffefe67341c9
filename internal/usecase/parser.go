package usecase

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/infrastructure/logger"
	"github.com/timefield/locale-time-codec/internal/numeral"
	"github.com/timefield/locale-time-codec/internal/pattern"
)

// millisecondSuffix matches a trailing fraction such as ".5" or ".250".
var millisecondSuffix = regexp.MustCompile(`[\[.][` + numeral.DigitClass + `]{1,3}$`)

// ParseStats counts parser work since the last reconfiguration.
type ParseStats struct {
	// Computations is the number of parses that ran the full algorithm
	Computations int `json:"computations"`

	// CacheHits is the number of parses answered from the memo
	CacheHits int `json:"cacheHits"`
}

// numberMatch is one hour, minute or second group found in the input.
type numberMatch struct {
	text  string
	index int
}

// compiledParser is one entry of the ordered pattern list.
type compiledParser struct {
	source  string
	pattern *pattern.Pattern
	err     error
}

// timeStringParser turns localized text into a time of day. It is rebuilt
// whenever the codec is reconfigured, which also drops the memo.
type timeStringParser struct {
	profile   domain.LocaleProfile
	periods   pattern.Periods
	parsers   []compiledParser
	tokenizer *regexp.Regexp
	log       *logger.Logger

	cachedText  string
	cachedValue *domain.TimeOfDay
	stats       ParseStats
}

// newTimeStringParser binds a parser to a profile and pattern list. The
// explicit pattern, when set, is tried after the parsers.
func newTimeStringParser(profile domain.LocaleProfile, periods pattern.Periods, parsers []string, explicit string, log *logger.Logger) *timeStringParser {
	sources := append([]string(nil), parsers...)
	if explicit != "" {
		sources = append(sources, explicit)
	}

	compiled := make([]compiledParser, len(sources))
	for i, src := range sources {
		p, err := pattern.Compile(src)
		compiled[i] = compiledParser{source: src, pattern: p, err: err}
	}

	return &timeStringParser{
		profile:   profile,
		periods:   periods,
		parsers:   compiled,
		tokenizer: numberTokenizer(profile.Separator),
		log:       log,
	}
}

// numberTokenizer matches one or two digits followed by an optional separator.
func numberTokenizer(separator string) *regexp.Regexp {
	expr := `[` + numeral.DigitClass + `]{1,2}`
	if separator != "" {
		expr += `(?:` + regexp.QuoteMeta(separator) + `)?`
	}
	return regexp.MustCompile(expr)
}

// parse returns the time of day in text, or nil when nothing can be read.
// A repeated text returns the identical cached pointer.
func (p *timeStringParser) parse(text string, g domain.Granularity) *domain.TimeOfDay {
	if text == "" {
		return nil
	}
	if text == p.cachedText && p.cachedValue != nil {
		p.stats.CacheHits++
		return p.cachedValue
	}

	var result *domain.TimeOfDay
	if len(p.parsers) > 0 {
		result = p.parseWithPatterns(text)
	} else {
		result = p.parseHeuristic(text, g)
	}

	p.stats.Computations++
	p.cachedText = text
	p.cachedValue = result
	return result
}

func (p *timeStringParser) parseWithPatterns(text string) *domain.TimeOfDay {
	for _, c := range p.parsers {
		if c.err != nil {
			p.log.Debug().Err(c.err).Str("pattern", c.source).Msg("Skipping invalid parser pattern")
			continue
		}
		t, err := c.pattern.Parse(text, p.periods)
		if err != nil {
			p.log.Debug().Err(err).Str("pattern", c.source).Msg("Parser pattern did not match")
			continue
		}
		tod := domain.FromTime(t)
		return &tod
	}
	return nil
}

func (p *timeStringParser) parseHeuristic(text string, g domain.Granularity) *domain.TimeOfDay {
	amIndex := tokenIndex(text, p.profile.AMToken)
	pmIndex := tokenIndex(text, p.profile.PMToken)

	numbersOnly := text
	for _, token := range []string{p.profile.AMToken, p.profile.PMToken} {
		if token != "" {
			numbersOnly = strings.Replace(numbersOnly, token, "", 1)
		}
	}
	numbersOnly = strings.TrimSpace(numbersOnly)

	groups := p.tokenize(numbersOnly)
	if len(groups) == 0 {
		return nil
	}

	hours := p.groupValue(groups[0])
	// Locales with an invariant suffix (Bulgarian "ч.") find both tokens at the
	// same place and keep the literal hour.
	if amIndex != pmIndex {
		switch {
		case hours == 12 && amIndex != -1:
			hours = 0
		case hours != 12 && pmIndex != -1:
			hours += 12
		}
	}

	tod := &domain.TimeOfDay{Hours: hours}
	if len(groups) > 1 {
		tod.Minutes = p.groupValue(groups[1])
	}
	if len(groups) > 2 {
		seconds := groups[2]
		tod.Seconds = p.groupValue(seconds)
		if g.Milliseconds {
			tod.Milliseconds = millisecondsAfter(numbersOnly, seconds.index)
		}
	}
	return tod
}

// tokenize collects every number group in order with its byte offset.
func (p *timeStringParser) tokenize(text string) []numberMatch {
	locs := p.tokenizer.FindAllStringIndex(text, -1)
	matches := make([]numberMatch, 0, len(locs))
	for _, loc := range locs {
		matches = append(matches, numberMatch{text: text[loc[0]:loc[1]], index: loc[0]})
	}
	return matches
}

func (p *timeStringParser) groupValue(m numberMatch) int {
	digits := m.text
	if p.profile.Separator != "" {
		digits = strings.Replace(digits, p.profile.Separator, "", 1)
	}
	n, err := numeral.DigitsToInt(digits)
	if err != nil {
		return 0
	}
	return n
}

// millisecondsAfter reads a trailing fraction. A match that starts at or
// before the seconds group is the separator after the seconds, not a fraction.
func millisecondsAfter(text string, secondsIndex int) int {
	loc := millisecondSuffix.FindStringIndex(text)
	if loc == nil || loc[0] <= secondsIndex {
		return 0
	}

	fragment := text[loc[0]:loc[1]]
	_, size := utf8.DecodeRuneInString(fragment)
	ms, err := numeral.MillisecondDigitsToInt(fragment[size:])
	if err != nil {
		return 0
	}
	return ms
}

// tokenIndex is the byte offset of token in text, or -1 when the token is
// empty or absent.
func tokenIndex(text, token string) int {
	if token == "" {
		return -1
	}
	return strings.Index(text, token)
}
