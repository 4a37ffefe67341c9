package cldr

import "golang.org/x/text/language"

// Numbering systems the formatter can render.
const (
	NumberingLatin  = "latn"
	NumberingArabic = "arab"
)

// latinArabicRegions are the Arabic-speaking regions whose CLDR default
// numbering system is Latin.
var latinArabicRegions = map[string]bool{
	"DZ": true,
	"EH": true,
	"LY": true,
	"MA": true,
	"TN": true,
}

var arabic = language.MustParseBase("ar")

// NumberingSystem returns the numbering system used for tag. An explicit
// "nu" extension wins; otherwise Arabic outside the Maghreb uses Eastern
// Arabic-Indic digits and every other language uses Latin digits.
func NumberingSystem(tag language.Tag) string {
	switch nu := tag.TypeForKey("nu"); nu {
	case NumberingLatin, NumberingArabic:
		return nu
	}

	base, _ := tag.Base()
	if base != arabic {
		return NumberingLatin
	}
	region, conf := tag.Region()
	if conf == language.Exact && latinArabicRegions[region.String()] {
		return NumberingLatin
	}
	return NumberingArabic
}
