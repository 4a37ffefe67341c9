package domain

// LocaleProfile describes how a locale renders a time of day, as observed
// from the native formatter's output.
type LocaleProfile struct {
	// Locale is the identifier the profile was derived for (e.g., "en-US")
	Locale string `json:"locale" yaml:"locale"`

	// AMToken marks the morning half of the day (e.g., "AM"). Empty for most
	// 24-hour locales.
	AMToken string `json:"amToken" yaml:"amToken"`

	// PMToken marks the afternoon half of the day (e.g., "PM").
	PMToken string `json:"pmToken" yaml:"pmToken"`

	// Separator is the single character between hour, minute and second groups.
	Separator string `json:"separator" yaml:"separator"`

	// UsesTwelveHour is true when both period tokens are present and distinct.
	UsesTwelveHour bool `json:"usesTwelveHour" yaml:"usesTwelveHour"`
}

// HasPeriodDistinction reports whether AM and PM render differently.
// Locales that append an invariant suffix (Bulgarian "ч.") yield equal tokens
// and must not have their hours adjusted.
func (p LocaleProfile) HasPeriodDistinction() bool {
	return p.AMToken != p.PMToken
}
