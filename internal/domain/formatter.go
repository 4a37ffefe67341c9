package domain

//go:generate mockgen -source=formatter.go -destination=mock_formatter.go -package=domain

import "time"

// LocaleFormatter renders a time of day the way a locale natively writes it.
// Implementations wrap a locale data source such as CLDR.
type LocaleFormatter interface {
	// FormatTime renders the hour and minute of t, and the second when
	// opts.Seconds is set, using the conventions of locale.
	// Returns an error wrapping ErrUnsupportedLocale for unknown locales.
	FormatTime(locale string, t time.Time, opts FormatOptions) (string, error)
}
