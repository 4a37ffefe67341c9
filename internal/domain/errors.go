package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for codec operations.
var (
	// ErrUnsupportedLocale is returned when the native formatter does not
	// recognize a locale identifier.
	ErrUnsupportedLocale = errors.New("unsupported locale")

	// ErrInvalidTime is returned when a time-of-day field is out of range.
	ErrInvalidTime = errors.New("invalid time of day")

	// ErrInvalidPattern is returned when a format pattern cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnparseable is returned when text does not match a pattern.
	ErrUnparseable = errors.New("unparseable time text")
)

// LocaleError reports that a requested locale was replaced by a fallback.
type LocaleError struct {
	// Locale is the identifier that was requested
	Locale string

	// Fallback is the identifier used instead
	Fallback string

	// Err is the underlying error from the native formatter
	Err error
}

// NewLocaleError creates a LocaleError for the given locale and cause.
func NewLocaleError(locale, fallback string, err error) *LocaleError {
	return &LocaleError{
		Locale:   locale,
		Fallback: fallback,
		Err:      err,
	}
}

// Error implements the error interface.
func (e *LocaleError) Error() string {
	return fmt.Sprintf("locale %q is not supported, falling back to %q: %v", e.Locale, e.Fallback, e.Err)
}

// Unwrap returns the underlying error.
func (e *LocaleError) Unwrap() error {
	return e.Err
}
