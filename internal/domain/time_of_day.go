// Package domain holds the time-of-day value, locale profile and the
// interfaces the codec depends on.
package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// TimeOfDay is a wall-clock time independent of any calendar date.
type TimeOfDay struct {
	// Hours is the hour of the day (0-23)
	Hours int `json:"hours"`

	// Minutes is the minute of the hour (0-59)
	Minutes int `json:"minutes"`

	// Seconds is the second of the minute (0-59)
	Seconds int `json:"seconds"`

	// Milliseconds is the millisecond of the second (0-999)
	Milliseconds int `json:"milliseconds"`
}

// NewTimeOfDay creates a validated TimeOfDay.
func NewTimeOfDay(hours, minutes, seconds, milliseconds int) (TimeOfDay, error) {
	t := TimeOfDay{
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Milliseconds: milliseconds,
	}
	if err := t.Validate(); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}

// FromTime extracts the time-of-day fields from t, discarding the date.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{
		Hours:        t.Hour(),
		Minutes:      t.Minute(),
		Seconds:      t.Second(),
		Milliseconds: t.Nanosecond() / int(time.Millisecond),
	}
}

// Validate checks that every field is within its range.
// Returns a wrapped ErrInvalidTime error naming the first bad field.
func (t TimeOfDay) Validate() error {
	if t.Hours < 0 || t.Hours > 23 {
		return fmt.Errorf("%w: hours must be between 0 and 23, got %d", ErrInvalidTime, t.Hours)
	}
	if t.Minutes < 0 || t.Minutes > 59 {
		return fmt.Errorf("%w: minutes must be between 0 and 59, got %d", ErrInvalidTime, t.Minutes)
	}
	if t.Seconds < 0 || t.Seconds > 59 {
		return fmt.Errorf("%w: seconds must be between 0 and 59, got %d", ErrInvalidTime, t.Seconds)
	}
	if t.Milliseconds < 0 || t.Milliseconds > 999 {
		return fmt.Errorf("%w: milliseconds must be between 0 and 999, got %d", ErrInvalidTime, t.Milliseconds)
	}
	return nil
}

// String renders the time as HH:MM:SS.mmm.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d.%03d", t.Hours, t.Minutes, t.Seconds, t.Milliseconds)
}

// clockRegex matches H:MM, H:MM:SS and H:MM:SS.fff.
var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,3}))?)?$`)

// ParseClock parses the canonical 24-hour form H:MM[:SS[.fff]].
// A fractional part of fewer than three digits is read as a decimal fraction,
// so "10:00:00.5" is 500 milliseconds.
func ParseClock(s string) (TimeOfDay, error) {
	m := clockRegex.FindStringSubmatch(s)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q is not in H:MM[:SS[.fff]] form", ErrInvalidTime, s)
	}

	var t TimeOfDay
	t.Hours, _ = strconv.Atoi(m[1])
	t.Minutes, _ = strconv.Atoi(m[2])
	if m[3] != "" {
		t.Seconds, _ = strconv.Atoi(m[3])
	}
	if m[4] != "" {
		frac := m[4]
		for len(frac) < 3 {
			frac += "0"
		}
		t.Milliseconds, _ = strconv.Atoi(frac)
	}

	if err := t.Validate(); err != nil {
		return TimeOfDay{}, err
	}
	return t, nil
}
