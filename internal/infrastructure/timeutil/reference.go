// Package timeutil carries a time of day through APIs that need a full instant.
package timeutil

import (
	"time"

	"github.com/golang-module/carbon"

	"github.com/timefield/locale-time-codec/internal/domain"
)

// The fixed date every time of day is placed on. Only its clock fields are
// ever read back.
const (
	ReferenceYear  = 1975
	ReferenceMonth = 8
	ReferenceDay   = 19
)

// Instant places the given clock fields on the reference date in UTC.
func Instant(hours, minutes, seconds, milliseconds int) time.Time {
	return carbon.CreateFromDate(ReferenceYear, ReferenceMonth, ReferenceDay, carbon.UTC).
		SetTimeMilli(hours, minutes, seconds, milliseconds).
		Carbon2Time()
}

// InstantOf places t on the reference date.
func InstantOf(t domain.TimeOfDay) time.Time {
	return Instant(t.Hours, t.Minutes, t.Seconds, t.Milliseconds)
}

// PMProbeInstant is 23:15:30 on the reference date, in the afternoon half.
func PMProbeInstant() time.Time {
	return Instant(23, 15, 30, 0)
}

// AMProbeInstant is 05:15:30 on the reference date, in the morning half.
func AMProbeInstant() time.Time {
	return Instant(5, 15, 30, 0)
}
