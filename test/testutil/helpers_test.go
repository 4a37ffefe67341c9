package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timefield/locale-time-codec/internal/domain"
)

func TestMustParseClock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.TimeOfDay
	}{
		{"hours and minutes", "9:05", domain.TimeOfDay{Hours: 9, Minutes: 5}},
		{"with seconds", "23:05:30", domain.TimeOfDay{Hours: 23, Minutes: 5, Seconds: 30}},
		{"with milliseconds", "00:00:00.250", domain.TimeOfDay{Milliseconds: 250}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MustParseClock(t, tt.input))
		})
	}
}

func TestLoadLocaleFixtures(t *testing.T) {
	fixtures := LoadLocaleFixtures(t)
	require.NotEmpty(t, fixtures)

	seen := make(map[string]bool)
	for _, fx := range fixtures {
		assert.NotEmpty(t, fx.Locale)
		assert.False(t, seen[fx.Locale], "duplicate fixture %s", fx.Locale)
		seen[fx.Locale] = true
		assert.NotEmpty(t, fx.Cases, "fixture %s has no cases", fx.Locale)
		for _, c := range fx.Cases {
			_, err := domain.ParseClock(c.Time)
			assert.NoError(t, err, "fixture %s case %q", fx.Locale, c.Text)
		}
	}
	assert.True(t, seen["en-US"])
}
