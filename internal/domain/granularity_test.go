package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGranularityFromStep(t *testing.T) {
	tests := []struct {
		name string
		step float64
		want Granularity
	}{
		{"no step", 0, Granularity{}},
		{"negative step", -1, Granularity{}},
		{"hour step", 3600, Granularity{}},
		{"minute step", 60, Granularity{}},
		{"thirty seconds", 30, Granularity{Seconds: true}},
		{"one second", 1, Granularity{Seconds: true}},
		{"half second", 0.5, Granularity{Seconds: true, Milliseconds: true}},
		{"one millisecond", 0.001, Granularity{Seconds: true, Milliseconds: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GranularityFromStep(tt.step))
		})
	}
}

func TestGranularity_FormatOptions(t *testing.T) {
	assert.Equal(t, FormatOptions{Seconds: true}, Granularity{Seconds: true, Milliseconds: true}.FormatOptions())
	assert.Equal(t, FormatOptions{}, Granularity{}.FormatOptions())
}

func TestLocaleProfile_HasPeriodDistinction(t *testing.T) {
	assert.True(t, LocaleProfile{AMToken: "AM", PMToken: "PM"}.HasPeriodDistinction())
	assert.False(t, LocaleProfile{AMToken: "ч.", PMToken: "ч."}.HasPeriodDistinction())
	assert.False(t, LocaleProfile{}.HasPeriodDistinction())
}
