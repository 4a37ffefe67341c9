package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timefield/locale-time-codec/internal/adapter/cldr"
	"github.com/timefield/locale-time-codec/internal/adapter/host"
	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/infrastructure/logger"
	"github.com/timefield/locale-time-codec/internal/infrastructure/retry"
)

func newCLDRCodec(t *testing.T, locale string, step float64) *LocaleTimeCodec {
	t.Helper()
	codec := NewLocaleTimeCodec(cldr.NewFormatter(), host.NewMemory(step), logger.Nop())
	require.NoError(t, codec.SetLocale(locale))
	return codec
}

func TestCodec_CLDR_EnglishScenario(t *testing.T) {
	codec := newCLDRCodec(t, "en-US", 30)

	profile := codec.Profile()
	assert.True(t, profile.UsesTwelveHour)
	assert.Equal(t, "AM", profile.AMToken)
	assert.Equal(t, "PM", profile.PMToken)

	got := codec.ParseTime("11:05:30 PM")
	require.NotNil(t, got)
	assert.Equal(t, domain.TimeOfDay{Hours: 23, Minutes: 5, Seconds: 30}, *got)

	text, err := codec.FormatTime(&domain.TimeOfDay{Hours: 23, Minutes: 5, Seconds: 30})
	require.NoError(t, err)
	assert.Equal(t, "11:05:30 PM", text)
}

func TestCodec_CLDR_RoundTrip(t *testing.T) {
	tests := []struct {
		locale string
		tod    domain.TimeOfDay
		want   string
	}{
		{"en-US", domain.TimeOfDay{Minutes: 5, Seconds: 30}, "12:05:30 AM"},
		{"en-US", domain.TimeOfDay{Hours: 12}, "12:00:00 PM"},
		{"en-US", domain.TimeOfDay{Hours: 13}, "1:00:00 PM"},
		{"en-US", domain.TimeOfDay{Hours: 23, Minutes: 59, Seconds: 59}, "11:59:59 PM"},
		{"zh-CN", domain.TimeOfDay{Hours: 23, Minutes: 5, Seconds: 30}, "下午11:05:30"},
		{"zh-CN", domain.TimeOfDay{Minutes: 5, Seconds: 30}, "上午12:05:30"},
		{"ko-KR", domain.TimeOfDay{Hours: 23, Minutes: 5, Seconds: 30}, "오후 11:05:30"},
		{"ar-EG", domain.TimeOfDay{Hours: 23, Minutes: 5, Seconds: 30}, "١١:٠٥:٣٠ م"},
		{"ar-EG", domain.TimeOfDay{Minutes: 5, Seconds: 30}, "١٢:٠٥:٣٠ ص"},
		{"de-DE", domain.TimeOfDay{Hours: 9, Minutes: 5, Seconds: 30}, "09:05:30"},
		{"fi-FI", domain.TimeOfDay{Hours: 9, Minutes: 5, Seconds: 30}, "9.05.30"},
		{"bg-BG", domain.TimeOfDay{Hours: 23, Minutes: 5, Seconds: 30}, "23:05:30"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+" "+tt.tod.String(), func(t *testing.T) {
			codec := newCLDRCodec(t, tt.locale, 1)

			text, err := codec.FormatTime(&tt.tod)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)

			got := codec.ParseTime(text)
			require.NotNil(t, got)
			assert.Equal(t, tt.tod, *got)
		})
	}
}

func TestCodec_CLDR_LocalesWithoutFallback(t *testing.T) {
	for _, locale := range []string{"en-GB", "fi-FI", "sv-SE", "hi-IN", "pl-PL", "he-IL", "zh-TW"} {
		t.Run(locale, func(t *testing.T) {
			codec := NewLocaleTimeCodec(cldr.NewFormatter(), host.NewMemory(1), logger.Nop())
			require.NoError(t, codec.SetLocale(locale))
			assert.Equal(t, locale, codec.Locale())

			tod := domain.TimeOfDay{Hours: 18, Minutes: 45, Seconds: 10}
			text, err := codec.FormatTime(&tod)
			require.NoError(t, err)
			got := codec.ParseTime(text)
			require.NotNil(t, got, text)
			assert.Equal(t, tod, *got)
		})
	}
}

func TestCodec_ConfigureDoesNotWaitForHost(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ready atomic.Bool
	poll := retry.Config{InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 1}
	h := host.NewMemory(1).
		WithValue("23:05:30").
		WithContext(ctx).
		WithReady(ready.Load, poll)
	codec := NewLocaleTimeCodec(cldr.NewFormatter(), h, logger.Nop())

	done := make(chan error, 1)
	go func() { done <- codec.SetLocale("en-US") }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("SetLocale waited for the host to become ready")
	}
	assert.Empty(t, h.DisplayValue())

	ready.Store(true)
	assert.Eventually(t, func() bool { return h.DisplayValue() == "11:05:30 PM" }, time.Second, time.Millisecond)
}
