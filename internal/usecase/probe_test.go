package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/timefield/locale-time-codec/internal/domain"
	"github.com/timefield/locale-time-codec/internal/infrastructure/timeutil"
	"github.com/timefield/locale-time-codec/test/mock"
	"github.com/timefield/locale-time-codec/test/testutil"
)

func TestProbe_Fixtures(t *testing.T) {
	for _, fx := range testutil.LoadLocaleFixtures(t) {
		t.Run(fx.Locale, func(t *testing.T) {
			profile, err := probe(mock.NewFormatter(fx), fx.Locale)
			require.NoError(t, err)
			assert.Equal(t, fx.ExpectedLocaleProfile(), profile)
		})
	}
}

func TestProbe_UsesReferenceInstants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	formatter := domain.NewMockLocaleFormatter(ctrl)
	opts := domain.FormatOptions{Seconds: true}
	gomock.InOrder(
		formatter.EXPECT().FormatTime("es-MX", timeutil.PMProbeInstant(), opts).Return("11:15:30 p.m.", nil),
		formatter.EXPECT().FormatTime("es-MX", timeutil.AMProbeInstant(), opts).Return("5:15:30 a.m.", nil),
	)

	profile, err := probe(formatter, "es-MX")
	require.NoError(t, err)
	assert.Equal(t, domain.LocaleProfile{
		Locale:         "es-MX",
		AMToken:        "a.m.",
		PMToken:        "p.m.",
		Separator:      ":",
		UsesTwelveHour: true,
	}, profile)
}

func TestProbe_FormatterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	formatter := domain.NewMockLocaleFormatter(ctrl)
	formatter.EXPECT().
		FormatTime("xx-XX", gomock.Any(), gomock.Any()).
		Return("", domain.ErrUnsupportedLocale)

	_, err := probe(formatter, "xx-XX")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedLocale))
	assert.Contains(t, err.Error(), "xx-XX")
}

func TestPeriodToken(t *testing.T) {
	tests := []struct {
		name     string
		rendered string
		want     string
	}{
		{"trailing latin", "11:15:30 PM", "PM"},
		{"trailing with inner space", "11:15:30 p. m.", "p. m."},
		{"leading", "下午11:15:30", "下午"},
		{"leading with gap", "오후 11:15:30", "오후"},
		{"arabic digits", "١١:١٥:٣٠ م", "م"},
		{"invariant suffix", "23:15:30 ч.", "ч."},
		{"none", "23:15:30", ""},
		{"trailing wins over leading", "午後11:15:30 PM", "PM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, periodToken(tt.rendered))
		})
	}
}

func TestSeparatorOf(t *testing.T) {
	tests := []struct {
		name     string
		rendered string
		pmToken  string
		want     string
	}{
		{"colon", "11:15:30 PM", "PM", ":"},
		{"dot", "23.15.30", "", "."},
		{"leading period removed", "下午11:15:30", "下午", ":"},
		{"leading period with gap", "오후 11:15:30", "오후", ":"},
		{"arabic digits", "١١:١٥:٣٠ م", "م", ":"},
		{"no separator", "231530", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, separatorOf(tt.rendered, tt.pmToken))
		})
	}
}
