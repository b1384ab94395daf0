package relative_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/relative"
)

var now = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		f, err := relative.New("en-US", relative.Options{})
		require.NoError(t, err)
		assert.Equal(t, "en-US", f.Locale())
		assert.Equal(t, relative.StyleBestFit, f.ResolvedOptions().Style)
		assert.Equal(t, relative.DefaultThresholds, f.Thresholds())
	})

	errCases := []struct {
		name   string
		locale string
		opts   relative.Options
		err    error
	}{
		{"bad locale", "??", relative.Options{}, relative.ErrInvalidLocale},
		{"bad style", "en", relative.Options{Style: "long"}, relative.ErrInvalidStyle},
		{"bad units", "en", relative.Options{Units: "week"}, relative.ErrInvalidUnits},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := relative.New(tc.locale, tc.opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale string
		opts   relative.Options
		offset time.Duration
		want   string
	}{
		{"now", "en", relative.Options{}, 0, "now"},
		{"now numeric", "en", relative.Options{Style: relative.StyleNumeric}, 0, "in 0 seconds"},
		{"seconds ago", "en", relative.Options{}, -30 * time.Second, "30 seconds ago"},
		{"minutes ahead", "en", relative.Options{}, 90 * time.Second, "in 2 minutes"},
		{"hours ago", "en", relative.Options{}, -3 * time.Hour, "3 hours ago"},
		{"yesterday", "en", relative.Options{}, -24 * time.Hour, "yesterday"},
		{"yesterday numeric", "en", relative.Options{Style: relative.StyleNumeric}, -24 * time.Hour, "1 day ago"},
		{"days ahead", "en", relative.Options{}, 48 * time.Hour, "in 2 days"},
		{"months ago", "en", relative.Options{}, -100 * 24 * time.Hour, "3 months ago"},
		{"last year", "en", relative.Options{}, -400 * 24 * time.Hour, "last year"},
		{"year numeric", "en", relative.Options{Style: relative.StyleNumeric}, -400 * 24 * time.Hour, "1 year ago"},
		{"fixed minutes", "en", relative.Options{Units: relative.Minute}, -3 * time.Hour, "180 minutes ago"},
		{"fixed seconds grouped", "en", relative.Options{Units: relative.Second}, -3 * time.Hour, "10,800 seconds ago"},
		{"german day after tomorrow", "de", relative.Options{}, 48 * time.Hour, "übermorgen"},
		{"german hours", "de", relative.Options{}, -3 * time.Hour, "vor 3 Stunden"},
		{"french regional", "fr-CA", relative.Options{}, -24 * time.Hour, "hier"},
		{"spanish days", "es", relative.Options{}, 5 * 24 * time.Hour, "dentro de 5 días"},
		{"russian many", "ru", relative.Options{}, -5 * 24 * time.Hour, "5 дней назад"},
		{"russian few", "ru", relative.Options{}, -2 * time.Hour, "2 часа назад"},
		{"russian one", "ru", relative.Options{}, -21 * time.Hour, "21 час назад"},
		{"japanese", "ja", relative.Options{}, -3 * 24 * time.Hour, "3 日前"},
		{"unknown locale falls back", "sw", relative.Options{}, 48 * time.Hour, "in 2 days"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := relative.New(tc.locale, tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, f.Format(now.Add(tc.offset), now))
		})
	}
}

func TestWithThresholds(t *testing.T) {
	t.Parallel()

	f, err := relative.New("en", relative.Options{})
	require.NoError(t, err)

	date := now.Add(-50 * time.Second)
	assert.Equal(t, "1 minute ago", f.Format(date, now))

	wide := f.WithThresholds(relative.Thresholds{Second: 60, Minute: 60, Hour: 24, Day: 30, Month: 12})
	assert.Equal(t, "50 seconds ago", wide.Format(date, now))

	// the original formatter keeps its own thresholds
	assert.Equal(t, relative.DefaultThresholds, f.Thresholds())
	assert.Equal(t, "1 minute ago", f.Format(date, now))
}

func TestDiff(t *testing.T) {
	t.Parallel()

	t.Run("rounds each unit from the previous one", func(t *testing.T) {
		t.Parallel()
		r := relative.Diff(now, now.Add(90*time.Second))
		assert.Equal(t, 90.0, r.Second)
		assert.Equal(t, 2.0, r.Minute)
		assert.Equal(t, 0.0, r.Hour)
	})

	t.Run("half rounds toward positive infinity", func(t *testing.T) {
		t.Parallel()
		r := relative.Diff(now, now.Add(-150*time.Second))
		assert.Equal(t, -2.0, r.Minute)
	})

	t.Run("calendar units", func(t *testing.T) {
		t.Parallel()
		r := relative.Diff(now, now.Add(-400*24*time.Hour))
		assert.Equal(t, -400.0, r.Day)
		assert.Equal(t, -13.0, r.Month)
		assert.Equal(t, -1.0, r.Year)
		assert.Equal(t, r.Day, r.Get(relative.Day))
	})
}

func TestOptionsInherit(t *testing.T) {
	t.Parallel()

	got := relative.Options{Units: relative.Day}.Inherit(relative.Options{Style: relative.StyleNumeric, Units: relative.Hour})
	assert.Equal(t, relative.Options{Style: relative.StyleNumeric, Units: relative.Day}, got)
}
