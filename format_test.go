package intl_test

import (
	"bytes"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl"
	"github.com/dmitrymomot/intl/pkg/datetime"
	"github.com/dmitrymomot/intl/pkg/logger"
	"github.com/dmitrymomot/intl/pkg/numfmt"
	"github.com/dmitrymomot/intl/pkg/plural"
	"github.com/dmitrymomot/intl/pkg/relative"
)

// Friday, 16 October 2026, 14:05:09 UTC.
var sample = time.Date(2026, time.October, 16, 14, 5, 9, 0, time.UTC)

func newState(t *testing.T, opts ...intl.StateOption) *intl.State {
	t.Helper()
	s := intl.NewState(opts...)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// newConfig returns an English config that logs into the returned buffer.
func newConfig(t *testing.T) (intl.Config, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return intl.Config{
		Locale: "en",
		Logger: logger.New(logger.Config{Output: &buf}),
	}, &buf
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	state := newState(t)

	t.Run("defaults to numeric date", func(t *testing.T) {
		t.Parallel()
		cfg, logs := newConfig(t)
		assert.Equal(t, "10/16/2026", intl.FormatDate(cfg, state, sample, intl.DateOptions{}))
		assert.Zero(t, logs.Len())
	})

	t.Run("named format", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		cfg.Formats.Date = map[string]datetime.Options{
			"long": {Month: datetime.Long, Day: datetime.Numeric, Year: datetime.Numeric},
		}
		assert.Equal(t, "October 16, 2026", intl.FormatDate(cfg, state, sample, intl.DateOptions{Format: "long"}))
	})

	t.Run("explicit options override the named format", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		cfg.Formats.Date = map[string]datetime.Options{
			"monthDay": {Month: datetime.Short, Day: datetime.Numeric},
		}
		got := intl.FormatDate(cfg, state, sample, intl.DateOptions{
			Format:  "monthDay",
			Options: datetime.Options{Month: datetime.Long, Year: datetime.Numeric},
		})
		assert.Equal(t, "October 16, 2026", got)
	})

	t.Run("unknown named format is logged", func(t *testing.T) {
		t.Parallel()
		cfg, logs := newConfig(t)
		assert.Equal(t, "10/16/2026", intl.FormatDate(cfg, state, sample, intl.DateOptions{Format: "nope"}))
		assert.Contains(t, logs.String(), intl.ErrUnknownFormat.Error())
	})

	t.Run("config time zone", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		cfg.TimeZone = "Pacific/Auckland"
		// 03:05 on the next day in Auckland.
		assert.Equal(t, "10/17/2026", intl.FormatDate(cfg, state, sample, intl.DateOptions{}))
	})

	t.Run("accepts unix milliseconds and strings", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		cfg.TimeZone = "UTC"
		assert.Equal(t, "10/16/2026", intl.FormatDate(cfg, state, sample.UnixMilli(), intl.DateOptions{}))
		assert.Equal(t, "10/16/2026", intl.FormatDate(cfg, state, "2026-10-16T14:05:09Z", intl.DateOptions{}))
		assert.Equal(t, "10/16/2026", intl.FormatDate(cfg, state, "1792159509000", intl.DateOptions{}))
	})

	t.Run("out of range milliseconds", func(t *testing.T) {
		t.Parallel()
		cfg, logs := newConfig(t)
		assert.Equal(t, intl.InvalidDate, intl.FormatDate(cfg, state, 1e300, intl.DateOptions{}))
		assert.Equal(t, intl.InvalidDate, intl.FormatDate(cfg, state, -8.64e15-1, intl.DateOptions{}))
		assert.Contains(t, logs.String(), intl.ErrInvalidDate.Error())
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		cfg, logs := newConfig(t)
		assert.Equal(t, intl.InvalidDate, intl.FormatDate(cfg, state, "yesterday-ish", intl.DateOptions{}))
		assert.Contains(t, logs.String(), intl.ErrInvalidDate.Error())
	})

	t.Run("invalid options fall back to the date string", func(t *testing.T) {
		t.Parallel()
		cfg, logs := newConfig(t)
		got := intl.FormatDate(cfg, state, sample, intl.DateOptions{Options: datetime.Options{Month: "very-long"}})
		assert.Equal(t, sample.String(), got)
		assert.Contains(t, logs.String(), "Error formatting date")
	})
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	state := newState(t)

	t.Run("defaults to hours and minutes", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		assert.Equal(t, "2:05 PM", intl.FormatTime(cfg, state, sample, intl.DateOptions{}))
	})

	t.Run("hour cycle alone still gets defaults", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		opts := intl.DateOptions{Options: datetime.Options{Hour12: datetime.Bool(false)}}
		assert.Equal(t, "14:05", intl.FormatTime(cfg, state, sample, opts))
	})

	t.Run("named time format", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		cfg.Formats.Time = map[string]datetime.Options{
			"precise": {Hour: datetime.Numeric, Minute: datetime.Numeric, Second: datetime.Numeric},
		}
		assert.Equal(t, "2:05:09 PM", intl.FormatTime(cfg, state, sample, intl.DateOptions{Format: "precise"}))
	})

	t.Run("time zone", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		cfg.TimeZone = "America/New_York"
		assert.Equal(t, "10:05 AM", intl.FormatTime(cfg, state, sample, intl.DateOptions{}))

		opts := intl.DateOptions{Options: datetime.Options{TimeZone: "UTC"}}
		assert.Equal(t, "2:05 PM", intl.FormatTime(cfg, state, sample, opts))
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		assert.Equal(t, intl.InvalidDate, intl.FormatTime(cfg, state, struct{}{}, intl.DateOptions{}))
	})
}

func TestFormatRelative(t *testing.T) {
	t.Parallel()

	state := newState(t, intl.WithClock(func() time.Time { return sample }))

	tests := []struct {
		name   string
		offset time.Duration
		opts   intl.RelativeOptions
		want   string
	}{
		{"seconds up to a minute", -50 * time.Second, intl.RelativeOptions{}, "50 seconds ago"},
		{"minutes up to an hour", -59 * time.Minute, intl.RelativeOptions{}, "59 minutes ago"},
		{"hours up to a day", 23 * time.Hour, intl.RelativeOptions{}, "in 23 hours"},
		{"yesterday", -24 * time.Hour, intl.RelativeOptions{}, "yesterday"},
		{"days up to a month", -29 * 24 * time.Hour, intl.RelativeOptions{}, "29 days ago"},
		{"fixed units", -2 * time.Hour, intl.RelativeOptions{Options: relative.Options{Units: relative.Minute}}, "120 minutes ago"},
		{"numeric style", -24 * time.Hour, intl.RelativeOptions{Options: relative.Options{Style: relative.StyleNumeric}}, "1 day ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, _ := newConfig(t)
			assert.Equal(t, tc.want, intl.FormatRelative(cfg, state, sample.Add(tc.offset), tc.opts))
		})
	}

	t.Run("explicit now", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		now := sample.Add(3 * time.Hour)
		assert.Equal(t, "3 hours ago", intl.FormatRelative(cfg, state, sample, intl.RelativeOptions{Now: now}))
		assert.Equal(t, "3 hours ago", intl.FormatRelative(cfg, state, sample, intl.RelativeOptions{Now: now.UnixMilli()}))
	})

	t.Run("invalid now uses the clock", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		got := intl.FormatRelative(cfg, state, sample.Add(-2*time.Minute), intl.RelativeOptions{Now: "soon"})
		assert.Equal(t, "2 minutes ago", got)
	})

	t.Run("named format", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		cfg.Formats.Relative = map[string]relative.Options{"numeric": {Style: relative.StyleNumeric}}
		assert.Equal(t, "1 day ago", intl.FormatRelative(cfg, state, sample.Add(-24*time.Hour), intl.RelativeOptions{Format: "numeric"}))
	})

	t.Run("locale", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		cfg.Locale = "de"
		assert.Equal(t, "vor 3 Stunden", intl.FormatRelative(cfg, state, sample.Add(-3*time.Hour), intl.RelativeOptions{}))
	})

	t.Run("invalid options fall back to the date string", func(t *testing.T) {
		t.Parallel()
		cfg, logs := newConfig(t)
		got := intl.FormatRelative(cfg, state, sample, intl.RelativeOptions{Options: relative.Options{Units: "week"}})
		assert.Equal(t, sample.String(), got)
		assert.Contains(t, logs.String(), relative.ErrInvalidUnits.Error())
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		cfg, _ := newConfig(t)
		assert.Equal(t, intl.InvalidDate, intl.FormatRelative(cfg, state, "later", intl.RelativeOptions{}))
	})

	t.Run("thresholds stay local to the call", func(t *testing.T) {
		t.Parallel()
		f, err := state.RelativeFormat("en", relative.Options{})
		require.NoError(t, err)
		assert.Equal(t, relative.DefaultThresholds, f.Thresholds())
		assert.Equal(t, "1 minute ago", f.Format(sample.Add(-50*time.Second), sample))
	})
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	state := newState(t)

	tests := []struct {
		name   string
		locale string
		value  any
		opts   intl.NumberOptions
		want   string
	}{
		{"decimal", "en", 1234.5, intl.NumberOptions{}, "1,234.5"},
		{"german", "de", 1234.5, intl.NumberOptions{}, "1.234,5"},
		{"integer value", "en", 1000, intl.NumberOptions{}, "1,000"},
		{"numeric string", "en", "42", intl.NumberOptions{}, "42"},
		{"percent", "en", 0.256, intl.NumberOptions{Options: numfmt.Options{Style: numfmt.StylePercent}}, "26%"},
		{"currency", "en", 1234.5, intl.NumberOptions{Options: numfmt.Options{Style: numfmt.StyleCurrency, Currency: "USD"}}, "$1,234.50"},
		{"named format", "en", 9.5, intl.NumberOptions{Format: "usd"}, "$9.50"},
		{"override named format", "en", 9.5, intl.NumberOptions{Format: "usd", Options: numfmt.Options{CurrencyDisplay: numfmt.DisplayCode}}, "USD\u00a09.50"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, logs := newConfig(t)
			cfg.Locale = tc.locale
			cfg.Formats.Number = map[string]numfmt.Options{
				"usd": {Style: numfmt.StyleCurrency, Currency: "USD"},
			}
			assert.Equal(t, tc.want, intl.FormatNumber(cfg, state, tc.value, tc.opts))
			assert.Zero(t, logs.Len())
		})
	}

	t.Run("invalid value", func(t *testing.T) {
		t.Parallel()
		cfg, logs := newConfig(t)
		assert.Equal(t, "lots", intl.FormatNumber(cfg, state, "lots", intl.NumberOptions{}))
		assert.Contains(t, logs.String(), intl.ErrInvalidNumber.Error())
	})

	t.Run("invalid options fall back to the value", func(t *testing.T) {
		t.Parallel()
		cfg, logs := newConfig(t)
		got := intl.FormatNumber(cfg, state, 1234.5, intl.NumberOptions{Options: numfmt.Options{Style: numfmt.StyleCurrency}})
		assert.Equal(t, "1234.5", got)
		assert.Contains(t, logs.String(), numfmt.ErrMissingCurrency.Error())
	})

	t.Run("unknown named format", func(t *testing.T) {
		t.Parallel()
		cfg, logs := newConfig(t)
		assert.Equal(t, "7", intl.FormatNumber(cfg, state, 7, intl.NumberOptions{Format: "fancy"}))
		assert.Contains(t, logs.String(), intl.ErrUnknownFormat.Error())
	})
}

func TestFormatPlural(t *testing.T) {
	t.Parallel()

	state := newState(t)
	ordinal := intl.PluralOptions{Options: plural.Options{Style: plural.StyleOrdinal}}

	tests := []struct {
		name   string
		locale string
		value  any
		opts   intl.PluralOptions
		want   string
	}{
		{"one", "en", 1, intl.PluralOptions{}, plural.One},
		{"other", "en", 2, intl.PluralOptions{}, plural.Other},
		{"decimal is other", "en", 1.5, intl.PluralOptions{}, plural.Other},
		{"ordinal two", "en", 2, ordinal, plural.Two},
		{"ordinal few", "en", 23, ordinal, plural.Few},
		{"russian many", "ru", 5, intl.PluralOptions{}, plural.Many},
		{"russian few", "ru", "3", intl.PluralOptions{}, plural.Few},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, _ := newConfig(t)
			cfg.Locale = tc.locale
			assert.Equal(t, tc.want, intl.FormatPlural(cfg, state, tc.value, tc.opts))
		})
	}

	t.Run("errors fall back to other", func(t *testing.T) {
		t.Parallel()
		cfg, logs := newConfig(t)
		assert.Equal(t, plural.Other, intl.FormatPlural(cfg, state, "many", intl.PluralOptions{}))
		assert.Equal(t, plural.Other, intl.FormatPlural(cfg, state, 1, intl.PluralOptions{Options: plural.Options{Style: "dual"}}))
		assert.Contains(t, logs.String(), "Error formatting plural")
	})
}
