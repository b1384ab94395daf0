package datetime_test

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/datetime"
)

// Friday, 16 October 2026, 14:05:09 UTC.
var sample = time.Date(2026, time.October, 16, 14, 5, 9, 0, time.UTC)

func format(t *testing.T, locale string, opts datetime.Options, tm time.Time) string {
	t.Helper()
	f, err := datetime.New(locale, opts)
	require.NoError(t, err)
	return f.Format(tm)
}

func TestFormat_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale   string
		expected string
	}{
		{"en", "10/16/2026"},
		{"en-US", "10/16/2026"},
		{"en-GB", "16/10/2026"},
		{"de", "16.10.2026"},
		{"de-AT", "16.10.2026"},
		{"fr", "16/10/2026"},
		{"ru", "16.10.2026"},
		{"ja", "2026/10/16"},
		{"sw", "10/16/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, format(t, tt.locale, datetime.Options{}, sample))
		})
	}
}

func TestFormat_TextualDates(t *testing.T) {
	t.Parallel()

	long := datetime.Options{Year: datetime.Numeric, Month: datetime.Long, Day: datetime.Numeric}
	full := long
	full.Weekday = datetime.Long

	tests := []struct {
		name     string
		locale   string
		opts     datetime.Options
		expected string
	}{
		{"en long", "en", long, "October 16, 2026"},
		{"en full", "en", full, "Friday, October 16, 2026"},
		{"en short month", "en", datetime.Options{Month: datetime.Short, Day: datetime.Numeric}, "Oct 16"},
		{"en month year", "en", datetime.Options{Month: datetime.Long, Year: datetime.Numeric}, "October 2026"},
		{"en-GB long", "en-GB", long, "16 October 2026"},
		{"de long", "de", long, "16. Oktober 2026"},
		{"de full", "de", full, "Freitag, 16. Oktober 2026"},
		{"fr full", "fr", full, "vendredi 16 octobre 2026"},
		{"es long", "es", long, "16 de octubre de 2026"},
		{"ru long uses genitive", "ru", long, "16 октября 2026 г."},
		{"ru month year uses nominative", "ru", datetime.Options{Month: datetime.Long, Year: datetime.Numeric}, "октябрь 2026 г."},
		{"ja long", "ja", long, "2026年10月16日"},
		{"ja full", "ja", full, "2026年10月16日金曜日"},
		{"weekday alone", "en", datetime.Options{Weekday: datetime.Short}, "Fri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, format(t, tt.locale, tt.opts, sample))
		})
	}
}

func TestFormat_NumericDates(t *testing.T) {
	t.Parallel()

	early := time.Date(2026, time.January, 5, 9, 3, 0, 0, time.UTC)

	t.Run("numeric does not pad", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "1/5/2026", format(t, "en", datetime.Options{}, early))
	})

	t.Run("two digit pads", func(t *testing.T) {
		t.Parallel()
		opts := datetime.Options{Year: datetime.TwoDigit, Month: datetime.TwoDigit, Day: datetime.TwoDigit}
		require.Equal(t, "01/05/26", format(t, "en", opts, early))
	})

	t.Run("dd/MM locales pad day and month", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "05/01/2026", format(t, "en-GB", datetime.Options{}, early))
		require.Equal(t, "05/01/2026", format(t, "fr", datetime.Options{}, early))
		require.Equal(t, "05.01.2026", format(t, "ru", datetime.Options{}, early))
		require.Equal(t, "05/01", format(t, "en-GB", datetime.Options{Month: datetime.Numeric, Day: datetime.Numeric}, early))
	})

	t.Run("d/M locales do not pad", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "5.1.2026", format(t, "de", datetime.Options{}, early))
		require.Equal(t, "5/1/2026", format(t, "es", datetime.Options{}, early))
		require.Equal(t, "2026/1/5", format(t, "ja", datetime.Options{}, early))
	})

	t.Run("German day and month keep trailing dot", func(t *testing.T) {
		t.Parallel()
		opts := datetime.Options{Month: datetime.Numeric, Day: datetime.Numeric}
		require.Equal(t, "5.1.", format(t, "de", opts, early))
	})

	t.Run("era", func(t *testing.T) {
		t.Parallel()
		opts := datetime.Options{Year: datetime.Numeric, Era: datetime.Short}
		require.Equal(t, "2026 AD", format(t, "en", opts, early))
	})
}

func TestFormat_Times(t *testing.T) {
	t.Parallel()

	hm := datetime.Options{Hour: datetime.Numeric, Minute: datetime.Numeric}
	morning := time.Date(2026, time.October, 16, 9, 5, 0, 0, time.UTC)

	tests := []struct {
		name     string
		locale   string
		opts     datetime.Options
		tm       time.Time
		expected string
	}{
		{"en 12h", "en-US", hm, sample, "2:05 PM"},
		{"en midnight", "en", hm, time.Date(2026, 1, 1, 0, 30, 0, 0, time.UTC), "12:30 AM"},
		{"en hour only", "en", datetime.Options{Hour: datetime.Numeric}, sample, "2 PM"},
		{"en seconds", "en", datetime.Options{Hour: datetime.Numeric, Minute: datetime.Numeric, Second: datetime.Numeric}, sample, "2:05:09 PM"},
		{"en forced 24h", "en", datetime.Options{Hour: datetime.Numeric, Minute: datetime.Numeric, Hour12: datetime.Bool(false)}, sample, "14:05"},
		{"en forced 24h pads hour", "en", datetime.Options{Hour: datetime.Numeric, Minute: datetime.Numeric, Hour12: datetime.Bool(false)}, time.Date(2026, 1, 1, 0, 5, 0, 0, time.UTC), "00:05"},
		{"en-GB pads hour", "en-GB", hm, morning, "09:05"},
		{"es keeps single digit hour", "es", hm, morning, "9:05"},
		{"de", "de", hm, sample, "14:05"},
		{"de hour only", "de", datetime.Options{Hour: datetime.Numeric}, sample, "14 Uhr"},
		{"ja", "ja", hm, morning, "9:05"},
		{"ja 12h", "ja", datetime.Options{Hour: datetime.Numeric, Minute: datetime.Numeric, Hour12: datetime.Bool(true)}, sample, "午後2:05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, format(t, tt.locale, tt.opts, tt.tm))
		})
	}
}

func TestFormat_DateAndTime(t *testing.T) {
	t.Parallel()

	opts := datetime.Options{
		Year:   datetime.Numeric,
		Month:  datetime.Numeric,
		Day:    datetime.Numeric,
		Hour:   datetime.Numeric,
		Minute: datetime.Numeric,
	}

	require.Equal(t, "10/16/2026, 2:05 PM", format(t, "en", opts, sample))
	require.Equal(t, "16.10.2026, 14:05", format(t, "de", opts, sample))
	require.Equal(t, "16/10/2026 14:05", format(t, "fr", opts, sample))
}

func TestFormat_TimeZone(t *testing.T) {
	t.Parallel()

	t.Run("converts to the zone", func(t *testing.T) {
		t.Parallel()
		opts := datetime.Options{
			Hour:         datetime.Numeric,
			Minute:       datetime.Numeric,
			TimeZone:     "America/New_York",
			TimeZoneName: datetime.Short,
		}
		require.Equal(t, "10:05 AM EDT", format(t, "en", opts, sample))
	})

	t.Run("long zone name", func(t *testing.T) {
		t.Parallel()
		opts := datetime.Options{
			Hour:         datetime.Numeric,
			Minute:       datetime.Numeric,
			TimeZone:     "Europe/Berlin",
			TimeZoneName: datetime.Long,
		}
		require.Equal(t, "16:05 Europe/Berlin", format(t, "de", opts, sample))
	})

	t.Run("fixed offset without abbreviation", func(t *testing.T) {
		t.Parallel()
		tm := sample.In(time.FixedZone("", 5*3600+1800))
		opts := datetime.Options{Hour: datetime.Numeric, Minute: datetime.Numeric, TimeZoneName: datetime.Short}
		require.Equal(t, "19:35 GMT+5:30", format(t, "de", opts, tm))
	})
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := datetime.New("??", datetime.Options{})
	require.ErrorIs(t, err, datetime.ErrInvalidLocale)

	_, err = datetime.New("en", datetime.Options{Month: "very-long"})
	require.ErrorIs(t, err, datetime.ErrInvalidOption)

	_, err = datetime.New("en", datetime.Options{Day: datetime.Long})
	require.ErrorIs(t, err, datetime.ErrInvalidOption)

	_, err = datetime.New("en", datetime.Options{TimeZone: "Mars/Olympus_Mons"})
	require.ErrorIs(t, err, datetime.ErrInvalidTimeZone)
}

func TestFormat_ResolvedOptions(t *testing.T) {
	t.Parallel()

	f, err := datetime.New("en", datetime.Options{})
	require.NoError(t, err)

	opts := f.ResolvedOptions()
	require.Equal(t, datetime.Numeric, opts.Year)
	require.Equal(t, datetime.Numeric, opts.Month)
	require.Equal(t, datetime.Numeric, opts.Day)
	require.Nil(t, opts.Hour12)

	g, err := datetime.New("de", datetime.Options{Hour: datetime.Numeric})
	require.NoError(t, err)
	require.False(t, *g.ResolvedOptions().Hour12)
}

func TestOptions_Inherit(t *testing.T) {
	t.Parallel()

	named := datetime.Options{Month: datetime.Long, Day: datetime.Numeric, Year: datetime.Numeric}
	got := datetime.Options{Month: datetime.Short}.Inherit(named)

	require.Equal(t, datetime.Short, got.Month)
	require.Equal(t, datetime.Numeric, got.Day)
	require.Equal(t, datetime.Numeric, got.Year)
}

func TestSupportedLocales(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"de", "en", "en-GB", "es", "fr", "ja", "ru"}, datetime.SupportedLocales())
}
