package intl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/intl/pkg/datetime"
	"github.com/dmitrymomot/intl/pkg/messageformat"
	"github.com/dmitrymomot/intl/pkg/numfmt"
	"github.com/dmitrymomot/intl/pkg/plural"
	"github.com/dmitrymomot/intl/pkg/relative"
)

// InvalidDate is returned by the date functions for values that are not
// dates at all.
const InvalidDate = "Invalid Date"

// relativeThresholds keep "59 minutes ago" instead of rounding up to
// "an hour ago" early. They apply to FormatRelative calls only.
var relativeThresholds = relative.Thresholds{
	Second: 60,
	Minute: 60,
	Hour:   24,
	Day:    30,
	Month:  12,
}

// FormatDate formats value as a date. value is anything
// messageformat.ToTime accepts: a time.Time, Unix milliseconds or an
// RFC 3339 string.
func FormatDate(cfg Config, state *State, value any, opts DateOptions) string {
	date, err := toDate(value)
	if err != nil {
		logError(cfg, "Error formatting date", err)
		return InvalidDate
	}

	filtered := opts.Options.Inherit(dateDefaults(cfg, cfg.Formats.Date, "date", opts.Format))
	f, err := state.DateTimeFormat(cfg.Locale, filtered)
	if err != nil {
		logError(cfg, "Error formatting date", err)
		return date.String()
	}
	return f.Format(date)
}

// FormatTime formats value as a time of day. Without any of hour, minute
// or second it shows hours and minutes.
func FormatTime(cfg Config, state *State, value any, opts DateOptions) string {
	date, err := toDate(value)
	if err != nil {
		logError(cfg, "Error formatting time", err)
		return InvalidDate
	}

	filtered := opts.Options.Inherit(dateDefaults(cfg, cfg.Formats.Time, "time", opts.Format))
	if !filtered.HasTime() {
		filtered.Hour = datetime.Numeric
		filtered.Minute = datetime.Numeric
	}
	f, err := state.DateTimeFormat(cfg.Locale, filtered)
	if err != nil {
		logError(cfg, "Error formatting time", err)
		return date.String()
	}
	return f.Format(date)
}

// FormatRelative formats the distance between value and opts.Now, e.g.
// "3 hours ago" or "tomorrow".
func FormatRelative(cfg Config, state *State, value any, opts RelativeOptions) string {
	date, err := toDate(value)
	if err != nil {
		logError(cfg, "Error formatting relative time", err)
		return InvalidDate
	}

	now := state.Now()
	if opts.Now != nil {
		if t, err := messageformat.ToTime(opts.Now); err == nil {
			now = t
		}
	}

	var defaults relative.Options
	if opts.Format != "" {
		named, ok := cfg.Formats.Relative[opts.Format]
		if !ok {
			logError(cfg, "Error formatting relative time", unknownFormat("relative", opts.Format))
		}
		defaults = named
	}

	f, err := state.RelativeFormat(cfg.Locale, opts.Options.Inherit(defaults))
	if err != nil {
		logError(cfg, "Error formatting relative time", err)
		return date.String()
	}
	return f.WithThresholds(relativeThresholds).Format(date, now)
}

// FormatNumber formats value, any Go number or numeric string.
func FormatNumber(cfg Config, state *State, value any, opts NumberOptions) string {
	n, err := messageformat.ToNumber(value)
	if err != nil {
		logError(cfg, "Error formatting number", errors.Join(ErrInvalidNumber, err))
		return messageformat.ToString(value)
	}

	var defaults numfmt.Options
	if opts.Format != "" {
		named, ok := cfg.Formats.Number[opts.Format]
		if !ok {
			logError(cfg, "Error formatting number", unknownFormat("number", opts.Format))
		}
		defaults = named
	}

	f, err := state.NumberFormat(cfg.Locale, opts.Options.Inherit(defaults))
	if err != nil {
		logError(cfg, "Error formatting number", err)
		return messageformat.ToString(value)
	}
	return f.Format(n)
}

// FormatPlural returns the CLDR plural category of value: zero, one, two,
// few, many or other.
func FormatPlural(cfg Config, state *State, value any, opts PluralOptions) string {
	n, err := messageformat.ToNumber(value)
	if err != nil {
		logError(cfg, "Error formatting plural", errors.Join(ErrInvalidNumber, err))
		return plural.Other
	}

	rules, err := state.PluralFormat(cfg.Locale, opts.Options)
	if err != nil {
		logError(cfg, "Error formatting plural", err)
		return plural.Other
	}
	return rules.Select(n)
}

func toDate(value any) (time.Time, error) {
	t, err := messageformat.ToTime(value)
	if err != nil {
		return time.Time{}, errors.Join(ErrInvalidDate, err)
	}
	return t, nil
}

// dateDefaults layers the named format over the configured time zone.
func dateDefaults(cfg Config, formats map[string]datetime.Options, kind, name string) datetime.Options {
	defaults := datetime.Options{TimeZone: cfg.TimeZone}
	if name == "" {
		return defaults
	}
	named, ok := formats[name]
	if !ok {
		logError(cfg, "Error formatting "+kind, unknownFormat(kind, name))
		return defaults
	}
	return named.Inherit(defaults)
}

func unknownFormat(kind, name string) error {
	return fmt.Errorf("%w: no %s format named %q", ErrUnknownFormat, kind, name)
}

func logError(cfg Config, msg string, err error, attrs ...slog.Attr) {
	attrs = append(attrs, slog.String("locale", cfg.Locale), slog.Any("error", err))
	cfg.log().LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}
