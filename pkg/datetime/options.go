package datetime

import (
	"fmt"
	"slices"
)

// Component widths.
const (
	Numeric  = "numeric"
	TwoDigit = "2-digit"
	Narrow   = "narrow"
	Short    = "short"
	Long     = "long"
)

// Options mirrors the Intl.DateTimeFormat option bag. Empty strings and
// nil pointers mean "not set".
type Options struct {
	Hour12       *bool  `json:"hour12,omitempty" yaml:"hour12,omitempty"`
	Weekday      string `json:"weekday,omitempty" yaml:"weekday,omitempty"`
	Era          string `json:"era,omitempty" yaml:"era,omitempty"`
	Year         string `json:"year,omitempty" yaml:"year,omitempty"`
	Month        string `json:"month,omitempty" yaml:"month,omitempty"`
	Day          string `json:"day,omitempty" yaml:"day,omitempty"`
	Hour         string `json:"hour,omitempty" yaml:"hour,omitempty"`
	Minute       string `json:"minute,omitempty" yaml:"minute,omitempty"`
	Second       string `json:"second,omitempty" yaml:"second,omitempty"`
	TimeZoneName string `json:"timeZoneName,omitempty" yaml:"timeZoneName,omitempty"`
	TimeZone     string `json:"timeZone,omitempty" yaml:"timeZone,omitempty"`
}

// Inherit returns a copy of o where every unset field is taken from defaults.
func (o Options) Inherit(defaults Options) Options {
	if o.Hour12 == nil {
		o.Hour12 = defaults.Hour12
	}
	if o.Weekday == "" {
		o.Weekday = defaults.Weekday
	}
	if o.Era == "" {
		o.Era = defaults.Era
	}
	if o.Year == "" {
		o.Year = defaults.Year
	}
	if o.Month == "" {
		o.Month = defaults.Month
	}
	if o.Day == "" {
		o.Day = defaults.Day
	}
	if o.Hour == "" {
		o.Hour = defaults.Hour
	}
	if o.Minute == "" {
		o.Minute = defaults.Minute
	}
	if o.Second == "" {
		o.Second = defaults.Second
	}
	if o.TimeZoneName == "" {
		o.TimeZoneName = defaults.TimeZoneName
	}
	if o.TimeZone == "" {
		o.TimeZone = defaults.TimeZone
	}
	return o
}

// HasDate reports whether any date component is requested.
func (o Options) HasDate() bool {
	return o.Weekday != "" || o.Year != "" || o.Month != "" || o.Day != ""
}

// HasTime reports whether any time component is requested.
func (o Options) HasTime() bool {
	return o.Hour != "" || o.Minute != "" || o.Second != ""
}

// Bool returns a pointer to b, for Hour12.
func Bool(b bool) *bool { return &b }

func (o Options) validate() error {
	checks := []struct {
		name    string
		value   string
		allowed []string
	}{
		{"weekday", o.Weekday, []string{Narrow, Short, Long}},
		{"era", o.Era, []string{Narrow, Short, Long}},
		{"year", o.Year, []string{Numeric, TwoDigit}},
		{"month", o.Month, []string{Numeric, TwoDigit, Narrow, Short, Long}},
		{"day", o.Day, []string{Numeric, TwoDigit}},
		{"hour", o.Hour, []string{Numeric, TwoDigit}},
		{"minute", o.Minute, []string{Numeric, TwoDigit}},
		{"second", o.Second, []string{Numeric, TwoDigit}},
		{"timeZoneName", o.TimeZoneName, []string{Short, Long}},
	}

	for _, c := range checks {
		if c.value == "" {
			continue
		}
		if !slices.Contains(c.allowed, c.value) {
			return fmt.Errorf("%w: %s %q", ErrInvalidOption, c.name, c.value)
		}
	}
	return nil
}
