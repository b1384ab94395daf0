package relative

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/intl/pkg/numfmt"
	"github.com/dmitrymomot/intl/pkg/plural"
)

// Styles accepted by Options.Style.
const (
	StyleBestFit = "best fit"
	StyleNumeric = "numeric"
)

// Options configures a relative time formatter.
type Options struct {
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
	Units string `json:"units,omitempty" yaml:"units,omitempty"`
}

// Inherit fills unset fields from defaults.
func (o Options) Inherit(defaults Options) Options {
	if o.Style == "" {
		o.Style = defaults.Style
	}
	if o.Units == "" {
		o.Units = defaults.Units
	}
	return o
}

// Thresholds are the upper bounds, exclusive, at which a unit is still
// used before moving to the next larger one.
type Thresholds struct {
	Second float64
	Minute float64
	Hour   float64
	Day    float64
	Month  float64
}

// DefaultThresholds picks "a minute" over "50 seconds" early, the way
// humans round.
var DefaultThresholds = Thresholds{
	Second: 45,
	Minute: 45,
	Hour:   22,
	Day:    26,
	Month:  11,
}

func (t Thresholds) get(unit string) (float64, bool) {
	switch unit {
	case Second:
		return t.Second, true
	case Minute:
		return t.Minute, true
	case Hour:
		return t.Hour, true
	case Day:
		return t.Day, true
	case Month:
		return t.Month, true
	}
	return 0, false
}

// Format is a compiled relative time formatter.
// It is immutable and safe for concurrent use.
type Format struct {
	tag        language.Tag
	data       localeData
	plurals    *plural.Rules
	number     *numfmt.Format
	opts       Options
	thresholds Thresholds
}

// New compiles a relative time formatter for the locale.
func New(locale string, opts Options) (*Format, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}

	switch opts.Style {
	case "":
		opts.Style = StyleBestFit
	case StyleBestFit, StyleNumeric:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStyle, opts.Style)
	}

	if opts.Units != "" && !slices.Contains(units, opts.Units) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUnits, opts.Units)
	}

	rules, err := plural.New(tag.String(), plural.Options{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLocale, err)
	}
	number, err := numfmt.New(tag.String(), numfmt.Options{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLocale, err)
	}

	return &Format{
		tag:        tag,
		data:       lookupLocale(tag),
		plurals:    rules,
		number:     number,
		opts:       opts,
		thresholds: DefaultThresholds,
	}, nil
}

// WithThresholds returns a copy of f that selects units with t.
// f itself is left untouched.
func (f *Format) WithThresholds(t Thresholds) *Format {
	c := *f
	c.thresholds = t
	return &c
}

// Thresholds returns the thresholds used for unit selection.
func (f *Format) Thresholds() Thresholds {
	return f.thresholds
}

// ResolvedOptions returns the options in effect.
func (f *Format) ResolvedOptions() Options {
	return f.opts
}

// Locale returns the canonical locale of the formatter.
func (f *Format) Locale() string {
	return f.tag.String()
}

// Format renders the distance from now to date.
func (f *Format) Format(date, now time.Time) string {
	report := Diff(now, date)

	unit := f.opts.Units
	if unit == "" {
		unit = f.SelectUnit(report)
	}
	value := report.Get(unit)
	fields := f.data[unit]

	if f.opts.Style != StyleNumeric {
		if phrase, ok := fields.relative[int(value)]; ok {
			return phrase
		}
	}

	abs := math.Abs(value)
	patterns := fields.future
	if value < 0 {
		patterns = fields.past
	}

	pattern, ok := patterns[f.plurals.Select(abs)]
	if !ok {
		pattern = patterns[plural.Other]
	}
	return strings.Replace(pattern, "{0}", f.number.Format(abs), 1)
}

// SelectUnit picks the unit for a report using the formatter's thresholds.
func (f *Format) SelectUnit(r Report) string {
	for _, u := range units {
		limit, ok := f.thresholds.get(u)
		if !ok || math.Abs(r.Get(u)) < limit {
			return u
		}
	}
	return Year
}
