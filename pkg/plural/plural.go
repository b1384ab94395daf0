package plural

import (
	"fmt"
	"math"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
)

// Plural category names as defined by Unicode CLDR.
const (
	Zero  = "zero"
	One   = "one"
	Two   = "two"
	Few   = "few"
	Many  = "many"
	Other = "other"
)

// Styles accepted by Options.Style.
const (
	StyleCardinal = "cardinal"
	StyleOrdinal  = "ordinal"
)

// Options configures a Rules value. An empty Style means cardinal.
type Options struct {
	Style string `json:"style,omitempty" yaml:"style,omitempty"`
}

// Inherit fills unset fields from defaults.
func (o Options) Inherit(defaults Options) Options {
	if o.Style == "" {
		o.Style = defaults.Style
	}
	return o
}

// Rules selects plural categories for a single locale and style.
// It is immutable and safe for concurrent use.
type Rules struct {
	tag   language.Tag
	rules *plural.Rules
	style string
}

// New creates plural rules for the locale.
func New(locale string, opts Options) (*Rules, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}

	r := &Rules{tag: tag, style: opts.Style}
	switch opts.Style {
	case "", StyleCardinal:
		r.style = StyleCardinal
		r.rules = plural.Cardinal
	case StyleOrdinal:
		r.rules = plural.Ordinal
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStyle, opts.Style)
	}

	return r, nil
}

// Select returns the plural category of n.
// NaN and infinities always map to "other".
func (r *Rules) Select(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return Other
	}
	ops, err := NewOperands(n)
	if err != nil {
		return Other
	}
	return r.SelectOperands(ops)
}

// SelectOperands returns the category for precomputed operands.
func (r *Rules) SelectOperands(ops Operands) string {
	return formName(r.rules.MatchPlural(r.tag, ops.I, ops.V, ops.W, ops.F, ops.T))
}

// Locale returns the locale the rules were built for.
func (r *Rules) Locale() string {
	return r.tag.String()
}

// Style returns the resolved style.
func (r *Rules) Style() string {
	return r.style
}

func formName(f plural.Form) string {
	switch f {
	case plural.Zero:
		return Zero
	case plural.One:
		return One
	case plural.Two:
		return Two
	case plural.Few:
		return Few
	case plural.Many:
		return Many
	default:
		return Other
	}
}

// IsCategory reports whether s is a CLDR plural category name.
func IsCategory(s string) bool {
	switch s {
	case Zero, One, Two, Few, Many, Other:
		return true
	}
	return false
}
