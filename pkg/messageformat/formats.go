package messageformat

import (
	"maps"

	"github.com/dmitrymomot/intl/pkg/datetime"
	"github.com/dmitrymomot/intl/pkg/numfmt"
)

// Formats holds named styles referenced from patterns, e.g. the "percent"
// in {ratio, number, percent}.
type Formats struct {
	Number map[string]numfmt.Options   `json:"number,omitempty" yaml:"number,omitempty"`
	Date   map[string]datetime.Options `json:"date,omitempty" yaml:"date,omitempty"`
	Time   map[string]datetime.Options `json:"time,omitempty" yaml:"time,omitempty"`
}

// DefaultFormats returns the built-in named styles.
func DefaultFormats() Formats {
	return Formats{
		Number: map[string]numfmt.Options{
			"integer":  {MaximumFractionDigits: numfmt.Int(0)},
			"percent":  {Style: numfmt.StylePercent},
			"currency": {Style: numfmt.StyleCurrency, Currency: "USD"},
		},
		Date: map[string]datetime.Options{
			"short":  {Month: datetime.Numeric, Day: datetime.Numeric, Year: datetime.TwoDigit},
			"medium": {Month: datetime.Short, Day: datetime.Numeric, Year: datetime.Numeric},
			"long":   {Month: datetime.Long, Day: datetime.Numeric, Year: datetime.Numeric},
			"full":   {Weekday: datetime.Long, Month: datetime.Long, Day: datetime.Numeric, Year: datetime.Numeric},
		},
		Time: map[string]datetime.Options{
			"short":  {Hour: datetime.Numeric, Minute: datetime.Numeric},
			"medium": {Hour: datetime.Numeric, Minute: datetime.Numeric, Second: datetime.Numeric},
			"long":   {Hour: datetime.Numeric, Minute: datetime.Numeric, Second: datetime.Numeric, TimeZoneName: datetime.Short},
			"full":   {Hour: datetime.Numeric, Minute: datetime.Numeric, Second: datetime.Numeric, TimeZoneName: datetime.Short},
		},
	}
}

// Merge returns f with custom styles added; a custom style replaces a
// style of the same name. Neither input is modified.
func (f Formats) Merge(custom Formats) Formats {
	return Formats{
		Number: mergeMap(f.Number, custom.Number),
		Date:   mergeMap(f.Date, custom.Date),
		Time:   mergeMap(f.Time, custom.Time),
	}
}

func mergeMap[V any](base, over map[string]V) map[string]V {
	out := make(map[string]V, len(base)+len(over))
	maps.Copy(out, base)
	maps.Copy(out, over)
	return out
}
