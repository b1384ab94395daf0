// Package numfmt formats numbers the way Intl.NumberFormat does: decimal,
// percent and currency styles with configurable grouping, integer digits,
// fraction digits and significant digits.
//
// Locale specific digits, decimal and grouping separators come from
// golang.org/x/text/message and golang.org/x/text/number; currency symbols
// and minor-unit scales come from golang.org/x/text/currency.
//
//	f, err := numfmt.New("de", numfmt.Options{Style: numfmt.StyleCurrency, Currency: "EUR"})
//	if err != nil {
//		return err
//	}
//	f.Format(1234.5) // "1.234,50 €"
//
// Rounding is half away from zero, matching browsers rather than the
// banker's rounding used by x/text internally.
package numfmt
