// Package plural selects CLDR plural categories for numbers.
//
// It mirrors Intl.PluralRules: a Rules value is bound to one locale and one
// style (cardinal or ordinal) and maps a number to one of the categories
// "zero", "one", "two", "few", "many" or "other".
//
//	rules, err := plural.New("en", plural.Options{Style: plural.StyleOrdinal})
//	if err != nil {
//		return err
//	}
//	rules.Select(2) // "two"
//
// Rule data comes from golang.org/x/text/feature/plural. Operands (i, v, w,
// f, t) are derived from the shortest decimal form of the number, so 1.50
// passed as a float is seen as "1.5".
package plural
