package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/intl/pkg/plural"
)

// nbsp separates a currency from its amount, as CLDR patterns do.
const nbsp = "\u00a0"

// Format is a compiled number formatter bound to a locale and options.
// It is immutable and safe for concurrent use.
type Format struct {
	tag      language.Tag
	printer  *message.Printer
	plurals  *plural.Rules
	unit     currency.Unit
	style    string
	display  string
	symbol   string
	grouping bool
	minInt   int
	minFrac  int
	maxFrac  int
	minSig   int
	maxSig   int
}

// New compiles a number formatter for the locale.
func New(locale string, opts Options) (*Format, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}

	f := &Format{
		tag:      tag,
		printer:  message.NewPrinter(tag),
		style:    opts.Style,
		grouping: true,
		minInt:   1,
	}

	switch opts.Style {
	case "":
		f.style = StyleDecimal
	case StyleDecimal, StylePercent, StyleCurrency:
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidStyle, opts.Style)
	}

	if opts.UseGrouping != nil {
		f.grouping = *opts.UseGrouping
	}

	if v := opts.MinimumIntegerDigits; v != nil {
		if *v < 1 || *v > 21 {
			return nil, fmt.Errorf("%w: minimumIntegerDigits %d", ErrOutOfRange, *v)
		}
		f.minInt = *v
	}

	if err := f.resolveCurrency(opts); err != nil {
		return nil, err
	}
	if err := f.resolveFractionDigits(opts); err != nil {
		return nil, err
	}
	if err := f.resolveSignificantDigits(opts); err != nil {
		return nil, err
	}

	return f, nil
}

func (f *Format) resolveCurrency(opts Options) error {
	code := strings.ToUpper(strings.TrimSpace(opts.Currency))
	if f.style == StyleCurrency && code == "" {
		return ErrMissingCurrency
	}
	if code != "" {
		unit, err := currency.ParseISO(code)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidCurrency, opts.Currency)
		}
		f.unit = unit
	}

	if f.style != StyleCurrency {
		return nil
	}

	switch opts.CurrencyDisplay {
	case "", DisplaySymbol:
		f.display = DisplaySymbol
		f.symbol = f.printer.Sprint(currency.Symbol(f.unit))
	case DisplayCode:
		f.display = DisplayCode
		f.symbol = f.unit.String()
	case DisplayName:
		f.display = DisplayName
		rules, err := plural.New(f.tag.String(), plural.Options{})
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLocale, f.tag.String())
		}
		f.plurals = rules
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDisplay, opts.CurrencyDisplay)
	}

	return nil
}

func (f *Format) resolveFractionDigits(opts Options) error {
	var defMin, defMax int
	switch f.style {
	case StylePercent:
		defMin, defMax = 0, 0
	case StyleCurrency:
		scale, _ := currency.Standard.Rounding(f.unit)
		defMin, defMax = scale, scale
	default:
		defMin, defMax = 0, 3
	}

	minFrac, maxFrac := defMin, defMax
	if v := opts.MinimumFractionDigits; v != nil {
		if *v < 0 || *v > 20 {
			return fmt.Errorf("%w: minimumFractionDigits %d", ErrOutOfRange, *v)
		}
		minFrac = *v
		maxFrac = max(maxFrac, minFrac)
	}
	if v := opts.MaximumFractionDigits; v != nil {
		if *v < 0 || *v > 20 {
			return fmt.Errorf("%w: maximumFractionDigits %d", ErrOutOfRange, *v)
		}
		maxFrac = *v
		if minFrac > maxFrac {
			if opts.MinimumFractionDigits != nil {
				return fmt.Errorf("%w: minimumFractionDigits %d exceeds maximumFractionDigits %d", ErrOutOfRange, minFrac, maxFrac)
			}
			minFrac = maxFrac
		}
	}

	f.minFrac, f.maxFrac = minFrac, maxFrac
	return nil
}

func (f *Format) resolveSignificantDigits(opts Options) error {
	if opts.MinimumSignificantDigits == nil && opts.MaximumSignificantDigits == nil {
		return nil
	}

	minSig, maxSig := 1, 21
	if v := opts.MinimumSignificantDigits; v != nil {
		if *v < 1 || *v > 21 {
			return fmt.Errorf("%w: minimumSignificantDigits %d", ErrOutOfRange, *v)
		}
		minSig = *v
	}
	if v := opts.MaximumSignificantDigits; v != nil {
		if *v < minSig || *v > 21 {
			return fmt.Errorf("%w: maximumSignificantDigits %d", ErrOutOfRange, *v)
		}
		maxSig = *v
	}

	f.minSig, f.maxSig = minSig, maxSig
	return nil
}

// Format renders n according to the formatter's locale and options.
func (f *Format) Format(n float64) string {
	if math.IsNaN(n) {
		return "NaN"
	}

	negative := n < 0
	abs := math.Abs(n)
	if math.IsInf(abs, 0) {
		if negative {
			return "-∞"
		}
		return "∞"
	}

	scaled := abs
	if f.style == StylePercent {
		scaled = shiftDecimal(abs, 2)
	}

	minFrac, maxFrac := f.minFrac, f.maxFrac
	if f.maxSig > 0 {
		scaled, minFrac, maxFrac = roundSignificant(scaled, f.minSig, f.maxSig)
	} else {
		scaled = roundHalfAway(scaled, maxFrac)
	}
	if scaled == 0 {
		negative = false
	}

	opts := []number.Option{
		number.MinFractionDigits(minFrac),
		number.MaxFractionDigits(maxFrac),
	}
	if f.minInt > 1 {
		opts = append(opts, number.MinIntegerDigits(f.minInt))
	}
	if !f.grouping {
		opts = append(opts, number.NoSeparator())
	}

	var body string
	switch f.style {
	case StylePercent:
		body = f.printer.Sprint(number.Percent(shiftDecimal(scaled, -2), opts...))
	case StyleCurrency:
		body = f.decorateCurrency(f.printer.Sprint(number.Decimal(scaled, opts...)), scaled)
	default:
		body = f.printer.Sprint(number.Decimal(scaled, opts...))
	}

	if negative {
		return "-" + body
	}
	return body
}

// ResolvedOptions reports the effective options after defaults were applied.
func (f *Format) ResolvedOptions() Options {
	o := Options{
		Style:                 f.style,
		UseGrouping:           Bool(f.grouping),
		MinimumIntegerDigits:  Int(f.minInt),
		MinimumFractionDigits: Int(f.minFrac),
		MaximumFractionDigits: Int(f.maxFrac),
	}
	if f.style == StyleCurrency {
		o.Currency = f.unit.String()
		o.CurrencyDisplay = f.display
	}
	if f.maxSig > 0 {
		o.MinimumSignificantDigits = Int(f.minSig)
		o.MaximumSignificantDigits = Int(f.maxSig)
	}
	return o
}

// Locale returns the canonical locale of the formatter.
func (f *Format) Locale() string {
	return f.tag.String()
}

func (f *Format) decorateCurrency(num string, amount float64) string {
	if f.display == DisplayName {
		return num + " " + f.currencyName(amount)
	}

	if currencyAfter(f.tag) {
		return num + nbsp + f.symbol
	}
	if isAlphabetic(f.symbol) {
		return f.symbol + nbsp + num
	}
	return f.symbol + num
}

func (f *Format) currencyName(amount float64) string {
	code := f.unit.String()
	base, _ := f.tag.Base()
	if base.String() != "en" {
		return code
	}
	names, ok := currencyNames[code]
	if !ok {
		return code
	}
	if f.plurals.Select(amount) == plural.One {
		return names[0]
	}
	return names[1]
}

// shiftDecimal multiplies v by 10^places without binary rounding noise,
// so 0.285 becomes exactly 28.5.
func shiftDecimal(v float64, places int) float64 {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return v * math.Pow10(places)
	}
	r, err := strconv.ParseFloat(mantissa+"e"+strconv.Itoa(e+places), 64)
	if err != nil {
		return v * math.Pow10(places)
	}
	return r
}

// roundHalfAway rounds a non-negative v to the given number of fraction
// digits using decimal arithmetic on its shortest representation.
func roundHalfAway(v float64, digits int) float64 {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	if len(frac) <= digits {
		return v
	}

	buf := []byte(intPart + frac[:digits])
	if frac[digits] >= '5' {
		i := len(buf) - 1
		for ; i >= 0; i-- {
			if buf[i] == '9' {
				buf[i] = '0'
				continue
			}
			buf[i]++
			break
		}
		if i < 0 {
			buf = append([]byte{'1'}, buf...)
		}
	}

	point := len(buf) - digits
	rounded := string(buf[:point])
	if digits > 0 {
		rounded += "." + string(buf[point:])
	}
	r, err := strconv.ParseFloat(rounded, 64)
	if err != nil {
		return v
	}
	return r
}

// roundSignificant rounds v to maxSig significant digits and converts the
// significant digit bounds into fraction digit bounds for the result.
func roundSignificant(v float64, minSig, maxSig int) (float64, int, int) {
	if v == 0 {
		return 0, minSig - 1, minSig - 1
	}

	exp := decimalExponent(v)
	fracDigits := maxSig - 1 - exp

	var r float64
	if fracDigits >= 0 {
		r = roundHalfAway(v, fracDigits)
	} else {
		p := shiftDecimal(1, -fracDigits)
		r = roundHalfAway(shiftDecimal(v, fracDigits), 0) * p
	}
	if r > 0 {
		exp = decimalExponent(r)
	}

	maxFrac := max(0, maxSig-1-exp)
	minFrac := min(max(0, minSig-1-exp), maxFrac)
	return r, minFrac, maxFrac
}

// decimalExponent returns floor(log10(v)) for v > 0 without float drift.
func decimalExponent(v float64) int {
	s := strconv.FormatFloat(v, 'e', -1, 64)
	_, exp, _ := strings.Cut(s, "e")
	e, err := strconv.Atoi(exp)
	if err != nil {
		return int(math.Floor(math.Log10(v)))
	}
	return e
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}
