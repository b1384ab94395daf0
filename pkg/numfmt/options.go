package numfmt

// Styles accepted by Options.Style.
const (
	StyleDecimal  = "decimal"
	StylePercent  = "percent"
	StyleCurrency = "currency"
)

// Currency display modes accepted by Options.CurrencyDisplay.
const (
	DisplaySymbol = "symbol"
	DisplayCode   = "code"
	DisplayName   = "name"
)

// Options mirrors the Intl.NumberFormat option bag. Nil pointers and empty
// strings mean "not set", so a zero Options formats a plain decimal.
type Options struct {
	UseGrouping              *bool  `json:"useGrouping,omitempty" yaml:"useGrouping,omitempty"`
	MinimumIntegerDigits     *int   `json:"minimumIntegerDigits,omitempty" yaml:"minimumIntegerDigits,omitempty"`
	MinimumFractionDigits    *int   `json:"minimumFractionDigits,omitempty" yaml:"minimumFractionDigits,omitempty"`
	MaximumFractionDigits    *int   `json:"maximumFractionDigits,omitempty" yaml:"maximumFractionDigits,omitempty"`
	MinimumSignificantDigits *int   `json:"minimumSignificantDigits,omitempty" yaml:"minimumSignificantDigits,omitempty"`
	MaximumSignificantDigits *int   `json:"maximumSignificantDigits,omitempty" yaml:"maximumSignificantDigits,omitempty"`
	Style                    string `json:"style,omitempty" yaml:"style,omitempty"`
	Currency                 string `json:"currency,omitempty" yaml:"currency,omitempty"`
	CurrencyDisplay          string `json:"currencyDisplay,omitempty" yaml:"currencyDisplay,omitempty"`
}

// Inherit returns a copy of o where every unset field is taken from defaults.
func (o Options) Inherit(defaults Options) Options {
	if o.Style == "" {
		o.Style = defaults.Style
	}
	if o.Currency == "" {
		o.Currency = defaults.Currency
	}
	if o.CurrencyDisplay == "" {
		o.CurrencyDisplay = defaults.CurrencyDisplay
	}
	if o.UseGrouping == nil {
		o.UseGrouping = defaults.UseGrouping
	}
	if o.MinimumIntegerDigits == nil {
		o.MinimumIntegerDigits = defaults.MinimumIntegerDigits
	}
	if o.MinimumFractionDigits == nil {
		o.MinimumFractionDigits = defaults.MinimumFractionDigits
	}
	if o.MaximumFractionDigits == nil {
		o.MaximumFractionDigits = defaults.MaximumFractionDigits
	}
	if o.MinimumSignificantDigits == nil {
		o.MinimumSignificantDigits = defaults.MinimumSignificantDigits
	}
	if o.MaximumSignificantDigits == nil {
		o.MaximumSignificantDigits = defaults.MaximumSignificantDigits
	}
	return o
}

// Int returns a pointer to n, for filling optional digit fields.
func Int(n int) *int { return &n }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
