package intl

import (
	"log/slog"
	"maps"

	"github.com/microcosm-cc/bluemonday"
)

// Option configures an Intl.
type Option func(*Intl)

// WithLocale sets the formatting locale. Default: DefaultLocale.
func WithLocale(locale string) Option {
	return func(i *Intl) {
		i.cfg.Locale = locale
	}
}

// WithMessages sets the message catalog of the locale. The map is copied.
func WithMessages(messages map[string]string) Option {
	return func(i *Intl) {
		i.cfg.Messages = maps.Clone(messages)
	}
}

// WithFormats sets the named formats of the locale.
func WithFormats(formats Formats) Option {
	return func(i *Intl) {
		i.cfg.Formats = formats
	}
}

// WithDefaultLocale sets the locale default messages are written in.
func WithDefaultLocale(locale string) Option {
	return func(i *Intl) {
		i.cfg.DefaultLocale = locale
	}
}

// WithDefaultFormats sets the named formats used with default messages.
func WithDefaultFormats(formats Formats) Option {
	return func(i *Intl) {
		i.cfg.DefaultFormats = formats
	}
}

// WithTimeZone sets the IANA zone for dates and times.
func WithTimeZone(name string) Option {
	return func(i *Intl) {
		i.cfg.TimeZone = name
	}
}

// WithLogger sets the logger that receives formatting errors.
func WithLogger(log *slog.Logger) Option {
	return func(i *Intl) {
		i.cfg.Logger = log
	}
}

// WithProduction enables production mode, see Config.Production.
func WithProduction(enabled bool) Option {
	return func(i *Intl) {
		i.cfg.Production = enabled
	}
}

// WithHTMLPolicy sets the policy that sanitizes FormatHTMLMessage output.
func WithHTMLPolicy(p *bluemonday.Policy) Option {
	return func(i *Intl) {
		i.cfg.HTMLPolicy = p
	}
}

// WithState shares a State between several Intl values. Without it each
// Intl gets its own.
func WithState(s *State) Option {
	return func(i *Intl) {
		i.state = s
	}
}

// WithConfig replaces the whole configuration. Options after it still
// apply on top.
func WithConfig(cfg Config) Option {
	return func(i *Intl) {
		i.cfg = cfg
	}
}

// Intl is a Config bound to a State.
type Intl struct {
	cfg       Config
	state     *State
	ownsState bool
}

// New creates an Intl. Without WithState it owns a fresh State, which
// starts one cache janitor goroutine per formatter kind that runs until
// Close. Code creating an Intl per request should share one State through
// WithState, With or a Provider instead.
func New(opts ...Option) *Intl {
	i := &Intl{cfg: Config{Locale: DefaultLocale}}
	for _, opt := range opts {
		opt(i)
	}
	if i.cfg.Locale == "" {
		i.cfg.Locale = i.cfg.defaultLocale()
	}
	if i.state == nil {
		i.state = NewState()
		i.ownsState = true
	}
	return i
}

// Locale returns the formatting locale.
func (i *Intl) Locale() string {
	return i.cfg.Locale
}

// Config returns a copy of the configuration.
func (i *Intl) Config() Config {
	cfg := i.cfg
	cfg.Messages = maps.Clone(cfg.Messages)
	return cfg
}

// State returns the state used for formatter memoization.
func (i *Intl) State() *State {
	return i.state
}

// With returns a copy of i with opts applied, sharing its State.
func (i *Intl) With(opts ...Option) *Intl {
	return New(append([]Option{WithConfig(i.cfg), WithState(i.state)}, opts...)...)
}

// FormatDate is the bound form of the package-level FormatDate.
func (i *Intl) FormatDate(value any, opts DateOptions) string {
	return FormatDate(i.cfg, i.state, value, opts)
}

// FormatTime is the bound form of the package-level FormatTime.
func (i *Intl) FormatTime(value any, opts DateOptions) string {
	return FormatTime(i.cfg, i.state, value, opts)
}

// FormatRelative is the bound form of the package-level FormatRelative.
func (i *Intl) FormatRelative(value any, opts RelativeOptions) string {
	return FormatRelative(i.cfg, i.state, value, opts)
}

// FormatNumber is the bound form of the package-level FormatNumber.
func (i *Intl) FormatNumber(value any, opts NumberOptions) string {
	return FormatNumber(i.cfg, i.state, value, opts)
}

// FormatPlural is the bound form of the package-level FormatPlural.
func (i *Intl) FormatPlural(value any, opts PluralOptions) string {
	return FormatPlural(i.cfg, i.state, value, opts)
}

// FormatMessage is the bound form of the package-level FormatMessage.
func (i *Intl) FormatMessage(descriptor MessageDescriptor, values Values) string {
	return FormatMessage(i.cfg, i.state, descriptor, values)
}

// FormatHTMLMessage is the bound form of the package-level FormatHTMLMessage.
func (i *Intl) FormatHTMLMessage(descriptor MessageDescriptor, values Values) string {
	return FormatHTMLMessage(i.cfg, i.state, descriptor, values)
}

// T formats the message id with values and no default message.
func (i *Intl) T(id string, values Values) string {
	return FormatMessage(i.cfg, i.state, MessageDescriptor{ID: id}, values)
}

// Close releases the State when New created it. A shared State is left
// to its owner.
func (i *Intl) Close() error {
	if !i.ownsState {
		return nil
	}
	return i.state.Close()
}
