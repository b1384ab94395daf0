package intl

import (
	"slices"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/intl/pkg/catalog"
)

// Provider hands out an Intl per locale backed by a message catalog.
// It is safe for concurrent use.
type Provider struct {
	catalog func() *catalog.Catalog
	opts    []Option
	state   *State
}

// NewProvider serves messages from a fixed catalog. opts are applied to
// every Intl it creates; the locale and messages are set per call to For.
func NewProvider(c *catalog.Catalog, opts ...Option) *Provider {
	return newProvider(func() *catalog.Catalog { return c }, opts)
}

// NewStoreProvider serves messages from the current snapshot of s, so
// reloads are visible on the next call to For.
func NewStoreProvider(s *catalog.Store, opts ...Option) *Provider {
	return newProvider(s.Catalog, opts)
}

func newProvider(c func() *catalog.Catalog, opts []Option) *Provider {
	p := &Provider{catalog: c, opts: opts}
	// Resolve the shared state once so every Intl memoizes into it.
	p.state = New(opts...).state
	return p
}

// For returns an Intl for locale. Messages fall back from the locale to
// its base language and then to the catalog's default locale. An invalid
// locale formats in the default locale.
func (p *Provider) For(locale string) *Intl {
	c := p.catalog()
	locale = catalog.Canonical(locale)
	resolved, messages := c.Resolve(locale)
	if !validLocale(locale) {
		locale = resolved
	}
	if !validLocale(locale) {
		locale = c.DefaultLocale()
	}

	opts := append(slices.Clone(p.opts),
		WithDefaultLocale(c.DefaultLocale()),
		WithLocale(locale),
		WithMessages(messages),
		WithState(p.state),
	)
	return New(opts...)
}

func validLocale(locale string) bool {
	if locale == "" {
		return false
	}
	_, err := language.Parse(locale)
	return err == nil
}

// Negotiate returns the catalog locale that best fits an Accept-Language
// header, or the default locale.
func (p *Provider) Negotiate(acceptLanguage string) string {
	return ParseAcceptLanguage(acceptLanguage, p.Locales())
}

// Match returns the catalog locale that fits locale, exactly or by base
// language, and whether there was one.
func (p *Provider) Match(locale string) (string, bool) {
	return MatchLocale(locale, p.Locales())
}

// Locales returns the catalog locales with the default locale first.
func (p *Provider) Locales() []string {
	c := p.catalog()
	def := c.DefaultLocale()
	locales := []string{def}
	for _, l := range c.Locales() {
		if l != def {
			locales = append(locales, l)
		}
	}
	return locales
}

// DefaultLocale returns the default locale of the catalog.
func (p *Provider) DefaultLocale() string {
	return p.catalog().DefaultLocale()
}

// State returns the State shared by every Intl of the provider.
func (p *Provider) State() *State {
	return p.state
}

// Close releases the shared State.
func (p *Provider) Close() error {
	return p.state.Close()
}
