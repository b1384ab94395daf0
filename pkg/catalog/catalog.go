package catalog

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Messages maps locale to message id to ICU pattern.
type Messages map[string]map[string]string

// Catalog is an immutable set of messages for several locales.
type Catalog struct {
	defaultLocale string
	messages      Messages
	locales       []string
}

// New builds a catalog. Locale keys are canonicalized ("en_us" becomes
// "en-US"); keys that are not valid BCP 47 tags are kept as given. The
// input is copied.
func New(defaultLocale string, messages Messages) *Catalog {
	c := &Catalog{
		defaultLocale: Canonical(defaultLocale),
		messages:      make(Messages, len(messages)),
	}
	for locale, msgs := range messages {
		key := Canonical(locale)
		dst := c.messages[key]
		if dst == nil {
			dst = make(map[string]string, len(msgs))
			c.messages[key] = dst
		}
		maps.Copy(dst, msgs)
	}
	c.locales = slices.Sorted(maps.Keys(c.messages))
	return c
}

// Canonical returns the canonical form of a BCP 47 tag, or the input when
// it does not parse.
func Canonical(locale string) string {
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return locale
	}
	return tag.String()
}

// DefaultLocale returns the locale of default messages.
func (c *Catalog) DefaultLocale() string {
	return c.defaultLocale
}

// Locales returns the locales with at least one message, sorted.
func (c *Catalog) Locales() []string {
	return slices.Clone(c.locales)
}

// Has reports whether the catalog holds messages for exactly locale.
func (c *Catalog) Has(locale string) bool {
	_, ok := c.messages[Canonical(locale)]
	return ok
}

// Len returns the number of messages for locale without fallback.
func (c *Catalog) Len(locale string) int {
	return len(c.messages[Canonical(locale)])
}

// Messages returns the messages for locale. Messages of the base language
// fill ids missing from a regional locale, so "de-AT" sees everything in
// "de" unless it overrides it. A locale unknown to the catalog gets the
// default locale's messages. The result is a fresh map.
func (c *Catalog) Messages(locale string) map[string]string {
	_, msgs := c.Resolve(locale)
	return msgs
}

// Resolve is Messages that also reports which locale the messages belong
// to: locale itself, its base language or the default locale.
func (c *Catalog) Resolve(locale string) (string, map[string]string) {
	locale = Canonical(locale)
	chain := c.chain(locale)
	if len(chain) == 0 {
		if _, ok := c.messages[c.defaultLocale]; !ok {
			return locale, map[string]string{}
		}
		locale = c.defaultLocale
		chain = c.chain(locale)
	}

	out := make(map[string]string)
	for i := len(chain) - 1; i >= 0; i-- {
		maps.Copy(out, c.messages[chain[i]])
	}
	return chain[0], out
}

// Message returns a single message using the same fallback as Messages.
func (c *Catalog) Message(locale, id string) (string, bool) {
	locale = Canonical(locale)
	chain := c.chain(locale)
	if len(chain) == 0 {
		chain = c.chain(c.defaultLocale)
	}
	for _, l := range chain {
		if msg, ok := c.messages[l][id]; ok {
			return msg, true
		}
	}
	return "", false
}

// chain lists the catalog locales that apply to locale, most specific
// first.
func (c *Catalog) chain(locale string) []string {
	var chain []string
	if _, ok := c.messages[locale]; ok {
		chain = append(chain, locale)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		return chain
	}
	base, conf := tag.Base()
	if conf == language.No {
		return chain
	}
	if b := base.String(); b != locale {
		if _, ok := c.messages[b]; ok {
			chain = append(chain, b)
		}
	}
	return chain
}

// Merge combines message sets; later sets override earlier ones per id.
func Merge(sets ...Messages) Messages {
	out := make(Messages)
	for _, set := range sets {
		for locale, msgs := range set {
			key := Canonical(locale)
			dst := out[key]
			if dst == nil {
				dst = make(map[string]string, len(msgs))
				out[key] = dst
			}
			maps.Copy(dst, msgs)
		}
	}
	return out
}
