package messageformat

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/intl/pkg/datetime"
	"github.com/dmitrymomot/intl/pkg/numfmt"
	"github.com/dmitrymomot/intl/pkg/plural"
)

// MessageFormat is a compiled message bound to a locale.
type MessageFormat struct {
	pattern string
	locale  string
	parts   []part
}

// Option configures compilation.
type Option func(*compiler)

// WithTimeZone renders date and time arguments in the named IANA zone
// unless the named style sets its own.
func WithTimeZone(name string) Option {
	return func(c *compiler) {
		c.timeZone = name
	}
}

// New parses pattern and compiles it for locale. Custom formats are merged
// over DefaultFormats.
func New(pattern, locale string, formats Formats, opts ...Option) (*MessageFormat, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocale, locale)
	}

	msg, err := Parse(pattern)
	if err != nil {
		return nil, err
	}

	c := &compiler{
		locale:  tag.String(),
		formats: DefaultFormats().Merge(formats),
	}
	for _, opt := range opts {
		opt(c)
	}

	parts, err := c.compile(msg)
	if err != nil {
		return nil, err
	}

	return &MessageFormat{
		pattern: pattern,
		locale:  c.locale,
		parts:   parts,
	}, nil
}

// Format renders the message with values. Every argument referenced on
// the taken path must be present in values.
func (m *MessageFormat) Format(values map[string]any) (string, error) {
	var b strings.Builder
	if err := formatParts(&b, m.parts, values, nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Pattern returns the source pattern.
func (m *MessageFormat) Pattern() string {
	return m.pattern
}

// Locale returns the canonical locale the message was compiled for.
func (m *MessageFormat) Locale() string {
	return m.locale
}

type compiler struct {
	locale   string
	formats  Formats
	timeZone string
	number   *numfmt.Format
}

func (c *compiler) compile(msg Message) ([]part, error) {
	parts := make([]part, 0, len(msg))
	for _, n := range msg {
		p, err := c.compileNode(n)
		if err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

func (c *compiler) compileNode(n Node) (part, error) {
	switch n := n.(type) {
	case Text:
		return textPart(n.Value), nil
	case Argument:
		return argumentPart(n.Name), nil
	case Pound:
		f, err := c.defaultNumber()
		if err != nil {
			return nil, err
		}
		return poundPart{number: f}, nil
	case Formatted:
		return c.compileFormatted(n)
	case Plural:
		return c.compilePlural(n)
	case Select:
		opts, err := c.compileOptions(n.Options)
		if err != nil {
			return nil, err
		}
		return selectPart{name: n.Name, options: opts}, nil
	}
	return nil, fmt.Errorf("%w: unexpected node %T", ErrSyntax, n)
}

func (c *compiler) compileFormatted(n Formatted) (part, error) {
	if n.Type == TypeNumber {
		opts := c.formats.Number[n.Style]
		f, err := numfmt.New(c.locale, opts)
		if err != nil {
			return nil, fmt.Errorf("messageformat: argument %q: %w", n.Name, err)
		}
		return numberPart{name: n.Name, f: f}, nil
	}

	var opts datetime.Options
	if n.Type == TypeDate {
		opts = c.formats.Date[n.Style]
	} else {
		style := n.Style
		if style == "" {
			style = "short"
		}
		opts = c.formats.Time[style]
		if !opts.HasTime() {
			opts = opts.Inherit(datetime.Options{Hour: datetime.Numeric, Minute: datetime.Numeric})
		}
	}
	if opts.TimeZone == "" {
		opts.TimeZone = c.timeZone
	}

	f, err := datetime.New(c.locale, opts)
	if err != nil {
		return nil, fmt.Errorf("messageformat: argument %q: %w", n.Name, err)
	}
	return datePart{name: n.Name, f: f}, nil
}

func (c *compiler) compilePlural(n Plural) (part, error) {
	style := plural.StyleCardinal
	if n.Ordinal {
		style = plural.StyleOrdinal
	}
	rules, err := plural.New(c.locale, plural.Options{Style: style})
	if err != nil {
		return nil, fmt.Errorf("messageformat: argument %q: %w", n.Name, err)
	}

	opts, err := c.compileOptions(n.Options)
	if err != nil {
		return nil, err
	}

	return pluralPart{
		name:    n.Name,
		offset:  n.Offset,
		rules:   rules,
		options: opts,
	}, nil
}

func (c *compiler) compileOptions(src map[string]Message) (map[string][]part, error) {
	out := make(map[string][]part, len(src))
	for key, msg := range src {
		parts, err := c.compile(msg)
		if err != nil {
			return nil, err
		}
		out[key] = parts
	}
	return out, nil
}

func (c *compiler) defaultNumber() (*numfmt.Format, error) {
	if c.number == nil {
		f, err := numfmt.New(c.locale, numfmt.Options{})
		if err != nil {
			return nil, err
		}
		c.number = f
	}
	return c.number, nil
}

// pound carries the value printed by "#" in the innermost plural branch.
type pound struct {
	value float64
}

type part interface {
	format(b *strings.Builder, values map[string]any, p *pound) error
}

type textPart string

type argumentPart string

type poundPart struct {
	number *numfmt.Format
}

type numberPart struct {
	name string
	f    *numfmt.Format
}

type datePart struct {
	name string
	f    *datetime.Format
}

type pluralPart struct {
	name    string
	offset  float64
	rules   *plural.Rules
	options map[string][]part
}

type selectPart struct {
	name    string
	options map[string][]part
}

func formatParts(b *strings.Builder, parts []part, values map[string]any, p *pound) error {
	for _, pt := range parts {
		if err := pt.format(b, values, p); err != nil {
			return err
		}
	}
	return nil
}

func lookup(values map[string]any, name string) (any, error) {
	v, ok := values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingValue, name)
	}
	return v, nil
}

func (t textPart) format(b *strings.Builder, _ map[string]any, _ *pound) error {
	b.WriteString(string(t))
	return nil
}

func (a argumentPart) format(b *strings.Builder, values map[string]any, _ *pound) error {
	v, err := lookup(values, string(a))
	if err != nil {
		return err
	}
	b.WriteString(ToString(v))
	return nil
}

func (pp poundPart) format(b *strings.Builder, _ map[string]any, p *pound) error {
	if p == nil {
		b.WriteByte('#')
		return nil
	}
	b.WriteString(pp.number.Format(p.value))
	return nil
}

func (n numberPart) format(b *strings.Builder, values map[string]any, _ *pound) error {
	v, err := lookup(values, n.name)
	if err != nil {
		return err
	}
	num, err := ToNumber(v)
	if err != nil {
		return fmt.Errorf("argument %q: %w", n.name, err)
	}
	b.WriteString(n.f.Format(num))
	return nil
}

func (d datePart) format(b *strings.Builder, values map[string]any, _ *pound) error {
	v, err := lookup(values, d.name)
	if err != nil {
		return err
	}
	t, err := ToTime(v)
	if err != nil {
		return fmt.Errorf("argument %q: %w", d.name, err)
	}
	b.WriteString(d.f.Format(t))
	return nil
}

func (pl pluralPart) format(b *strings.Builder, values map[string]any, _ *pound) error {
	v, err := lookup(values, pl.name)
	if err != nil {
		return err
	}
	num, err := ToNumber(v)
	if err != nil {
		return fmt.Errorf("argument %q: %w", pl.name, err)
	}

	branch, ok := pl.options["="+strconv.FormatFloat(num, 'f', -1, 64)]
	if !ok {
		branch, ok = pl.options[pl.rules.Select(num-pl.offset)]
	}
	if !ok {
		branch = pl.options[plural.Other]
	}
	return formatParts(b, branch, values, &pound{value: num - pl.offset})
}

func (s selectPart) format(b *strings.Builder, values map[string]any, p *pound) error {
	v, err := lookup(values, s.name)
	if err != nil {
		return err
	}
	branch, ok := s.options[ToString(v)]
	if !ok {
		branch = s.options[plural.Other]
	}
	return formatParts(b, branch, values, p)
}
