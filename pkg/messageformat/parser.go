package messageformat

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/intl/pkg/plural"
)

type parser struct {
	src []rune
	pos int
}

// Parse parses an ICU message pattern.
func Parse(pattern string) (Message, error) {
	p := &parser{src: []rune(pattern)}
	return p.message(false, false)
}

// message reads nodes until the end of input or, when nested, until the
// '}' closing the enclosing option. The closing brace is not consumed.
func (p *parser) message(nested, inPlural bool) (Message, error) {
	var (
		msg  Message
		text strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			msg = append(msg, Text{Value: text.String()})
			text.Reset()
		}
	}

	for !p.eof() {
		switch c := p.peek(); {
		case c == '\'':
			p.quoted(&text, inPlural)
		case c == '{':
			flush()
			n, err := p.argument(inPlural)
			if err != nil {
				return nil, err
			}
			msg = append(msg, n)
		case c == '}':
			if !nested {
				return nil, p.errorf("unmatched '}'")
			}
			flush()
			return msg, nil
		case c == '#' && inPlural:
			flush()
			msg = append(msg, Pound{})
			p.pos++
		default:
			text.WriteRune(c)
			p.pos++
		}
	}

	if nested {
		return nil, p.errorf("unclosed '{'")
	}
	flush()
	return msg, nil
}

func (p *parser) quoted(b *strings.Builder, inPlural bool) {
	p.pos++
	if p.eof() {
		b.WriteRune('\'')
		return
	}
	if c := p.peek(); c == '\'' {
		b.WriteRune('\'')
		p.pos++
		return
	} else if c != '{' && c != '}' && !(inPlural && c == '#') {
		b.WriteRune('\'')
		return
	}

	for !p.eof() {
		c := p.peek()
		p.pos++
		if c == '\'' {
			if !p.eof() && p.peek() == '\'' {
				b.WriteRune('\'')
				p.pos++
				continue
			}
			return
		}
		b.WriteRune(c)
	}
}

func (p *parser) argument(inPlural bool) (Node, error) {
	p.pos++ // '{'
	p.skipSpace()

	name := p.identifier()
	if name == "" {
		return nil, p.errorf("expected argument name")
	}
	p.skipSpace()
	if p.eat('}') {
		return Argument{Name: name}, nil
	}
	if !p.eat(',') {
		return nil, p.errorf("expected ',' or '}' after argument %q", name)
	}
	p.skipSpace()

	switch kind := p.identifier(); kind {
	case TypeNumber, TypeDate, TypeTime:
		n := Formatted{Name: name, Type: kind}
		p.skipSpace()
		if p.eat(',') {
			n.Style = p.style()
			if n.Style == "" {
				return nil, p.errorf("expected %s style for argument %q", kind, name)
			}
		}
		if !p.eat('}') {
			return nil, p.errorf("expected '}' after argument %q", name)
		}
		return n, nil
	case "plural", "selectordinal":
		p.skipSpace()
		if !p.eat(',') {
			return nil, p.errorf("expected ',' after %s", kind)
		}
		return p.plural(name, kind == "selectordinal")
	case "select":
		p.skipSpace()
		if !p.eat(',') {
			return nil, p.errorf("expected ',' after select")
		}
		opts, err := p.options(inPlural)
		if err != nil {
			return nil, err
		}
		for key := range opts {
			if strings.HasPrefix(key, "=") {
				return nil, p.errorf("exact match %q is not allowed in select", key)
			}
		}
		return Select{Name: name, Options: opts}, nil
	case "":
		return nil, p.errorf("expected argument type for %q", name)
	default:
		return nil, p.errorf("unknown argument type %q", kind)
	}
}

func (p *parser) plural(name string, ordinal bool) (Node, error) {
	n := Plural{Name: name, Ordinal: ordinal}

	p.skipSpace()
	if p.hasPrefix("offset:") {
		p.pos += len("offset:")
		p.skipSpace()
		raw := p.token()
		off, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, p.errorf("invalid plural offset %q", raw)
		}
		n.Offset = off
	}

	opts, err := p.options(true)
	if err != nil {
		return nil, err
	}
	for key := range opts {
		if exact, ok := strings.CutPrefix(key, "="); ok {
			if _, err := strconv.ParseFloat(exact, 64); err != nil {
				return nil, p.errorf("invalid exact match %q", key)
			}
			continue
		}
		if !plural.IsCategory(key) {
			return nil, p.errorf("invalid plural category %q", key)
		}
	}
	n.Options = opts
	return n, nil
}

// options reads "key {message}" pairs up to and including the closing '}'
// of the argument.
func (p *parser) options(inPlural bool) (map[string]Message, error) {
	opts := make(map[string]Message)
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unclosed '{'")
		}
		if p.eat('}') {
			break
		}

		key := p.token()
		if key == "" {
			return nil, p.errorf("expected option key")
		}
		if _, dup := opts[key]; dup {
			return nil, p.errorf("duplicate option %q", key)
		}
		p.skipSpace()
		if !p.eat('{') {
			return nil, p.errorf("expected '{' after option %q", key)
		}
		msg, err := p.message(true, inPlural)
		if err != nil {
			return nil, err
		}
		p.pos++ // '}'
		opts[key] = msg
	}

	if _, ok := opts[plural.Other]; !ok {
		return nil, fmt.Errorf("%w at offset %d", ErrMissingOther, p.pos)
	}
	return opts, nil
}

func (p *parser) style() string {
	start := p.pos
	for !p.eof() && p.peek() != '}' && p.peek() != '{' {
		p.pos++
	}
	return strings.TrimSpace(string(p.src[start:p.pos]))
}

func (p *parser) identifier() string {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && !strings.ContainsRune("_-.$", c) {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

// token reads up to the next space or brace.
func (p *parser) token() string {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if unicode.IsSpace(c) || c == '{' || c == '}' {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.peek()) {
		p.pos++
	}
}

func (p *parser) hasPrefix(s string) bool {
	return strings.HasPrefix(string(p.src[p.pos:]), s)
}

func (p *parser) eat(c rune) bool {
	if !p.eof() && p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) peek() rune {
	return p.src[p.pos]
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), p.pos)
}
