package sanitizer

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Preset names accepted by Policy.
const (
	PolicyNone   = "none"
	PolicyStrict = "strict"
	PolicyInline = "inline"
	PolicySafe   = "safe"
)

var inlineElements = []string{
	"b", "strong", "i", "em", "u", "s", "small", "sub", "sup", "code", "span", "br",
}

// Presets are built once and shared. bluemonday policies are safe for
// concurrent Sanitize calls but must not be modified after first use, so
// callers must not change the returned policies.
var (
	Strict = sync.OnceValue(bluemonday.StrictPolicy)

	Inline = sync.OnceValue(func() *bluemonday.Policy {
		p := bluemonday.NewPolicy()
		p.AllowStandardURLs()
		p.AllowElements(inlineElements...)
		p.AllowAttrs("href").OnElements("a")
		p.RequireNoFollowOnLinks(true)
		return p
	})

	Safe = sync.OnceValue(func() *bluemonday.Policy {
		p := bluemonday.NewPolicy()
		p.AllowStandardURLs()
		p.AllowElements(inlineElements...)
		p.AllowElements("p", "ul", "ol", "li", "pre", "blockquote")
		p.AllowAttrs("href").OnElements("a")
		p.RequireNoFollowOnLinks(true)
		return p
	})
)

// Policy returns the preset called name. PolicyNone and "" return nil,
// which leaves output unsanitized.
func Policy(name string) (*bluemonday.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", PolicyNone:
		return nil, nil
	case PolicyStrict:
		return Strict(), nil
	case PolicyInline:
		return Inline(), nil
	case PolicySafe:
		return Safe(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
