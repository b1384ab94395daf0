package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// Source reads messages from a backend.
type Source interface {
	Load(ctx context.Context) (Messages, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) (Messages, error)

func (f SourceFunc) Load(ctx context.Context) (Messages, error) {
	return f(ctx)
}

// Static is an in-memory Source.
type Static Messages

func (s Static) Load(context.Context) (Messages, error) {
	return Merge(Messages(s)), nil
}

// Load reads all sources concurrently and builds a catalog. Sources are
// merged in the given order. The first failing source cancels the rest.
func Load(ctx context.Context, defaultLocale string, sources ...Source) (*Catalog, error) {
	sets := make([]Messages, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			msgs, err := src.Load(gctx)
			if err != nil {
				return err
			}
			sets[i] = msgs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(defaultLocale, Merge(sets...)), nil
}

// splitPath maps a file path relative to a catalog root to its locale and
// namespace: "en.json" is locale "en" without namespace, "en/common.json"
// is locale "en" with namespace "common".
func splitPath(p string) (locale, namespace string, err error) {
	p = strings.TrimPrefix(path.Clean(p), "/")
	stem := strings.TrimSuffix(p, path.Ext(p))

	switch parts := strings.Split(stem, "/"); len(parts) {
	case 1:
		locale = parts[0]
	case 2:
		locale, namespace = parts[0], parts[1]
	default:
		return "", "", fmt.Errorf("%w: %q must be {locale}.ext or {locale}/{namespace}.ext", ErrInvalidFile, p)
	}

	tag, perr := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if perr != nil {
		return "", "", fmt.Errorf("%w: %q in %q", ErrInvalidLocale, locale, p)
	}
	return tag.String(), namespace, nil
}

// addFile decodes one catalog file into set.
func addFile(set Messages, name string, data []byte) error {
	locale, namespace, err := splitPath(name)
	if err != nil {
		return err
	}
	msgs, err := Decode(name, data)
	if err != nil {
		return err
	}

	dst := set[locale]
	if dst == nil {
		dst = make(map[string]string, len(msgs))
		set[locale] = dst
	}
	for id, msg := range prefixed(namespace, msgs) {
		dst[id] = msg
	}
	return nil
}

// Writer stores messages in a backend, replacing the locales it is given.
type Writer interface {
	Save(ctx context.Context, set Messages) error
}
