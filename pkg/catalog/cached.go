package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/intl/pkg/cache"
)

// CachedSource keeps the result of a slow source, such as S3, in a cache
// shared between processes. Only a miss reaches the wrapped source.
type CachedSource struct {
	src   Source
	cache cache.Cache[Messages]
	key   string
	ttl   time.Duration
}

// NewCachedSource wraps src. Entries live for ttl, see cache.Cache.Set.
func NewCachedSource(src Source, c cache.Cache[Messages], key string, ttl time.Duration) *CachedSource {
	return &CachedSource{src: src, cache: c, key: key, ttl: ttl}
}

func (s *CachedSource) Load(ctx context.Context) (Messages, error) {
	set, err := s.cache.Get(ctx, s.key)
	if err == nil {
		return set, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		// A broken cache must not take the catalog down with it.
		return s.src.Load(ctx)
	}

	set, err = s.src.Load(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, s.key, set, s.ttl)
	return set, nil
}

// Invalidate drops the cached copy so the next Load reads the source.
func (s *CachedSource) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, s.key)
}
