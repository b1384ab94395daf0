package cache

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
)

// Memo computes values on demand and keeps them in a Cache. Concurrent
// misses for one key share a single call of the constructor. Each Memo
// has its own singleflight group, so two memos may use the same keys.
type Memo[V any] struct {
	cache  Cache[V]
	ttl    time.Duration
	group  singleflight.Group
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats reports memo lookups since creation.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// NewMemo wraps c. Values are stored with ttl, see Cache.Set.
func NewMemo[V any](c Cache[V], ttl time.Duration) *Memo[V] {
	return &Memo[V]{cache: c, ttl: ttl}
}

// Get returns the cached value for key or builds it with fn. Errors from fn
// are returned as is and nothing is stored.
func (m *Memo[V]) Get(ctx context.Context, key string, fn func(ctx context.Context) (V, error)) (V, error) {
	if v, err := m.cache.Get(ctx, key); err == nil {
		m.hits.Add(1)
		return v, nil
	}
	m.misses.Add(1)

	v, err, _ := m.group.Do(key, func() (any, error) {
		val, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		// A failed store only costs a rebuild on the next call.
		_ = m.cache.Set(ctx, key, val, m.ttl)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Forget drops key from the underlying cache.
func (m *Memo[V]) Forget(ctx context.Context, key string) error {
	return m.cache.Delete(ctx, key)
}

// Reset drops every cached value.
func (m *Memo[V]) Reset(ctx context.Context) error {
	return m.cache.Clear(ctx)
}

// Stats returns hit and miss counters.
func (m *Memo[V]) Stats() Stats {
	return Stats{Hits: m.hits.Load(), Misses: m.misses.Load()}
}

// Close closes the underlying cache.
func (m *Memo[V]) Close() error {
	return m.cache.Close()
}
