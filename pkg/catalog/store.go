package catalog

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Store holds the current catalog and replaces it on Reload.
// It is safe for concurrent use.
type Store struct {
	defaultLocale string
	sources       []Source
	current       atomic.Pointer[Catalog]
	loadedAt      atomic.Int64

	mu       sync.Mutex // serializes reloads
	log      *slog.Logger
	onReload []func(*Catalog)
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets the logger for reload results.
func WithStoreLogger(log *slog.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// WithReloadHook registers fn to run after every successful load.
func WithReloadHook(fn func(*Catalog)) StoreOption {
	return func(s *Store) {
		s.onReload = append(s.onReload, fn)
	}
}

// NewStore loads the sources once and returns a store holding the result.
func NewStore(ctx context.Context, defaultLocale string, sources []Source, opts ...StoreOption) (*Store, error) {
	s := &Store{
		defaultLocale: defaultLocale,
		sources:       sources,
		log:           slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Catalog returns the current snapshot.
func (s *Store) Catalog() *Catalog {
	return s.current.Load()
}

// LoadedAt returns when the current snapshot was loaded.
func (s *Store) LoadedAt() time.Time {
	return time.Unix(0, s.loadedAt.Load())
}

// Reload reads all sources again. On error the previous snapshot stays in
// place and the error is returned.
func (s *Store) Reload(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	c, err := Load(ctx, s.defaultLocale, s.sources...)
	if err != nil {
		s.log.ErrorContext(ctx, "catalog reload failed", slog.Any("error", err))
		return err
	}

	s.current.Store(c)
	s.loadedAt.Store(time.Now().UnixNano())
	s.log.InfoContext(ctx, "catalog loaded",
		slog.Any("locales", c.Locales()),
		slog.Duration("took", time.Since(start)),
	)

	for _, fn := range s.onReload {
		fn(c)
	}
	return nil
}
