package intl

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/dmitrymomot/intl/pkg/cache"
	"github.com/dmitrymomot/intl/pkg/datetime"
	"github.com/dmitrymomot/intl/pkg/messageformat"
	"github.com/dmitrymomot/intl/pkg/numfmt"
	"github.com/dmitrymomot/intl/pkg/plural"
	"github.com/dmitrymomot/intl/pkg/relative"
)

// Defaults for NewState.
const (
	DefaultMaxFormatters = 1000
	DefaultFormatterTTL  = time.Hour
)

// StateOption configures a State.
type StateOption func(*stateConfig)

type stateConfig struct {
	clock         func() time.Time
	maxFormatters int
	ttl           time.Duration
}

// WithClock sets the clock behind State.Now. Default: time.Now.
func WithClock(now func() time.Time) StateOption {
	return func(c *stateConfig) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithMaxFormatters bounds how many formatters of each kind are kept.
// Zero means unbounded. Default: DefaultMaxFormatters.
func WithMaxFormatters(n int) StateOption {
	return func(c *stateConfig) {
		c.maxFormatters = n
	}
}

// WithFormatterTTL sets how long an unused formatter is kept.
// A negative value keeps formatters until evicted. Default: DefaultFormatterTTL.
func WithFormatterTTL(d time.Duration) StateOption {
	return func(c *stateConfig) {
		c.ttl = d
	}
}

// State memoizes formatter construction. It is safe for concurrent use
// and is meant to be shared by every Config of an application.
type State struct {
	now      func() time.Time
	dateTime *cache.Memo[*datetime.Format]
	number   *cache.Memo[*numfmt.Format]
	message  *cache.Memo[*messageformat.MessageFormat]
	relative *cache.Memo[*relative.Format]
	plural   *cache.Memo[*plural.Rules]
}

// NewState creates a State. Call Close to stop its cache janitors.
func NewState(opts ...StateOption) *State {
	cfg := stateConfig{
		clock:         time.Now,
		maxFormatters: DefaultMaxFormatters,
		ttl:           DefaultFormatterTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &State{
		now:      cfg.clock,
		dateTime: newMemo[*datetime.Format](cfg),
		number:   newMemo[*numfmt.Format](cfg),
		message:  newMemo[*messageformat.MessageFormat](cfg),
		relative: newMemo[*relative.Format](cfg),
		plural:   newMemo[*plural.Rules](cfg),
	}
}

func newMemo[V any](cfg stateConfig) *cache.Memo[V] {
	return cache.NewMemo(cache.NewMemory[V](
		cache.WithMaxEntries(cfg.maxFormatters),
		cache.WithDefaultTTL(cfg.ttl),
	), cfg.ttl)
}

// Now returns the current time from the state's clock.
func (s *State) Now() time.Time {
	return s.now()
}

// DateTimeFormat returns a date and time formatter for locale and opts.
func (s *State) DateTimeFormat(locale string, opts datetime.Options) (*datetime.Format, error) {
	key, err := cacheKey(opts, locale)
	if err != nil {
		return nil, err
	}
	return s.dateTime.Get(context.Background(), key, func(context.Context) (*datetime.Format, error) {
		return datetime.New(locale, opts)
	})
}

// NumberFormat returns a number formatter for locale and opts.
func (s *State) NumberFormat(locale string, opts numfmt.Options) (*numfmt.Format, error) {
	key, err := cacheKey(opts, locale)
	if err != nil {
		return nil, err
	}
	return s.number.Get(context.Background(), key, func(context.Context) (*numfmt.Format, error) {
		return numfmt.New(locale, opts)
	})
}

// MessageFormat returns the compiled ICU pattern for locale with the named
// formats merged over the built-in ones.
func (s *State) MessageFormat(pattern, locale string, formats messageformat.Formats) (*messageformat.MessageFormat, error) {
	key, err := cacheKey(formats, pattern, locale)
	if err != nil {
		return nil, err
	}
	return s.message.Get(context.Background(), key, func(context.Context) (*messageformat.MessageFormat, error) {
		return messageformat.New(pattern, locale, formats)
	})
}

// RelativeFormat returns a relative time formatter for locale and opts
// using the default thresholds.
func (s *State) RelativeFormat(locale string, opts relative.Options) (*relative.Format, error) {
	key, err := cacheKey(opts, locale)
	if err != nil {
		return nil, err
	}
	return s.relative.Get(context.Background(), key, func(context.Context) (*relative.Format, error) {
		return relative.New(locale, opts)
	})
}

// PluralFormat returns plural rules for locale and opts.
func (s *State) PluralFormat(locale string, opts plural.Options) (*plural.Rules, error) {
	key, err := cacheKey(opts, locale)
	if err != nil {
		return nil, err
	}
	return s.plural.Get(context.Background(), key, func(context.Context) (*plural.Rules, error) {
		return plural.New(locale, opts)
	})
}

// Stats returns memo counters summed over every formatter kind.
func (s *State) Stats() cache.Stats {
	var total cache.Stats
	for _, st := range []cache.Stats{
		s.dateTime.Stats(), s.number.Stats(), s.message.Stats(), s.relative.Stats(), s.plural.Stats(),
	} {
		total.Hits += st.Hits
		total.Misses += st.Misses
	}
	return total
}

// Close stops the cache janitors. Formatting after Close still works but
// nothing is memoized any more.
func (s *State) Close() error {
	return errors.Join(
		s.dateTime.Close(),
		s.number.Close(),
		s.message.Close(),
		s.relative.Close(),
		s.plural.Close(),
	)
}

// cacheKey joins parts with the JSON form of opts. Options marshal with
// stable field order and sorted map keys.
func cacheKey(opts any, parts ...string) (string, error) {
	data, err := json.Marshal(opts)
	if err != nil {
		return "", err
	}
	return strings.Join(parts, "\x00") + "\x00" + string(data), nil
}
