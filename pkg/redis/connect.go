package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Option tunes the client created by Open.
type Option func(*config)

type config struct {
	poolSize      int
	minIdleConns  int
	retryAttempts int
	retryInterval time.Duration
	dialTimeout   time.Duration
	readTimeout   time.Duration
}

func defaultConfig() config {
	return config{
		poolSize:      10,
		minIdleConns:  2,
		retryAttempts: 3,
		retryInterval: 2 * time.Second,
		dialTimeout:   5 * time.Second,
		readTimeout:   3 * time.Second,
	}
}

// WithPoolSize sets the maximum number of connections. Default: 10.
func WithPoolSize(n int) Option {
	return func(c *config) {
		c.poolSize = n
	}
}

// WithMinIdleConns keeps n connections open. Default: 2.
func WithMinIdleConns(n int) Option {
	return func(c *config) {
		c.minIdleConns = n
	}
}

// WithRetry sets how many pings Open attempts and the base pause between
// them; the n-th pause lasts n*interval. Default: 3 attempts, 2s.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(c *config) {
		c.retryAttempts = attempts
		c.retryInterval = interval
	}
}

// WithTimeouts sets the dial and read timeouts. Writes use the read
// timeout. Default: 5s and 3s.
func WithTimeouts(dial, read time.Duration) Option {
	return func(c *config) {
		c.dialTimeout = dial
		c.readTimeout = read
	}
}

// Open parses a redis:// or rediss:// URL and returns a connected client.
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	ro, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}
	ro.PoolSize = cfg.poolSize
	ro.MinIdleConns = cfg.minIdleConns
	ro.DialTimeout = cfg.dialTimeout
	ro.ReadTimeout = cfg.readTimeout
	ro.WriteTimeout = cfg.readTimeout

	var lastErr error
	for i := range max(cfg.retryAttempts, 1) {
		client := redis.NewClient(ro)
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
		_ = client.Close()

		if i == cfg.retryAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrConnectionFailed, ctx.Err())
		case <-time.After(time.Duration(i+1) * cfg.retryInterval):
		}
	}
	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

// Healthcheck returns a ping probe for readiness endpoints.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if client == nil {
			return ErrHealthcheckFailed
		}
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
