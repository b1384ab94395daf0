package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/redis"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name string
		url  string
		err  error
	}{
		{"empty url", "", redis.ErrEmptyConnectionURL},
		{"http scheme", "http://localhost:6379", redis.ErrFailedToParseURL},
		{"no scheme", "localhost:6379", redis.ErrFailedToParseURL},
		{"bad database", "redis://localhost:6379/abc", redis.ErrFailedToParseURL},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			client, err := redis.Open(ctx, tc.url)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, client)
		})
	}

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()
		client, err := redis.Open(ctx, "redis://127.0.0.1:1/0",
			redis.WithRetry(2, time.Millisecond),
			redis.WithTimeouts(50*time.Millisecond, 50*time.Millisecond),
		)
		require.ErrorIs(t, err, redis.ErrConnectionFailed)
		require.Nil(t, client)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := redis.Open(cctx, "redis://127.0.0.1:1/0", redis.WithRetry(3, time.Second))
		require.ErrorIs(t, err, redis.ErrConnectionFailed)
	})
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	err := redis.Healthcheck(nil)(context.Background())
	require.ErrorIs(t, err, redis.ErrHealthcheckFailed)
}
