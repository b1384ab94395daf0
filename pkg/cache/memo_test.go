package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/cache"
)

func TestMemo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("builds once and reuses", func(t *testing.T) {
		t.Parallel()

		memo := cache.NewMemo[string](cache.NewMemory[string](), time.Minute)
		defer memo.Close()

		var calls int
		build := func(context.Context) (string, error) {
			calls++
			return "compiled", nil
		}

		for range 3 {
			v, err := memo.Get(ctx, "message:en:hello", build)
			require.NoError(t, err)
			require.Equal(t, "compiled", v)
		}
		require.Equal(t, 1, calls)
		require.Equal(t, cache.Stats{Hits: 2, Misses: 1}, memo.Stats())
	})

	t.Run("does not store failures", func(t *testing.T) {
		t.Parallel()

		memo := cache.NewMemo[string](cache.NewMemory[string](), time.Minute)
		defer memo.Close()

		boom := errors.New("bad pattern")
		_, err := memo.Get(ctx, "k", func(context.Context) (string, error) { return "", boom })
		require.ErrorIs(t, err, boom)

		v, err := memo.Get(ctx, "k", func(context.Context) (string, error) { return "ok", nil })
		require.NoError(t, err)
		require.Equal(t, "ok", v)
	})

	t.Run("deduplicates concurrent misses", func(t *testing.T) {
		t.Parallel()

		memo := cache.NewMemo[int](cache.NewMemory[int](), time.Minute)
		defer memo.Close()

		var calls atomic.Int64
		var wg sync.WaitGroup
		for range 10 {
			wg.Go(func() {
				v, err := memo.Get(ctx, "plural:ru", func(context.Context) (int, error) {
					calls.Add(1)
					time.Sleep(10 * time.Millisecond)
					return 42, nil
				})
				require.NoError(t, err)
				require.Equal(t, 42, v)
			})
		}
		wg.Wait()

		require.LessOrEqual(t, calls.Load(), int64(2))
	})

	t.Run("memos do not share keys", func(t *testing.T) {
		t.Parallel()

		a := cache.NewMemo[string](cache.NewMemory[string](), time.Minute)
		defer a.Close()
		b := cache.NewMemo[int](cache.NewMemory[int](), time.Minute)
		defer b.Close()

		s, err := a.Get(ctx, "same", func(context.Context) (string, error) { return "text", nil })
		require.NoError(t, err)
		n, err := b.Get(ctx, "same", func(context.Context) (int, error) { return 7, nil })
		require.NoError(t, err)

		require.Equal(t, "text", s)
		require.Equal(t, 7, n)
	})

	t.Run("forget and reset", func(t *testing.T) {
		t.Parallel()

		memo := cache.NewMemo[int](cache.NewMemory[int](), time.Minute)
		defer memo.Close()

		var calls int
		build := func(context.Context) (int, error) {
			calls++
			return calls, nil
		}

		_, _ = memo.Get(ctx, "k", build)
		require.NoError(t, memo.Forget(ctx, "k"))
		v, _ := memo.Get(ctx, "k", build)
		require.Equal(t, 2, v)

		require.NoError(t, memo.Reset(ctx))
		v, _ = memo.Get(ctx, "k", build)
		require.Equal(t, 3, v)
	})
}

func TestJSONMarshaler(t *testing.T) {
	t.Parallel()

	m := cache.JSON[map[string]map[string]string]{}
	data, err := m.Marshal(map[string]map[string]string{"en": {"hello": "Hello"}})
	require.NoError(t, err)

	v, err := m.Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, "Hello", v["en"]["hello"])

	_, err = m.Unmarshal([]byte("{"))
	require.ErrorIs(t, err, cache.ErrUnmarshal)

	_, err = cache.JSON[chan int]{}.Marshal(make(chan int))
	require.ErrorIs(t, err, cache.ErrMarshal)
}
