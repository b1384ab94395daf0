// Package cache stores compiled formatters and loaded catalogs.
//
// [Memory] is an in-process LRU store with per-entry TTL and a background
// janitor; it backs the formatter memoization in the intl package, where
// compiled date, number, plural and message formatters are kept by a key
// built from the locale and options. [Redis] keeps serializable values,
// such as catalog snapshots, in a shared Redis instance so that several
// processes can reuse one remote load.
//
// [Memo] wraps any [Cache] with a singleflight group, so concurrent misses
// for the same key construct the value once:
//
//	formatters := cache.NewMemory[*numfmt.Format](cache.WithMaxEntries(1024))
//	memo := cache.NewMemo[*numfmt.Format](formatters, 30*time.Minute)
//	defer memo.Close()
//
//	f, err := memo.Get(ctx, "number:en:{}", func(context.Context) (*numfmt.Format, error) {
//		return numfmt.New("en", numfmt.Options{})
//	})
//
// TTL semantics for Set: a positive duration expires the entry after that
// duration, zero uses the cache default and a negative duration never
// expires.
package cache
