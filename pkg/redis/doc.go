// Package redis opens go-redis clients for Redis-backed catalogs and the
// shared catalog cache.
//
//	client, err := redis.Open(ctx, os.Getenv("INTL_REDIS_URL"), redis.WithPoolSize(20))
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Open pings the server and retries with a linearly growing pause, so a
// process started next to a booting Redis waits for it instead of failing.
// Errors wrap ErrEmptyConnectionURL, ErrFailedToParseURL or
// ErrConnectionFailed and can be matched with errors.Is.
package redis
