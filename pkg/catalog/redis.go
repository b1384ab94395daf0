package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix is the key prefix of catalog hashes.
const DefaultRedisPrefix = "intl:messages"

// RedisSource reads one hash per locale, stored at "{prefix}:{locale}" with
// message ids as fields.
type RedisSource struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisSource creates a source. An empty prefix means DefaultRedisPrefix.
func NewRedisSource(client redis.UniversalClient, prefix string) *RedisSource {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisSource{client: client, prefix: prefix}
}

func (s *RedisSource) Load(ctx context.Context) (Messages, error) {
	set := make(Messages)

	iter := s.client.Scan(ctx, 0, s.prefix+":*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		locale := strings.TrimPrefix(key, s.prefix+":")

		msgs, err := s.client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("%w: reading %q: %v", ErrLoadFailed, key, err)
		}
		if len(msgs) > 0 {
			set[Canonical(locale)] = msgs
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanning %q: %v", ErrLoadFailed, s.prefix, err)
	}
	return set, nil
}

// Save replaces the stored messages of every locale in set.
func (s *RedisSource) Save(ctx context.Context, set Messages) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for locale, msgs := range set {
			key := s.prefix + ":" + Canonical(locale)
			pipe.Del(ctx, key)
			if len(msgs) == 0 {
				continue
			}
			fields := make(map[string]any, len(msgs))
			for id, msg := range msgs {
				fields[id] = msg
			}
			pipe.HSet(ctx, key, fields)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: saving to redis: %v", ErrLoadFailed, err)
	}
	return nil
}
