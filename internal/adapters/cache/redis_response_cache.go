package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"geocoord/internal/platform/obs"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "geocoord:redirect:"

// RedisResponseCache is a Redis-backed ResponseCache shared between
// processes. Entries expire through Redis key TTLs.
type RedisResponseCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewRedisResponseCache(client redis.UniversalClient, ttl time.Duration) *RedisResponseCache {
	return &RedisResponseCache{client: client, prefix: defaultKeyPrefix, ttl: ttl}
}

// Fetch the cached response for key.
func (c *RedisResponseCache) Get(ctx context.Context, key string) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "redirect.cache.Get")(&err)

	if c.client == nil {
		return "", false, errors.New("response cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}

	v, err := c.client.Get(ctx, c.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get response cache key=%q: %w", key, err)
	}

	return v, true, nil
}

// Store a key -> response mapping with the cache TTL.
func (c *RedisResponseCache) Put(ctx context.Context, key, value string) (err error) {
	defer obs.Time(ctx, "redirect.cache.Put")(&err)

	if c.client == nil {
		return errors.New("response cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" || c.ttl <= 0 {
		return nil
	}

	if err := c.client.Set(ctx, c.prefix+key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("put response cache key=%q: %w", key, err)
	}
	return nil
}
