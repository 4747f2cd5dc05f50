package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRangeTTL = 12 * time.Hour

// RangeCache caches breach range-API response bodies keyed by the five-char
// digest prefix. Only the prefix is ever stored, so the k-anonymity property
// of the lookup is preserved.
type RangeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRangeCache creates a RangeCache wrapping the given Redis client.
// A non-positive ttl falls back to 12 hours.
func NewRangeCache(client *redis.Client, ttl time.Duration) *RangeCache {
	if ttl <= 0 {
		ttl = defaultRangeTTL
	}
	return &RangeCache{client: client, ttl: ttl}
}

// Get returns the cached range body for prefix, reporting whether it was present.
func (c *RangeCache) Get(ctx context.Context, prefix string) (string, bool, error) {
	body, err := c.client.Get(ctx, c.key(prefix)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("range cache get: %w", err)
	}
	return body, true, nil
}

// Set stores the range body for prefix (expires after the configured TTL).
func (c *RangeCache) Set(ctx context.Context, prefix, body string) error {
	return c.client.Set(ctx, c.key(prefix), body, c.ttl).Err()
}

func (c *RangeCache) key(prefix string) string {
	return "breach:range:" + prefix
}
