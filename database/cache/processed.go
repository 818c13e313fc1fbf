package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// ProcessedKeyPrefix namespaces processed-payout markers in Redis.
const ProcessedKeyPrefix = "payout:processed:"

// RedisProcessedCache remembers payout keys that were already written so a
// redelivered event can be dropped before touching the document store. It is
// advisory only; the ledger's create-only write stays authoritative.
type RedisProcessedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProcessedCache(client *redis.Client, ttl time.Duration) *RedisProcessedCache {
	return &RedisProcessedCache{client: client, ttl: ttl}
}

func (c *RedisProcessedCache) Seen(ctx context.Context, payoutID string) (bool, error) {
	n, err := c.client.Exists(ctx, ProcessedKeyPrefix+payoutID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *RedisProcessedCache) Mark(ctx context.Context, payoutID string) error {
	return c.client.Set(ctx, ProcessedKeyPrefix+payoutID, "1", c.ttl).Err()
}
