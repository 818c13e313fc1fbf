// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"quickfix/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient backs the processed-payout cache.
var CacheClient *redis.Client

// InitCache connects the Redis client used for the processed-payout cache.
// CacheClient is left nil when Redis does not answer.
func InitCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	CacheClient = client
	return nil
}

// GetCacheClient returns the cache client, connecting on first use.
func GetCacheClient() (*redis.Client, error) {
	if CacheClient == nil {
		if err := InitCache(); err != nil {
			return nil, err
		}
	}
	return CacheClient, nil
}
