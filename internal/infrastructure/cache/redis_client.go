// Package cache opens the Redis connection used for read caching.
package cache

import (
	"context"
	"fmt"

	"fieldservice/internal/config"

	"github.com/redis/go-redis/v9"
)

// NewClient connects to cfg.RedisAddress and pings it once.
func NewClient(ctx context.Context, cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddress, err)
	}
	return client, nil
}
