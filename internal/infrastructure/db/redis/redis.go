package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lepdv/todolist-rest/internal/pkg/config"
)

const pingTimeout = 5 * time.Second

// Connect initialises the Redis client backing the login throttle and
// validates connectivity with a ping. Callers skip this entirely when
// REDIS_ADDR is unset; the throttle then degrades to its no-op variant.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
