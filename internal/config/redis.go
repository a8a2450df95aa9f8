package config

// Redis optionally backs the active-session set so several processes can
// share login state and revocations. If no address is configured or the
// server is unreachable at startup, the constructor returns nil and the
// auth service keeps sessions in memory instead.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the configured Redis server. It returns nil
// when RedisAddr is empty or the server does not answer a ping within two
// seconds; callers treat nil as "run without a shared session store".
func NewRedisClient(cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
