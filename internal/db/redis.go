package db

import (
	"context"
	"fmt"
	"time"

	"github.com/crevo-hub/LeaderboardEngineService/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects the snapshot cache. The cache is an
// optimization only, so a missing Redis is reported, not fatal.
func NewRedisClient(cfg config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return rdb, nil
}
