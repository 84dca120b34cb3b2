package database

import (
	"context"
	"fmt"
	"time"

	"assessment-workers/internal/common/config"

	"github.com/redis/go-redis/v9"
)

const (
	defaultRedisPool    = 10
	defaultRedisMinIdle = 2
)

// RedisClient holds the cache connection shared by the scoring workers.
type RedisClient struct {
	Client *redis.Client
}

func NewRedis(cfg config.RedisConfig) *RedisClient {
	pool := cfg.PoolSize
	if pool <= 0 {
		pool = defaultRedisPool
	}
	minIdle := cfg.MinIdleConns
	if minIdle <= 0 || minIdle > pool {
		minIdle = min(defaultRedisMinIdle, pool)
	}

	opts := &redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
		PoolSize:     pool,
		MinIdleConns: minIdle,
	}
	return &RedisClient{Client: redis.NewClient(opts)}
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping %s: %w", c.Client.Options().Addr, err)
	}
	return nil
}

func (c *RedisClient) Close() error {
	if c.Client == nil {
		return nil
	}
	return c.Client.Close()
}
