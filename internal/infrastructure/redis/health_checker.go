package redis

import (
	"context"
	"fmt"
)

// RedisHealthChecker はRedisへの疎通と書き込み可否を確認する
type RedisHealthChecker struct {
	client *RedisClient
}

func NewRedisHealthChecker(client *RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{
		client: client,
	}
}

func (c *RedisHealthChecker) Name() string {
	return "redis"
}

// Check は許可リストのキャッシュを書き込めることまで確認する
func (c *RedisHealthChecker) Check(ctx context.Context) error {
	if err := c.client.Ping(ctx); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	if err := c.client.Set(ctx, PreflightKey, "ok", preflightTTL); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
