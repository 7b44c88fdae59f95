package cache

import (
	"context"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// RedisActiveShiftCache backs ActiveShiftCache with a Redis instance.
type RedisActiveShiftCache struct {
	client *redis.Client
}

func NewRedisActiveShiftCache(addr string, password string, db int) *RedisActiveShiftCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisActiveShiftCache{client: client}
}

func (c *RedisActiveShiftCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisActiveShiftCache) Close() error {
	return c.client.Close()
}

func key(branchID, userID string) string {
	return fmt.Sprintf("active_shift:%s:%s", branchID, userID)
}

func (c *RedisActiveShiftCache) Get(ctx context.Context, branchID, userID string) (string, bool, error) {
	val, err := c.client.Get(ctx, key(branchID, userID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisActiveShiftCache) Set(ctx context.Context, branchID, userID, shiftID string, ttl time.Duration) error {
	if shiftID == "" {
		return nil
	}
	return c.client.Set(ctx, key(branchID, userID), shiftID, ttl).Err()
}

func (c *RedisActiveShiftCache) Invalidate(ctx context.Context, branchID, userID string) error {
	return c.client.Del(ctx, key(branchID, userID)).Err()
}
