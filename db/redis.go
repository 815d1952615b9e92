package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "healthwatch:pref:"

// RedisBackend stores each preference under its own string key.
type RedisBackend struct {
	redis *redis.Client
}

func OpenRedis(ctx context.Context, addr, password string, database int) (*RedisBackend, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       database,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis %s: %w", addr, err)
	}
	return NewRedisBackend(client), nil
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{redis: client}
}

func (r *RedisBackend) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.redis.Get(ctx, redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get preference %s from redis: %w", key, err)
	}
	return v, true, nil
}

func (r *RedisBackend) Set(ctx context.Context, key, value string) error {
	if err := r.redis.Set(ctx, redisKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preference %s in redis: %w", key, err)
	}
	return nil
}

func (r *RedisBackend) Close() error {
	return r.redis.Close()
}
