package adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mvpduo/internal/domain"

	"github.com/redis/go-redis/v9"
)

// scanBatch is the COUNT hint for SCAN during pattern deletes.
const scanBatch = 100

// RedisCacheAdapter is the Redis-backed domain.Cache.
type RedisCacheAdapter struct {
	client *redis.Client
}

func NewRedisCacheAdapter(client *redis.Client) domain.Cache {
	return &RedisCacheAdapter{client: client}
}

func (r *RedisCacheAdapter) Get(ctx context.Context, key string) (string, error) {
	return readString(r.client.Get(ctx, key), "get", key)
}

// GetAndTouch uses GETEX so the read and the new expiration are one round trip.
func (r *RedisCacheAdapter) GetAndTouch(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return readString(r.client.GetEx(ctx, key, ttl), "getex", key)
}

func (r *RedisCacheAdapter) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *RedisCacheAdapter) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// DeleteMatching walks the keyspace with SCAN and deletes each page of matches.
func (r *RedisCacheAdapter) DeleteMatching(ctx context.Context, pattern string) (int, error) {
	var (
		cursor  uint64
		deleted int
	)
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, scanBatch).Result()
		if err != nil {
			return deleted, fmt.Errorf("redis scan %s: %w", pattern, err)
		}
		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("redis del %s: %w", pattern, err)
			}
			deleted += int(n)
		}
		if next == 0 {
			return deleted, nil
		}
		cursor = next
	}
}

func (r *RedisCacheAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func readString(cmd *redis.StringCmd, op, key string) (string, error) {
	val, err := cmd.Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrCacheMiss
	}
	if err != nil {
		return "", fmt.Errorf("redis %s %s: %w", op, key, err)
	}
	return val, nil
}
