package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/noah-isme/child-therapy-api/pkg/errors"
)

// RedisCacheRepository stores JSON payloads in Redis.
type RedisCacheRepository struct {
	client *redis.Client
}

// NewRedisCacheRepository constructs a Redis-backed cache repository.
func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{client: client}
}

// Get unmarshals the cached payload into dest. A missing key is reported as
// ErrCacheMiss.
func (r *RedisCacheRepository) Get(ctx context.Context, key string, dest interface{}) error {
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return appErrors.ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(raw, dest)
}

// Set stores the value as JSON with the given TTL.
func (r *RedisCacheRepository) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, raw, ttl).Err()
}

// DeleteByPattern removes all keys matching the glob pattern using SCAN so
// large keyspaces are not blocked.
func (r *RedisCacheRepository) DeleteByPattern(ctx context.Context, pattern string) error {
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
