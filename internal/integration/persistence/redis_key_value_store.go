package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/taxometer/backend/internal/application/adapter"
)

// redisKeyValueStore implements the adapter.KeyValueStore interface on Redis.
type redisKeyValueStore struct {
	client *redis.Client
}

// NewRedisKeyValueStore creates a new Redis-backed key/value store.
func NewRedisKeyValueStore(client *redis.Client) adapter.KeyValueStore {
	return &redisKeyValueStore{
		client: client,
	}
}

// Get returns the value stored under key.
func (s *redisKeyValueStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key without expiration.
func (s *redisKeyValueStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

// Ping checks that Redis is reachable.
func (s *redisKeyValueStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
