// Package cache wraps the Redis keyed store used for short-lived copies
// of data owned elsewhere (today: the Twilio credential set from ChittyID).
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get unmarshals the cached value into dest. The second return is false
// when the key does not exist (or has expired).
func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	str, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(str), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores the value as JSON with a TTL in seconds. Concurrent writers
// racing on the same key is fine: last writer wins.
func (s *RedisStore) Set(ctx context.Context, key string, value interface{}, ttlSeconds int) error {
	str, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key, str, time.Duration(ttlSeconds)*time.Second).Err()
}
