package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by GetJSON when the key is absent or the
// cache is unavailable.
var ErrCacheMiss = errors.New("cache miss")

// GetJSON fetches key and unmarshals its value into dest.
func GetJSON(ctx context.Context, key string, dest any) error {
	if client == nil {
		return ErrCacheMiss
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal(data, dest)
}

// SetJSON marshals value and stores it under key with the given TTL.
// A nil client is a no-op so the app runs without Redis.
func SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, data, ttl).Err()
}

// Delete removes the given keys from the cache.
func Delete(ctx context.Context, keys ...string) error {
	if client == nil || len(keys) == 0 {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}

// CacheAside reads key into dest, and on a miss calls fetch, stores the
// result under key, and copies it into dest.
func CacheAside[T any](ctx context.Context, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	var value T
	if err := GetJSON(ctx, key, &value); err == nil {
		return value, nil
	}
	value, err := fetch()
	if err != nil {
		return value, err
	}
	_ = SetJSON(ctx, key, value, ttl)
	return value, nil
}
