// Package cache keeps converted names in Redis so repeated requests are
// answered without reconverting.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// NameCache stores names by conversion mode and number.
type NameCache interface {
	// Get reports found=false, with a nil error, on a cache miss.
	Get(ctx context.Context, mode string, number int) (name string, found bool, err error)
	Set(ctx context.Context, mode string, number int, name string) error
}

const DefaultExpiration = time.Hour

// NameKey returns the Redis key for a cached name.
func NameKey(mode string, number int) string {
	return fmt.Sprintf("NUMBERNAME_%s_%d", mode, number)
}

// RedisNameCache is a Redis implementation of NameCache.
type RedisNameCache struct {
	Client     *redis.Client
	Expiration time.Duration
}

func NewRedisNameCache(client *redis.Client, expiration time.Duration) *RedisNameCache {
	if expiration == 0 {
		expiration = DefaultExpiration
	}
	return &RedisNameCache{
		Client:     client,
		Expiration: expiration,
	}
}

func (r *RedisNameCache) Get(ctx context.Context, mode string, number int) (string, bool, error) {
	name, err := r.Client.Get(ctx, NameKey(mode, number)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return name, true, nil
}

func (r *RedisNameCache) Set(ctx context.Context, mode string, number int, name string) error {
	return r.Client.Set(ctx, NameKey(mode, number), name, r.Expiration).Err()
}

// NoCache is used when no Redis address is configured. It never hits.
type NoCache struct{}

func (NoCache) Get(context.Context, string, int) (string, bool, error) {
	return "", false, nil
}

func (NoCache) Set(context.Context, string, int, string) error {
	return nil
}
