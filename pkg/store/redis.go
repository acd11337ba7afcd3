package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lisbeauty/storefront/pkg/logger"
)

// Redis is a durable store backed by a Redis instance. Read errors degrade
// to "absent" like every other backend.
type Redis struct {
	client  *redis.Client
	prefix  string
	timeout time.Duration
}

// NewRedis creates a Redis-backed store. All keys are namespaced under
// prefix to keep the storefront key space separable from other tenants.
func NewRedis(client *redis.Client, prefix string) *Redis {
	return &Redis{
		client:  client,
		prefix:  prefix,
		timeout: 5 * time.Second,
	}
}

func (r *Redis) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

func (r *Redis) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		logger.Logger.Warn().Err(err).Str("key", key).Msg("redis read failed, treating as absent")
		return nil, false
	}
	return raw, true
}

func (r *Redis) Set(key string, value []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

func (r *Redis) Remove(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("key", key).Msg("redis delete failed")
	}
}
