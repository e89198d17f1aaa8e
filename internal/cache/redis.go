package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"schoolhub/pkg/logging"
)

const scanBatch = 100

// RedisCache stores HTTP responses under a namespace shared by every API replica.
type RedisCache struct {
	rdb       *redis.Client
	namespace string
}

func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("cannot reach redis: %w", err)
	}
	return rdb, nil
}

func NewRedisCache(rdb *redis.Client, namespace string) *RedisCache {
	return &RedisCache{rdb: rdb, namespace: namespace}
}

func (r *RedisCache) key(key string) string {
	return r.namespace + key
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.rdb.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			warn(ctx, "cache read failed", key, err)
		}
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.rdb.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		warn(ctx, "cache write failed", key, err)
	}
}

func (r *RedisCache) Delete(ctx context.Context, key string) {
	if err := r.rdb.Del(ctx, r.key(key)).Err(); err != nil {
		warn(ctx, "cache delete failed", key, err)
	}
}

// DeletePrefix drops every key starting with prefix.
func (r *RedisCache) DeletePrefix(ctx context.Context, prefix string) {
	iter := r.rdb.Scan(ctx, 0, r.key(prefix)+"*", scanBatch).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		warn(ctx, "cache scan failed", prefix, err)
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		warn(ctx, "cache invalidation failed", prefix, err)
	}
}

func warn(ctx context.Context, msg, key string, err error) {
	if logger, ok := logging.GetFromContext(ctx); ok {
		logger.Warn(ctx, msg, zap.String("key", key), zap.Error(err))
	}
}
