package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrMiss = errors.New("cache miss")
)

// RedisCache — байтовый кэш поверх Redis с общим префиксом ключей.
type RedisCache struct {
	rdb    *redis.Client
	prefix string
}

// Options — параметры подключения к Redis.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

func NewRedisCache(opts Options) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &RedisCache{rdb: rdb, prefix: opts.Prefix}
}

func (c *RedisCache) key(k string) string {
	return c.prefix + k
}

// Get возвращает значение или ErrMiss, если ключа нет.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "cache.RedisCache.Get"

	val, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMiss
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return val, nil
}

// Set сохраняет значение с TTL. Нулевой TTL означает хранение без срока.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	const op = "cache.RedisCache.Set"

	if err := c.rdb.Set(ctx, c.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	const op = "cache.RedisCache.Del"

	if err := c.rdb.Del(ctx, c.key(key)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Ping проверяет доступность Redis.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.rdb.Close()
}
