// cache — опциональный кэш резолва сессий в Redis.
//
// Хранит соответствие access-токен -> username с коротким TTL, чтобы не
// гонять два запроса в user-service на каждый просмотр страницы.
// Включается конфигом (session.cache_ttl > 0); по умолчанию выключен,
// потому что вводит окно устаревания: отозванный токен продолжает
// резолвиться до истечения TTL.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionCache — минимальный контракт кэша сессий.
type SessionCache interface {
	// Get возвращает username и признак наличия записи в кэше.
	Get(ctx context.Context, token string) (string, bool, error)
	// Set сохраняет соответствие токен -> username с TTL.
	Set(ctx context.Context, token, username string, ttl time.Duration) error
	// Delete удаляет запись (logout).
	Delete(ctx context.Context, token string) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "dispatcher:session:".
func NewRedisCache(redisURL, prefix string) (SessionCache, error) {
	if prefix == "" {
		prefix = "dispatcher:session:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

// key — ключ по хэшу токена: сырой токен в ключах Redis не храним.
func (c *redisCache) key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return c.prefix + hex.EncodeToString(sum[:])
}

func (c *redisCache) Get(ctx context.Context, token string) (string, bool, error) {
	username, err := c.rdb.Get(ctx, c.key(token)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return username, true, nil
}

func (c *redisCache) Set(ctx context.Context, token, username string, ttl time.Duration) error {
	return c.rdb.Set(ctx, c.key(token), username, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, token string) error {
	return c.rdb.Del(ctx, c.key(token)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
