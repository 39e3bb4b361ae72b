package repository

import (
	"context"
	"errors"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	redisapp "studio_cms/internal/storage/redis"
)

// RedisTokenRepo хранит отозванные токены в Redis до истечения их срока
type RedisTokenRepo struct {
	Client *redisapp.Client
}

func NewRedisTokenRepo(client *redisapp.Client) *RedisTokenRepo {
	return &RedisTokenRepo{Client: client}
}

func (r *RedisTokenRepo) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.Client.Set(ctx, revokedTokenKey(tokenID), "1", ttl).Err()
}

func (r *RedisTokenRepo) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	val, err := r.Client.Get(ctx, revokedTokenKey(tokenID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return val == "1", nil
}

// MemoryTokenRepo хранит отозванные токены в памяти процесса, когда Redis не настроен
type MemoryTokenRepo struct {
	cache *cache.Cache
}

func NewMemoryTokenRepo(cleanupInterval time.Duration) *MemoryTokenRepo {
	return &MemoryTokenRepo{cache: cache.New(cache.NoExpiration, cleanupInterval)}
}

func (r *MemoryTokenRepo) RevokeToken(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	r.cache.Set(revokedTokenKey(tokenID), struct{}{}, ttl)
	return nil
}

func (r *MemoryTokenRepo) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	_, found := r.cache.Get(revokedTokenKey(tokenID))
	return found, nil
}

func revokedTokenKey(tokenID string) string {
	return "revoked:" + tokenID
}
