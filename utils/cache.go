// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"coursely/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (availability, catalog).
	CacheClient *redis.Client
	// SessionCacheClient is the dedicated client for booking and cart sessions.
	SessionCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitSessionCache initializes the Redis client for booking and cart sessions.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := SessionCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Session Cache): %v", err)
	}
}

// GetSessionCacheClient returns the Redis client for session storage.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitRedis initializes every Redis client eagerly at startup.
func InitRedis() {
	InitCache()
	InitSessionCache()
}

// KVStore is the minimal key-value surface session and cart storage persist
// through. Satisfied by RedisKV in production.
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// RedisKV adapts a Redis client to KVStore.
type RedisKV struct {
	Client *redis.Client
}

func (k *RedisKV) Get(ctx context.Context, key string) (string, error) {
	return k.Client.Get(ctx, key).Result()
}

func (k *RedisKV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return k.Client.Set(ctx, key, value, ttl).Err()
}

func (k *RedisKV) Del(ctx context.Context, key string) error {
	return k.Client.Del(ctx, key).Err()
}
