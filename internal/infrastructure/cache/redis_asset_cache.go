package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/packhouse/backend/internal/infrastructure/assets"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisAssetCache stores scaled image payloads in Redis so repeated
// document runs over the same catalog skip the remote fetch and resize.
// Suitable when several instances share one print queue.
type RedisAssetCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	logger    *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

const (
	assetKeyPrefix  = "asset:"
	defaultAssetTTL = 24 * time.Hour
)

// NewRedisAssetCache creates a Redis-backed asset cache and verifies the
// connection before returning.
func NewRedisAssetCache(cfg RedisConfig, logger *zap.Logger) (*RedisAssetCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisAssetCache{
		client:    client,
		keyPrefix: assetKeyPrefix,
		ttl:       defaultAssetTTL,
		logger:    logger,
	}, nil
}

// NewRedisAssetCacheWithClient wraps an existing client, mainly for tests.
func NewRedisAssetCacheWithClient(client *redis.Client, logger *zap.Logger) *RedisAssetCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisAssetCache{
		client:    client,
		keyPrefix: assetKeyPrefix,
		ttl:       defaultAssetTTL,
		logger:    logger,
	}
}

// Get returns a cached payload. Cache errors degrade to a miss.
func (c *RedisAssetCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("asset cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return data, true
}

// Set stores a payload with the cache TTL. Write errors are logged and
// dropped; a cold cache only costs a refetch.
func (c *RedisAssetCache) Set(ctx context.Context, key string, data []byte) {
	if err := c.client.Set(ctx, c.keyPrefix+key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("asset cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Close closes the Redis client.
func (c *RedisAssetCache) Close() error {
	return c.client.Close()
}

var _ assets.Cache = (*RedisAssetCache)(nil)
