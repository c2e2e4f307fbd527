package cache

import (
	"fmt"

	"github.com/packhouse/backend/internal/infrastructure/assets"
	"go.uber.org/zap"
)

// AssetCacheFactory creates asset caches based on configuration
type AssetCacheFactory struct {
	redisConfig           RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// AssetCacheFactoryOption is a functional option for configuring the factory
type AssetCacheFactoryOption func(*AssetCacheFactory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) AssetCacheFactoryOption {
	return func(f *AssetCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether to fall back to an in-memory cache
// when Redis is unavailable. Default is true (allow fallback)
func WithInMemoryFallback(allow bool) AssetCacheFactoryOption {
	return func(f *AssetCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewAssetCacheFactory creates a new factory
func NewAssetCacheFactory(cfg RedisConfig, opts ...AssetCacheFactoryOption) *AssetCacheFactory {
	f := &AssetCacheFactory{
		redisConfig:           cfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CreateRedisCache creates a Redis-backed asset cache
func (f *AssetCacheFactory) CreateRedisCache() (assets.Cache, error) {
	c, err := NewRedisAssetCache(f.redisConfig, f.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis asset cache: %w", err)
	}
	return c, nil
}

// CreateInMemoryCache creates an in-memory asset cache
func (f *AssetCacheFactory) CreateInMemoryCache() assets.Cache {
	return NewInMemoryAssetCache(0)
}

// CreateCache tries Redis first and falls back to in-memory when Redis is
// unreachable and the fallback is allowed. A cold in-memory cache only
// slows the first run; it never changes document output.
func (f *AssetCacheFactory) CreateCache() (assets.Cache, error) {
	c, err := f.CreateRedisCache()
	if err == nil {
		f.logger.Info("using Redis asset cache")
		return c, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("Redis required for asset cache but unavailable: %w", err)
	}

	f.logger.Warn("Redis unavailable, falling back to in-memory asset cache",
		zap.Error(err),
	)
	return f.CreateInMemoryCache(), nil
}
