package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ecommerce-api/common/logger"

	"github.com/redis/go-redis/v9"
)

const (
	productListPrefix = "products:v:"
	cacheVersionKey   = "products:version"

	DefaultTTL = 5 * time.Minute
)

// NewRedisClient initializes and returns a Redis client, or nil if the URL
// is empty or unreachable. Caching is optional: a nil client disables it.
func NewRedisClient(redisURL string) *redis.Client {
	if redisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Error("Invalid Redis URL, caching disabled", err)
		return nil
	}
	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Error("Failed to connect to Redis, caching disabled", err)
		return nil
	}
	logger.Info("Connected to Redis")
	return client
}

// ProductCache caches paginated product listings. Writes to the product
// table bump a version key instead of tracking individual list keys.
type ProductCache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{redis: client, ttl: DefaultTTL}
}

// GetProductList retrieves a cached product list page.
func (c *ProductCache) GetProductList(ctx context.Context, page, limit int, out interface{}) bool {
	if c == nil || c.redis == nil {
		return false
	}
	version, err := c.redis.Get(ctx, cacheVersionKey).Int64()
	if err != nil || version == 0 {
		return false
	}
	cached, err := c.redis.Get(ctx, c.listKey(version, page, limit)).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(cached), out); err != nil {
		logger.Warn("Failed to unmarshal cached product list")
		return false
	}
	return true
}

// SetProductList caches a product list page under the current version.
func (c *ProductCache) SetProductList(ctx context.Context, page, limit int, response interface{}) {
	if c == nil || c.redis == nil {
		return
	}
	version, err := c.redis.Get(ctx, cacheVersionKey).Int64()
	if err != nil {
		version = 1
		if err := c.redis.Set(ctx, cacheVersionKey, version, 0).Err(); err != nil {
			return
		}
	}
	data, err := json.Marshal(response)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, c.listKey(version, page, limit), data, c.ttl).Err()
}

// Invalidate bumps the cache version so every cached list page goes stale.
func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Incr(ctx, cacheVersionKey).Err(); err != nil {
		logger.Warn("Failed to bump product cache version")
	}
}

func (c *ProductCache) listKey(version int64, page, limit int) string {
	return fmt.Sprintf("%s%d:page:%d:limit:%d", productListPrefix, version, page, limit)
}
