package store

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/models"
)

const (
	listingsGenerationKey = "properties:generation"

	listingsAllPage        = "all"
	listingsCategoryPrefix = "category:"
)

func listingsCategoryPage(category models.Category) string {
	return listingsCategoryPrefix + string(category)
}

// listingsKey is the cache key of a listing page within one generation.
func listingsKey(generation int64, page string) string {
	return "properties:" + strconv.FormatInt(generation, 10) + ":" + page
}

// redisPropertyCache is a cache-aside store for listing pages. Failures are
// logged and treated as misses; the database stays the source of truth.
type redisPropertyCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *logger.Logger
}

func NewRedisPropertyCache(client redis.Cmdable, ttl time.Duration, logger *logger.Logger) PropertyCache {
	return &redisPropertyCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Generation reads the current listing generation. A missing counter is
// generation 0; a redis failure reports ok=false and the caller bypasses the
// cache.
func (c *redisPropertyCache) Generation(ctx context.Context) (int64, bool) {
	generation, err := c.client.Get(ctx, listingsGenerationKey).Int64()
	switch {
	case errors.Is(err, redis.Nil):
		return 0, true
	case err != nil:
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*redisPropertyCache.Generation").Msg("cache read failed")
		return 0, false
	}

	return generation, true
}

func (c *redisPropertyCache) GetList(ctx context.Context, key string) ([]models.Property, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "*redisPropertyCache.GetList").Str("key", key).Msg("cache read failed")
		}
		return nil, false
	}

	var properties []models.Property
	if err = json.Unmarshal(value, &properties); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*redisPropertyCache.GetList").Str("key", key).Msg("cache entry is corrupted")
		return nil, false
	}

	return properties, true
}

func (c *redisPropertyCache) SetList(ctx context.Context, key string, properties []models.Property) {
	value, err := json.Marshal(properties)
	if err != nil {
		return
	}

	if err = c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*redisPropertyCache.SetList").Str("key", key).Msg("cache write failed")
	}
}

// Invalidate starts a new generation. Pages of earlier generations are
// never read again and expire with their TTL.
func (c *redisPropertyCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, listingsGenerationKey).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*redisPropertyCache.Invalidate").Msg("cache invalidation failed")
	}
}

// nopPropertyCache is used when redis is not configured.
type nopPropertyCache struct{}

func NewNopPropertyCache() PropertyCache {
	return nopPropertyCache{}
}

func (nopPropertyCache) Generation(context.Context) (int64, bool)                  { return 0, false }
func (nopPropertyCache) GetList(context.Context, string) ([]models.Property, bool) { return nil, false }
func (nopPropertyCache) SetList(context.Context, string, []models.Property)        {}
func (nopPropertyCache) Invalidate(context.Context)                                {}
