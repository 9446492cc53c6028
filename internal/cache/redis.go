package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/charity-events/fundraiser-api/internal/config"
)

const (
	keyPrefix  = "listings:"
	defaultTTL = 30 * time.Second
)

// NewRedisClient connects to the configured redis server. It returns nil
// when no address is configured or the server does not answer, in which
// case callers run without a cache.
func NewRedisClient(ctx context.Context, conf config.RedisConfig) *redis.Client {
	if conf.Addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		zap.L().Warn("redis unavailable, listing cache disabled", zap.String("addr", conf.Addr), zap.Error(err))
		_ = client.Close()
		return nil
	}

	return client
}

// ListingCache stores JSON encoded listings under a fixed set of keys.
// A nil client turns every call into a miss.
type ListingCache struct {
	client *redis.Client
	ttl    time.Duration
	keys   []string
}

func NewListingCache(client *redis.Client, ttl time.Duration, keys []string) *ListingCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &ListingCache{
		client: client,
		ttl:    ttl,
		keys:   keys,
	}
}

func (c *ListingCache) Fetch(ctx context.Context, key string, dst interface{}) bool {
	if c.client == nil {
		return false
	}

	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("listing cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		zap.L().Warn("listing cache entry is corrupt", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *ListingCache) Store(ctx context.Context, key string, value interface{}) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		zap.L().Warn("listing cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, keyPrefix+key, raw, c.ttl).Err(); err != nil {
		zap.L().Warn("listing cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops every cached listing.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if c.client == nil || len(c.keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, c.prefixed()...).Err(); err != nil {
		zap.L().Warn("listing cache invalidation failed", zap.Error(err))
	}
}

func (c *ListingCache) prefixed() []string {
	keys := make([]string, len(c.keys))
	for i, k := range c.keys {
		keys[i] = fmt.Sprintf("%s%s", keyPrefix, k)
	}
	return keys
}
