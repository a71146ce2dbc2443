package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	popularKey      = "places:popular"
	popularTTL      = 5 * time.Minute
	searchKeyPrefix = "search:naver:"
	searchTTL       = 10 * time.Minute
)

// PlaceCache keeps the popular-places board and proxied search responses out
// of the hot path. Misses are signalled with ok=false, never with an error.
type PlaceCache struct {
	redis *redis.Client
}

func NewPlaceCache(rdb *redis.Client) *PlaceCache {
	return &PlaceCache{redis: rdb}
}

func (c *PlaceCache) GetPopular(ctx context.Context, dst any) (bool, error) {
	return c.get(ctx, popularKey, dst)
}

func (c *PlaceCache) SetPopular(ctx context.Context, v any) error {
	return c.set(ctx, popularKey, v, popularTTL)
}

func (c *PlaceCache) GetSearch(ctx context.Context, query string, display int, dst any) (bool, error) {
	return c.get(ctx, searchKey(query, display), dst)
}

func (c *PlaceCache) SetSearch(ctx context.Context, query string, display int, v any) error {
	return c.set(ctx, searchKey(query, display), v, searchTTL)
}

// InvalidatePopular drops the board after a like toggle changes the ranking.
func (c *PlaceCache) InvalidatePopular(ctx context.Context) error {
	return c.redis.Del(ctx, popularKey).Err()
}

func searchKey(query string, display int) string {
	return fmt.Sprintf("%s%d:%s", searchKeyPrefix, display, query)
}

func (c *PlaceCache) get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func (c *PlaceCache) set(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, key, raw, ttl).Err()
}
