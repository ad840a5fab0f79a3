package infrastructure

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"mesaPos/internal/modules/restaurants/application/port"
	"mesaPos/internal/modules/restaurants/domain"
)

// RedisMenuCache is a read-through cache for the public menu listing. Every
// failure degrades to a miss; the database stays the source of truth.
type RedisMenuCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{client: client, ttl: ttl}
}

func menuKey(restaurantID int) string {
	return "menu:" + strconv.Itoa(restaurantID)
}

func (c *RedisMenuCache) Get(ctx context.Context, restaurantID int) ([]domain.MenuItem, bool) {
	raw, err := c.client.Get(ctx, menuKey(restaurantID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("menu cache read failed", slog.Int("restaurantId", restaurantID), slog.Any("error", err))
		}
		return nil, false
	}
	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("menu cache decode failed", slog.Int("restaurantId", restaurantID), slog.Any("error", err))
		return nil, false
	}
	return items, true
}

func (c *RedisMenuCache) Set(ctx context.Context, restaurantID int, items []domain.MenuItem) {
	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, menuKey(restaurantID), raw, c.ttl).Err(); err != nil {
		slog.Warn("menu cache write failed", slog.Int("restaurantId", restaurantID), slog.Any("error", err))
	}
}

var _ port.MenuCache = (*RedisMenuCache)(nil)
