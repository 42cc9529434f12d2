// Package cache implements Redis-backed caches for the integration layer.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/atelier-crm/backend/internal/application/adapter"
	"github.com/atelier-crm/backend/internal/domain/entity"
)

// redisCalendarCache implements adapter.CalendarCache on Redis. Month
// entries are stored as JSON under a per-user, per-month key and expire
// on a short TTL; task and order writes invalidate the affected month.
type redisCalendarCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCalendarCache creates a new Redis-backed calendar cache.
func NewRedisCalendarCache(client *redis.Client, ttl time.Duration) adapter.CalendarCache {
	return &redisCalendarCache{
		client: client,
		ttl:    ttl,
	}
}

// GetMonth returns the cached items for the month, or ok=false on a miss.
// Redis failures degrade to a miss so the calendar stays available.
func (c *redisCalendarCache) GetMonth(ctx context.Context, userID uuid.UUID, year, month int) ([]entity.CalendarItem, bool) {
	payload, err := c.client.Get(ctx, monthKey(userID, year, month)).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("calendar cache read failed", "error", err)
		}
		return nil, false
	}

	var items []entity.CalendarItem
	if err := json.Unmarshal(payload, &items); err != nil {
		slog.Warn("calendar cache entry corrupt, dropping", "error", err)
		c.client.Del(ctx, monthKey(userID, year, month))
		return nil, false
	}
	return items, true
}

// SetMonth stores the items for the month.
func (c *redisCalendarCache) SetMonth(ctx context.Context, userID uuid.UUID, year, month int, items []entity.CalendarItem) {
	payload, err := json.Marshal(items)
	if err != nil {
		slog.Error("failed to marshal calendar cache entry", "error", err)
		return
	}
	if err := c.client.Set(ctx, monthKey(userID, year, month), payload, c.ttl).Err(); err != nil {
		slog.Warn("calendar cache write failed", "error", err)
	}
}

// InvalidateMonth drops any cached entry for the month.
func (c *redisCalendarCache) InvalidateMonth(ctx context.Context, userID uuid.UUID, year, month int) {
	if err := c.client.Del(ctx, monthKey(userID, year, month)).Err(); err != nil {
		slog.Warn("calendar cache invalidation failed", "error", err)
	}
}

// monthKey builds the cache key for a user's month. The month is 0-based
// in the API and rendered 1-based in the key.
func monthKey(userID uuid.UUID, year, month int) string {
	return fmt.Sprintf("calendar:month:%s:%04d-%02d", userID, year, month+1)
}
