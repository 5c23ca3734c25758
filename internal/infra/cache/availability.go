package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
)

// ErrCacheMiss возвращается, когда сетки нет в кэше
var ErrCacheMiss = errors.New("cache: availability grid not found")

// AvailabilityCache кэш разрешенных сеток доступности в Redis.
// Ключ: мастер + дата + гранулярность. TTL короткий, а любая запись
// бронирования инвалидирует все сетки мастера на эту дату.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кэш доступности
func New(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

// Get возвращает закэшированную сетку или ErrCacheMiss
func (c *AvailabilityCache) Get(ctx context.Context, staffID int64, date time.Time, granularity int) ([]domain.AvailabilitySlot, error) {
	payload, err := c.client.Get(ctx, gridKey(staffID, date, granularity)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get grid: %w", err)
	}

	var slots []domain.AvailabilitySlot
	if err := json.Unmarshal(payload, &slots); err != nil {
		return nil, fmt.Errorf("cache: decode grid: %w", err)
	}

	return slots, nil
}

// Set сохраняет сетку с TTL
func (c *AvailabilityCache) Set(ctx context.Context, staffID int64, date time.Time, granularity int, slots []domain.AvailabilitySlot) error {
	payload, err := json.Marshal(slots)
	if err != nil {
		return fmt.Errorf("cache: encode grid: %w", err)
	}

	if err := c.client.Set(ctx, gridKey(staffID, date, granularity), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set grid: %w", err)
	}

	return nil
}

// Invalidate удаляет все сетки мастера на дату (все гранулярности)
func (c *AvailabilityCache) Invalidate(ctx context.Context, staffID int64, date time.Time) error {
	pattern := fmt.Sprintf("availability:%d:%s:*", staffID, date.Format(domain.DateFormat))

	keys, err := c.client.Keys(ctx, pattern).Result()
	if err != nil {
		return fmt.Errorf("cache: list grid keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache: delete grid keys: %w", err)
	}

	return nil
}

func gridKey(staffID int64, date time.Time, granularity int) string {
	return fmt.Sprintf("availability:%d:%s:%d", staffID, date.Format(domain.DateFormat), granularity)
}
