package cache

import (
	"context"
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
)

// Noop заглушка кэша для конфигураций без Redis
type Noop struct{}

// Get всегда возвращает ErrCacheMiss
func (Noop) Get(_ context.Context, _ int64, _ time.Time, _ int) ([]domain.AvailabilitySlot, error) {
	return nil, ErrCacheMiss
}

// Set ничего не делает
func (Noop) Set(_ context.Context, _ int64, _ time.Time, _ int, _ []domain.AvailabilitySlot) error {
	return nil
}

// Invalidate ничего не делает
func (Noop) Invalidate(_ context.Context, _ int64, _ time.Time) error {
	return nil
}
