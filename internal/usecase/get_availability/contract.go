package get_availability

import (
	"context"
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
)

// AvailabilityResolver движок разрешения сетки доступности
type AvailabilityResolver interface {
	Resolve(ctx context.Context, staffID int64, date time.Time, slots []domain.TimeSlot) ([]domain.AvailabilitySlot, error)
}

// GridCache кэш разрешенных сеток
type GridCache interface {
	Get(ctx context.Context, staffID int64, date time.Time, granularity int) ([]domain.AvailabilitySlot, error)
	Set(ctx context.Context, staffID int64, date time.Time, granularity int, slots []domain.AvailabilitySlot) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
