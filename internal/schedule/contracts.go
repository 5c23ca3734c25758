package schedule

import (
	"context"
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
)

// ShiftRepository узкий контракт чтения смен персонала
// Реализации возвращают ErrShiftRangeNotFound / ErrDailyLogNotFound,
// когда данных нет
type ShiftRepository interface {
	// GetRangeForDate возвращает диапазон смен, покрывающий указанную дату
	GetRangeForDate(ctx context.Context, staffID int64, date time.Time) (*domain.ShiftRange, error)
	// GetDailyLog возвращает журнал смены на конкретную дату
	GetDailyLog(ctx context.Context, rangeID int64, date time.Time) (*domain.DailyShiftLog, error)
}

// BookingRepository узкий контракт чтения бронирований для движка расписания
type BookingRepository interface {
	// GetActiveByStaffAndDate возвращает активные (не отмененные и не no-show)
	// бронирования мастера на дату, отсортированные по времени начала
	GetActiveByStaffAndDate(ctx context.Context, staffID int64, date time.Time) ([]*domain.Booking, error)
	// GetActiveByClientAndDate возвращает активные бронирования клиента на дату
	GetActiveByClientAndDate(ctx context.Context, clientID int64, date time.Time) ([]*domain.Booking, error)
	// GetUnsettledByClient возвращает бронирования клиента с незакрытой
	// оплатой на любую дату
	GetUnsettledByClient(ctx context.Context, clientID int64) ([]*domain.Booking, error)
}
