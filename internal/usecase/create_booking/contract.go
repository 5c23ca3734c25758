package create_booking

import (
	"context"
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/integrations/directory"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/schedule"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ConflictDetector канонический движок проверки конфликтов
type ConflictDetector interface {
	ValidateAgainstShift(ctx context.Context, staffID int64, date time.Time, start, end types.TimeString) (*schedule.ShiftViolation, error)
	CheckStaffConflicts(ctx context.Context, staffID int64, date time.Time, start, end types.TimeString, excludeBookingID *int64) ([]*domain.Booking, error)
	CheckClientOverlaps(ctx context.Context, clientID int64, date time.Time, start, end types.TimeString) ([]*domain.Booking, error)
	CheckUnpaidBlock(ctx context.Context, clientID int64) ([]*domain.Booking, error)
}

// DirectoryClient интерфейс клиента справочника
type DirectoryClient interface {
	GetStaff(ctx context.Context, staffID int64) (*directory.Staff, error)
	GetCustomer(ctx context.Context, customerID int64) (*directory.Customer, error)
	GetService(ctx context.Context, serviceID int64) (*directory.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// AvailabilityInvalidator сбрасывает кэш сеток доступности после записи
type AvailabilityInvalidator interface {
	Invalidate(ctx context.Context, staffID int64, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестируемости)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальная реализация TimeProvider
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
