package check_conflicts

import (
	"context"
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/schedule"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// ConflictDetector канонический движок проверки конфликтов
type ConflictDetector interface {
	ValidateAgainstShift(ctx context.Context, staffID int64, date time.Time, start, end types.TimeString) (*schedule.ShiftViolation, error)
	CheckStaffConflicts(ctx context.Context, staffID int64, date time.Time, start, end types.TimeString, excludeBookingID *int64) ([]*domain.Booking, error)
}

// SlotSuggester движок подбора альтернативных окон
type SlotSuggester interface {
	Suggest(ctx context.Context, staffID int64, date time.Time, durationMinutes int, params schedule.SuggestParams) ([]domain.TimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
