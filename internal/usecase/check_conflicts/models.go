package check_conflicts

import (
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// Request модель запроса на проверку кандидата
type Request struct {
	StaffID         int64            // ID мастера
	Date            time.Time        // Дата
	StartTime       types.TimeString // Время начала кандидата
	DurationMinutes int              // Длительность в минутах

	// ExcludeBookingID исключает бронирование из проверки (для проверки переноса)
	ExcludeBookingID *int64
}

// Response модель результата проверки.
// ShiftViolation заполнен, когда интервал нарушает смену; Conflicts — когда
// пересекается с бронированиями мастера. Suggestions подбираются при любом отказе.
type Response struct {
	HasConflicts   bool
	ShiftViolation *ShiftViolation
	Conflicts      []*domain.Booking
	Suggestions    []domain.TimeSlot
}

// ShiftViolation описание нарушения смены
type ShiftViolation struct {
	Code   string
	Reason string
}
