package reschedule_booking

import (
	"errors"
	"fmt"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
)

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate новая дата бронирования в прошлом
	ErrInvalidDate = errors.New("booking date cannot be in the past")

	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrCannotReschedule бронирование нельзя перенести в текущем статусе
	ErrCannotReschedule = errors.New("booking cannot be rescheduled")

	// ErrStaffNotFound мастер не найден в справочнике
	ErrStaffNotFound = errors.New("staff not found")

	// ErrServiceNotFound услуга не найдена в справочнике
	ErrServiceNotFound = errors.New("service not found")

	// ErrShiftViolation новый интервал нарушает смену мастера
	ErrShiftViolation = errors.New("booking violates staff shift")

	// ErrStaffConflict новый интервал пересекается с бронированиями мастера
	ErrStaffConflict = errors.New("staff has conflicting bookings")

	// ErrClientConflict новый интервал пересекается с бронированиями клиента
	ErrClientConflict = errors.New("client has conflicting bookings")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)

// ConflictError отказ в переносе с причиной и списком блокирующих бронирований
type ConflictError struct {
	Err       error
	Reason    string
	Conflicts []*domain.Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return e.Err
}
