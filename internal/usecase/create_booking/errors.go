package create_booking

import (
	"errors"
	"fmt"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
)

var (
	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDate дата бронирования в прошлом
	ErrInvalidDate = errors.New("booking date cannot be in the past")

	// ErrStaffNotFound мастер не найден в справочнике
	ErrStaffNotFound = errors.New("staff not found")

	// ErrClientNotFound клиент не найден в справочнике
	ErrClientNotFound = errors.New("client not found")

	// ErrServiceNotFound услуга не найдена в справочнике
	ErrServiceNotFound = errors.New("service not found")

	// ErrShiftViolation запрошенный интервал нарушает смену мастера
	ErrShiftViolation = errors.New("booking violates staff shift")

	// ErrStaffConflict интервал пересекается с активными бронированиями мастера
	ErrStaffConflict = errors.New("staff has conflicting bookings")

	// ErrClientConflict интервал пересекается с активными бронированиями клиента
	ErrClientConflict = errors.New("client has conflicting bookings")

	// ErrUnpaidBlock у клиента есть незакрытые по оплате бронирования
	ErrUnpaidBlock = errors.New("client has unsettled bookings")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("internal error")
)

// ConflictError отказ в создании с причиной и списком блокирующих бронирований
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
