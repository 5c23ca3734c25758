package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// ViolationCode машиночитаемый код нарушения правил смены
type ViolationCode string

const (
	ViolationNoShift      ViolationCode = "no_shift"
	ViolationAbsent       ViolationCode = "absent"
	ViolationOutsideShift ViolationCode = "outside_shift"
	ViolationBreak        ViolationCode = "break_overlap"
	ViolationOutOfOffice  ViolationCode = "out_of_office"
)

// ShiftViolation описывает, почему интервал нарушает правила смены.
// Reason готов к показу пользователю.
type ShiftViolation struct {
	Code   ViolationCode
	Reason string
}

// Detector проверяет кандидата на бронирование против правил смены,
// двойных бронирований мастера и конфликтов клиента
type Detector struct {
	shifts   ShiftRepository
	bookings BookingRepository
}

// NewDetector создает детектор конфликтов
func NewDetector(shifts ShiftRepository, bookings BookingRepository) *Detector {
	return &Detector{shifts: shifts, bookings: bookings}
}

// ValidateAgainstShift проверяет интервал [start, end) против смены мастера.
// Возвращает первое нарушение в порядке приоритета:
// нет смены > отсутствие/отпуск > вне рабочих часов > перерыв > out-of-office.
// nil означает, что нарушений нет.
func (d *Detector) ValidateAgainstShift(ctx context.Context, staffID int64, date time.Time, start, end types.TimeString) (*ShiftViolation, error) {
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidInterval, start, end)
	}

	shiftRange, err := d.shifts.GetRangeForDate(ctx, staffID, date)
	if err != nil {
		if errors.Is(err, ErrShiftRangeNotFound) {
			return &ShiftViolation{ViolationNoShift, "No shift scheduled for this date"}, nil
		}
		return nil, fmt.Errorf("detector: failed to load shift range: %w", err)
	}

	log, err := d.shifts.GetDailyLog(ctx, shiftRange.ID, date)
	if err != nil {
		if errors.Is(err, ErrDailyLogNotFound) {
			return &ShiftViolation{ViolationNoShift, "No shift scheduled for this date"}, nil
		}
		return nil, fmt.Errorf("detector: failed to load daily log: %w", err)
	}

	switch log.Status {
	case domain.ShiftAbsent:
		return &ShiftViolation{ViolationAbsent, "Staff is absent on this date"}, nil
	case domain.ShiftHoliday:
		return &ShiftViolation{ViolationAbsent, "Staff is on holiday on this date"}, nil
	}

	if start.IsBefore(log.ShiftStart) || end.IsAfter(log.ShiftEnd) {
		return &ShiftViolation{
			ViolationOutsideShift,
			fmt.Sprintf("Outside of shift hours (%s-%s)", log.ShiftStart, log.ShiftEnd),
		}, nil
	}

	if log.HasBreak() && intersects(start, end, *log.BreakStart, *log.BreakEnd) {
		return &ShiftViolation{
			ViolationBreak,
			fmt.Sprintf("Overlaps break time (%s-%s)", *log.BreakStart, *log.BreakEnd),
		}, nil
	}

	if log.HasOutOfOffice() && intersects(start, end, *log.OutOfOfficeStart, *log.OutOfOfficeEnd) {
		return &ShiftViolation{ViolationOutOfOffice, outOfOfficeReason(log)}, nil
	}

	return nil, nil
}

// CheckStaffConflicts возвращает активные бронирования мастера,
// пересекающиеся с интервалом [start, end). Проверка полуоткрытая:
// new.start < other.end AND new.end > other.start.
// excludeBookingID исключает собственное бронирование при переносе.
func (d *Detector) CheckStaffConflicts(ctx context.Context, staffID int64, date time.Time, start, end types.TimeString, excludeBookingID *int64) ([]*domain.Booking, error) {
	bookings, err := d.bookings.GetActiveByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return nil, fmt.Errorf("detector: failed to load staff bookings: %w", err)
	}

	conflicts := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if excludeBookingID != nil && b.ID == *excludeBookingID {
			continue
		}
		if !b.BlocksStaff() {
			continue
		}
		if b.Overlaps(start, end) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts, nil
}

// CheckClientOverlaps возвращает активные бронирования клиента на ту же дату,
// пересекающиеся с интервалом [start, end)
func (d *Detector) CheckClientOverlaps(ctx context.Context, clientID int64, date time.Time, start, end types.TimeString) ([]*domain.Booking, error) {
	bookings, err := d.bookings.GetActiveByClientAndDate(ctx, clientID, date)
	if err != nil {
		return nil, fmt.Errorf("detector: failed to load client bookings: %w", err)
	}

	conflicts := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.BlocksStaff() && b.Overlaps(start, end) {
			conflicts = append(conflicts, b)
		}
	}

	return conflicts, nil
}

// CheckUnpaidBlock возвращает бронирования клиента с незакрытой оплатой
// на любую дату, прошлую или будущую. Политика: клиент с любым неоплаченным
// бронированием не может бронировать вообще, пока не рассчитается.
// Пересечение по времени роли не играет.
func (d *Detector) CheckUnpaidBlock(ctx context.Context, clientID int64) ([]*domain.Booking, error) {
	bookings, err := d.bookings.GetUnsettledByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("detector: failed to load unsettled bookings: %w", err)
	}

	blocking := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.IsUnsettled() {
			blocking = append(blocking, b)
		}
	}

	return blocking, nil
}

// CheckClientConflicts объединяет оба клиентских правила: пересечения на ту же
// дату и unpaid-block. Порядок: сначала пересечения, затем неоплаченные,
// без дубликатов.
func (d *Detector) CheckClientConflicts(ctx context.Context, clientID int64, date time.Time, start, end types.TimeString) ([]*domain.Booking, error) {
	overlaps, err := d.CheckClientOverlaps(ctx, clientID, date, start, end)
	if err != nil {
		return nil, err
	}

	unpaid, err := d.CheckUnpaidBlock(ctx, clientID)
	if err != nil {
		return nil, err
	}

	seen := make(map[int64]struct{}, len(overlaps))
	result := make([]*domain.Booking, 0, len(overlaps)+len(unpaid))

	for _, b := range overlaps {
		seen[b.ID] = struct{}{}
		result = append(result, b)
	}
	for _, b := range unpaid {
		if _, ok := seen[b.ID]; ok {
			continue
		}
		result = append(result, b)
	}

	return result, nil
}
