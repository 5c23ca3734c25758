package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// Resolver вычисляет статус каждого слота сетки для одного мастера
// на одну дату. Единственный источник этой логики для всех читающих
// представлений (календарь, карточка мастера, API доступности).
type Resolver struct {
	shifts   ShiftRepository
	bookings BookingRepository
}

// NewResolver создает резолвер доступности
func NewResolver(shifts ShiftRepository, bookings BookingRepository) *Resolver {
	return &Resolver{shifts: shifts, bookings: bookings}
}

// Resolve возвращает статусы слотов в порядке входной сетки.
//
// Приоритет статусов: not_available/absent > off_duty > break >
// out_of_office > booked > available. Перерыв проверяется раньше
// пересечения с бронированиями: слот внутри перерыва отдается как break,
// даже если на него никто не записан.
func (r *Resolver) Resolve(ctx context.Context, staffID int64, date time.Time, slots []domain.TimeSlot) ([]domain.AvailabilitySlot, error) {
	log, reason, err := r.workableLog(ctx, staffID, date)
	if err != nil {
		return nil, err
	}

	if log == nil {
		return markAll(slots, domain.SlotNotAvailable, reason), nil
	}

	if !log.IsWorkable() {
		return markAll(slots, domain.SlotAbsent, reason), nil
	}

	bookings, err := r.bookings.GetActiveByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return nil, fmt.Errorf("resolver: failed to load bookings: %w", err)
	}

	result := make([]domain.AvailabilitySlot, 0, len(slots))
	for _, slot := range slots {
		result = append(result, resolveSlot(slot, log, bookings))
	}

	return result, nil
}

// workableLog загружает журнал смены; reason заполняется для случаев,
// когда весь день недоступен
func (r *Resolver) workableLog(ctx context.Context, staffID int64, date time.Time) (*domain.DailyShiftLog, string, error) {
	shiftRange, err := r.shifts.GetRangeForDate(ctx, staffID, date)
	if err != nil {
		if errors.Is(err, ErrShiftRangeNotFound) {
			return nil, "No shift assigned for this date", nil
		}
		return nil, "", fmt.Errorf("resolver: failed to load shift range: %w", err)
	}

	log, err := r.shifts.GetDailyLog(ctx, shiftRange.ID, date)
	if err != nil {
		if errors.Is(err, ErrDailyLogNotFound) {
			return nil, "No shift scheduled for this date", nil
		}
		return nil, "", fmt.Errorf("resolver: failed to load daily log: %w", err)
	}

	switch log.Status {
	case domain.ShiftAbsent:
		return log, "Staff is absent on this date", nil
	case domain.ShiftHoliday:
		return log, "Staff is on holiday on this date", nil
	}

	return log, "", nil
}

func resolveSlot(slot domain.TimeSlot, log *domain.DailyShiftLog, bookings []*domain.Booking) domain.AvailabilitySlot {
	out := domain.AvailabilitySlot{Slot: slot}

	// Вне рабочих часов смены
	if slot.Start.IsBefore(log.ShiftStart) || !slot.Start.IsBefore(log.ShiftEnd) {
		out.Status = domain.SlotOffDuty
		out.Reason = fmt.Sprintf("Off duty (shift %s-%s)", log.ShiftStart, log.ShiftEnd)
		return out
	}

	// Перерыв выигрывает у бронирований безусловно
	if log.HasBreak() && intersects(slot.Start, slot.End, *log.BreakStart, *log.BreakEnd) {
		out.Status = domain.SlotBreak
		out.Reason = fmt.Sprintf("Break (%s-%s)", *log.BreakStart, *log.BreakEnd)
		return out
	}

	if log.HasOutOfOffice() && intersects(slot.Start, slot.End, *log.OutOfOfficeStart, *log.OutOfOfficeEnd) {
		out.Status = domain.SlotOutOfOffice
		out.Reason = outOfOfficeReason(log)
		return out
	}

	for _, b := range bookings {
		if !b.IsActive() || !b.Overlaps(slot.Start, slot.End) {
			continue
		}

		if b.StartTime == slot.Start {
			// Первый слот бронирования несет полную информацию
			out.Status = domain.SlotBooked
			out.Reason = fmt.Sprintf("%s - %s (until %s)", b.ServiceName, b.ClientName, b.EndTime)
			out.BookingID = &b.ID
			out.ServiceName = &b.ServiceName
			out.ClientName = &b.ClientName
			out.BookingEnd = &b.EndTime
			return out
		}

		// Слот внутри уже начатого бронирования
		out.Status = domain.SlotBookedContinuation
		out.Reason = fmt.Sprintf("Continuation of booking until %s", b.EndTime)
		out.BookingID = &b.ID
		return out
	}

	out.Status = domain.SlotAvailable
	if remaining, err := slot.Start.MinutesUntil(log.ShiftEnd); err == nil {
		out.RemainingMinutes = remaining
	}
	return out
}

func outOfOfficeReason(log *domain.DailyShiftLog) string {
	reason := fmt.Sprintf("Out of office (%s-%s)", *log.OutOfOfficeStart, *log.OutOfOfficeEnd)
	if log.OutOfOfficeReason != nil && *log.OutOfOfficeReason != "" {
		reason += ": " + *log.OutOfOfficeReason
	}
	return reason
}

func markAll(slots []domain.TimeSlot, status domain.SlotStatus, reason string) []domain.AvailabilitySlot {
	result := make([]domain.AvailabilitySlot, 0, len(slots))
	for _, slot := range slots {
		result = append(result, domain.AvailabilitySlot{Slot: slot, Status: status, Reason: reason})
	}
	return result
}

// intersects проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и
// [bStart, bEnd). Соприкасающиеся границы пересечением не считаются.
func intersects(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return aStart.IsBefore(bEnd) && bStart.IsBefore(aEnd)
}
