package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/infra/storage/booking"
	directoryClient "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/integrations/directory"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	detector     ConflictDetector
	directory    DirectoryClient
	txManager    TransactionManager
	invalidator  AvailabilityInvalidator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	detector ConflictDetector,
	directory DirectoryClient,
	txManager TransactionManager,
	invalidator AvailabilityInvalidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		detector:     detector,
		directory:    directory,
		txManager:    txManager,
		invalidator:  invalidator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования.
// Прогоняет новый интервал через тот же конвейер проверок, что и создание,
// исключая само переносимое бронирование из проверки конфликтов мастера.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, date=%s, time=%s",
		req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация новой даты
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("RescheduleBooking: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var previous *domain.Booking

	// 3. Читаем, проверяем и переносим в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем текущее бронирование
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, booking.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}
		previous = current

		// 3.2. Проверяем статус
		if !current.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d has status %s", current.ID, current.Status)
			return fmt.Errorf("%w: status is %s", ErrCannotReschedule, current.Status)
		}

		// 3.3. Определяем целевого мастера
		staffID := current.StaffID
		if req.StaffID != nil {
			staffID = *req.StaffID
			if _, err := uc.directory.GetStaff(txCtx, staffID); err != nil {
				if errors.Is(err, directoryClient.ErrStaffNotFound) {
					uc.logger.Warn("RescheduleBooking: staff id=%d not found", staffID)
					return ErrStaffNotFound
				}
				uc.logger.Error("RescheduleBooking: failed to get staff id=%d: %v", staffID, err)
				return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
			}
		}

		// 3.4. Определяем целевую услугу и длительность
		serviceID := current.ServiceID
		serviceName := current.ServiceName
		servicePrice := current.ServicePrice
		duration, err := current.StartTime.MinutesUntil(current.EndTime)
		if err != nil {
			uc.logger.Error("RescheduleBooking: corrupt time range on booking id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: corrupt booking time range: %v", ErrInternal, err)
		}
		if req.ServiceID != nil {
			service, err := uc.directory.GetService(txCtx, *req.ServiceID)
			if err != nil {
				if errors.Is(err, directoryClient.ErrServiceNotFound) {
					uc.logger.Warn("RescheduleBooking: service id=%d not found", *req.ServiceID)
					return ErrServiceNotFound
				}
				uc.logger.Error("RescheduleBooking: failed to get service id=%d: %v", *req.ServiceID, err)
				return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
			}
			serviceID = service.ID
			serviceName = service.Name
			servicePrice = service.Price
			duration = service.DurationMinutes
		}
		if duration < domain.MinServiceMinutes {
			duration = domain.MinServiceMinutes
		}

		endTime, err := req.StartTime.AddMinutes(duration)
		if err != nil {
			uc.logger.Warn("RescheduleBooking: booking %s+%dmin does not fit into the day", req.StartTime, duration)
			return fmt.Errorf("%w: booking does not fit into the day", ErrInvalidInput)
		}

		// 3.5. Проверяем интервал против смены мастера
		violation, err := uc.detector.ValidateAgainstShift(txCtx, staffID, req.Date, req.StartTime, endTime)
		if err != nil {
			uc.logger.Error("RescheduleBooking: shift validation failed: %v", err)
			return fmt.Errorf("%w: failed to validate shift: %v", ErrInternal, err)
		}
		if violation != nil {
			uc.logger.Warn("RescheduleBooking: shift violation for staff id=%d: %s", staffID, violation.Reason)
			return &ConflictError{Err: ErrShiftViolation, Reason: violation.Reason}
		}

		// 3.6. Проверяем конфликты мастера, исключая само бронирование
		staffConflicts, err := uc.detector.CheckStaffConflicts(txCtx, staffID, req.Date, req.StartTime, endTime, &current.ID)
		if err != nil {
			uc.logger.Error("RescheduleBooking: staff conflict check failed: %v", err)
			return fmt.Errorf("%w: failed to check staff conflicts: %v", ErrInternal, err)
		}
		if len(staffConflicts) > 0 {
			uc.logger.Warn("RescheduleBooking: staff id=%d has %d conflicting bookings", staffID, len(staffConflicts))
			return &ConflictError{
				Err:       ErrStaffConflict,
				Reason:    fmt.Sprintf("Staff already has %d booking(s) in this interval", len(staffConflicts)),
				Conflicts: staffConflicts,
			}
		}

		// 3.7. Проверяем конфликты клиента, исключая само бронирование
		clientOverlaps, err := uc.detector.CheckClientOverlaps(txCtx, current.ClientID, req.Date, req.StartTime, endTime)
		if err != nil {
			uc.logger.Error("RescheduleBooking: client overlap check failed: %v", err)
			return fmt.Errorf("%w: failed to check client overlaps: %v", ErrInternal, err)
		}
		clientOverlaps = excludeBooking(clientOverlaps, current.ID)
		if len(clientOverlaps) > 0 {
			uc.logger.Warn("RescheduleBooking: client id=%d has %d overlapping bookings", current.ClientID, len(clientOverlaps))
			return &ConflictError{
				Err:       ErrClientConflict,
				Reason:    "Client already has a booking in this interval",
				Conflicts: clientOverlaps,
			}
		}

		// 3.8. Применяем перенос
		updated := *current
		updated.StaffID = staffID
		updated.ServiceID = serviceID
		updated.BookingDate = req.Date
		updated.StartTime = req.StartTime
		updated.EndTime = endTime
		updated.ServiceName = serviceName
		updated.ServicePrice = servicePrice
		if req.Notes != nil {
			updated.Notes = req.Notes
		}

		if err := uc.bookingRepo.Reschedule(txCtx, &updated); err != nil {
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", current.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		result = &updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d", result.ID)

	// Инвалидируем сетки по старому и новому размещению
	if err := uc.invalidator.Invalidate(ctx, previous.StaffID, previous.BookingDate); err != nil {
		uc.logger.Warn("RescheduleBooking: failed to invalidate availability cache: %v", err)
	}
	if result.StaffID != previous.StaffID || !result.BookingDate.Equal(previous.BookingDate) {
		if err := uc.invalidator.Invalidate(ctx, result.StaffID, result.BookingDate); err != nil {
			uc.logger.Warn("RescheduleBooking: failed to invalidate availability cache: %v", err)
		}
	}

	return &Response{
		ID:           result.ID,
		StaffID:      result.StaffID,
		ClientID:     result.ClientID,
		ServiceID:    result.ServiceID,
		BookingDate:  result.BookingDate,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Status:       string(result.Status),
		Payment:      string(result.Payment),
		ServiceName:  result.ServiceName,
		ServicePrice: result.ServicePrice,
		ClientName:   result.ClientName,
		Notes:        result.Notes,
		CreatedAt:    result.CreatedAt,
		UpdatedAt:    result.UpdatedAt,
	}, nil
}

// excludeBooking убирает бронирование с указанным ID из списка
func excludeBooking(bookings []*domain.Booking, id int64) []*domain.Booking {
	filtered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
