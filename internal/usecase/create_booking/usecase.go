package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	directoryClient "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/integrations/directory"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: staff=%d, client=%d, service=%d, date=%s, time=%s",
		req.StaffID, req.ClientID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем мастера из справочника
	if _, err := uc.directory.GetStaff(ctx, req.StaffID); err != nil {
		if errors.Is(err, directoryClient.ErrStaffNotFound) {
			uc.logger.Warn("CreateBooking: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateBooking: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 4. Получаем клиента из справочника
	customer, err := uc.directory.GetCustomer(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrCustomerNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 5. Получаем услугу из справочника
	service, err := uc.directory.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Вычисляем время окончания из длительности услуги
	duration := service.DurationMinutes
	if duration < domain.MinServiceMinutes {
		duration = domain.MinServiceMinutes
	}
	endTime, err := req.StartTime.AddMinutes(duration)
	if err != nil {
		uc.logger.Warn("CreateBooking: booking %s+%dmin does not fit into the day", req.StartTime, duration)
		return nil, fmt.Errorf("%w: booking does not fit into the day", ErrInvalidInput)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 7. Выполняем проверки и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Проверяем интервал против смены мастера
		violation, err := uc.detector.ValidateAgainstShift(txCtx, req.StaffID, req.Date, req.StartTime, endTime)
		if err != nil {
			uc.logger.Error("CreateBooking: shift validation failed: %v", err)
			return fmt.Errorf("%w: failed to validate shift: %v", ErrInternal, err)
		}
		if violation != nil {
			uc.logger.Warn("CreateBooking: shift violation for staff id=%d: %s", req.StaffID, violation.Reason)
			return &ConflictError{Err: ErrShiftViolation, Reason: violation.Reason}
		}

		// 7.2. Проверяем пересечения с бронированиями мастера (с блокировкой FOR UPDATE)
		staffConflicts, err := uc.detector.CheckStaffConflicts(txCtx, req.StaffID, req.Date, req.StartTime, endTime, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: staff conflict check failed: %v", err)
			return fmt.Errorf("%w: failed to check staff conflicts: %v", ErrInternal, err)
		}
		if len(staffConflicts) > 0 {
			uc.logger.Warn("CreateBooking: staff id=%d has %d conflicting bookings", req.StaffID, len(staffConflicts))
			return &ConflictError{
				Err:       ErrStaffConflict,
				Reason:    fmt.Sprintf("Staff already has %d booking(s) in this interval", len(staffConflicts)),
				Conflicts: staffConflicts,
			}
		}

		// 7.3. Проверяем пересечения с бронированиями клиента
		clientOverlaps, err := uc.detector.CheckClientOverlaps(txCtx, req.ClientID, req.Date, req.StartTime, endTime)
		if err != nil {
			uc.logger.Error("CreateBooking: client overlap check failed: %v", err)
			return fmt.Errorf("%w: failed to check client overlaps: %v", ErrInternal, err)
		}
		if len(clientOverlaps) > 0 {
			uc.logger.Warn("CreateBooking: client id=%d has %d overlapping bookings", req.ClientID, len(clientOverlaps))
			return &ConflictError{
				Err:       ErrClientConflict,
				Reason:    "Client already has a booking in this interval",
				Conflicts: clientOverlaps,
			}
		}

		// 7.4. Проверяем незакрытые по оплате бронирования клиента (блокируют любую дату)
		unpaid, err := uc.detector.CheckUnpaidBlock(txCtx, req.ClientID)
		if err != nil {
			uc.logger.Error("CreateBooking: unpaid check failed: %v", err)
			return fmt.Errorf("%w: failed to check unsettled bookings: %v", ErrInternal, err)
		}
		if len(unpaid) > 0 {
			uc.logger.Warn("CreateBooking: client id=%d has %d unsettled bookings", req.ClientID, len(unpaid))
			return &ConflictError{
				Err:       ErrUnpaidBlock,
				Reason:    "Client has unpaid bookings that must be settled first",
				Conflicts: unpaid,
			}
		}

		// 7.5. Создаем бронирование с денормализацией данных
		booking := &domain.Booking{
			StaffID:     req.StaffID,
			ClientID:    req.ClientID,
			ServiceID:   req.ServiceID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			EndTime:     endTime,
			Status:      domain.StatusScheduled,
			Payment:     domain.PaymentPending,
			// Денормализация данных услуги и клиента
			ServiceName:  service.Name,
			ServicePrice: service.Price,
			ClientName:   customer.Name,
			// Заметки
			Notes: req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Сетки доступности мастера на эту дату устарели
	if err := uc.invalidator.Invalidate(ctx, result.StaffID, result.BookingDate); err != nil {
		uc.logger.Warn("CreateBooking: failed to invalidate availability cache: %v", err)
	}

	// Конвертируем в response
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
