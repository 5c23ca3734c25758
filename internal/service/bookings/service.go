package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	bookingRepo "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/infra/storage/booking"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями вне конвейера создания/переноса
type Service struct {
	bookingRepo BookingRepository
	invalidator AvailabilityInvalidator
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, invalidator AvailabilityInvalidator, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		invalidator: invalidator,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetStaffBookings получает бронирования мастера с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
//
// Примеры использования:
// - Все активные бронирования: GetStaffBookings(ctx, &GetStaffBookingsRequest{StaffID: 10})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Только завершенные: указать Status = "completed"
// - Включая отмененные: IncludeInactive = true
func (s *Service) GetStaffBookings(ctx context.Context, req *models.GetStaffBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetStaffBookings: fetching bookings for staff=%d", req.StaffID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetStaffBookings: invalid filter for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByStaffWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetStaffBookings: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: GetStaffBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStaffBookings: successfully fetched %d bookings for staff=%d", len(bookings), req.StaffID)
	return models.FromDomainBookingList(bookings), nil
}

// GetClientBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, status=%v", req.ClientID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование с сохранением записи и причины отмены.
// Отмена мягкая: строка остается в истории и в аудите, слот мастера освобождается.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	s.invalidate(ctx, booking)
	return nil
}

// Delete удаляет бронирование без следа в истории.
// В отличие от Cancel запись пропадает из всех выборок и аудита.
func (s *Service) Delete(ctx context.Context, bookingID int64) error {
	s.logger.Info("Delete: deleting booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found during deletion", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", bookingID)
	s.invalidate(ctx, booking)
	return nil
}

// UpdateStatus обновляет статус бронирования
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)

	// Переход в cancelled/no_show освобождает слот, обратный переход занимает
	s.invalidate(ctx, booking)
	return nil
}

// UpdatePayment обновляет статус оплаты бронирования.
// Перевод в paid снимает блокировку новых бронирований клиента.
func (s *Service) UpdatePayment(ctx context.Context, bookingID int64, req *models.UpdatePaymentRequest) error {
	s.logger.Info("UpdatePayment: updating booking id=%d to payment=%s", bookingID, req.PaymentStatus)

	newPayment, err := models.ToDomainPaymentStatus(req.PaymentStatus)
	if err != nil {
		s.logger.Warn("UpdatePayment: invalid payment status=%s for booking id=%d", req.PaymentStatus, bookingID)
		return fmt.Errorf("%w: invalid payment status", ErrInvalidInput)
	}

	if err := s.bookingRepo.UpdatePayment(ctx, bookingID, newPayment); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdatePayment: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdatePayment: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdatePayment - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePayment: successfully updated booking id=%d to payment=%s", bookingID, newPayment)
	return nil
}

func (s *Service) invalidate(ctx context.Context, booking *domain.Booking) {
	if err := s.invalidator.Invalidate(ctx, booking.StaffID, booking.BookingDate); err != nil {
		s.logger.Warn("failed to invalidate availability cache for staff=%d: %v", booking.StaffID, err)
	}
}
