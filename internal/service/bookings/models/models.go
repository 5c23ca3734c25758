package models

import (
	"errors"
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentStatus возвращается при некорректном статусе оплаты
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePaymentRequest запрос на обновление статуса оплаты
type UpdatePaymentRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// GetStaffBookingsRequest запрос истории бронирований мастера
type GetStaffBookingsRequest struct {
	StaffID         int64      `json:"staffId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные и неявки
}

// GetClientBookingsRequest запрос истории бронирований клиента
type GetClientBookingsRequest struct {
	ClientID int64   `json:"clientId"`
	Status   *string `json:"status,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetStaffBookingsRequest) ToDomainFilter() (domain.StaffBookingsFilter, error) {
	filter := domain.StaffBookingsFilter{
		StaffID:         r.StaffID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	StaffID     int64  `json:"staffId"`
	ClientID    int64  `json:"clientId"`
	ServiceID   int64  `json:"serviceId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
	EndTime     string `json:"endTime"`     // "11:00"
	Status      string `json:"status"`
	Payment     string `json:"paymentStatus"`

	// Денормализованные данные
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	ClientName   string  `json:"clientName"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		StaffID:            b.StaffID,
		ClientID:           b.ClientID,
		ServiceID:          b.ServiceID,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		EndTime:            b.EndTime.String(),
		Status:             string(b.Status),
		Payment:            string(b.Payment),
		ServiceName:        b.ServiceName,
		ServicePrice:       b.ServicePrice,
		ClientName:         b.ClientName,
		Notes:              b.Notes,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	parsed, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return parsed, nil
}

// ToDomainPaymentStatus конвертирует строку в domain статус оплаты
func ToDomainPaymentStatus(status string) (domain.PaymentStatus, error) {
	parsed, ok := domain.ParsePaymentStatus(status)
	if !ok {
		return "", ErrInvalidPaymentStatus
	}
	return parsed, nil
}
