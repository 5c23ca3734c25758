package reschedule_booking

import (
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	rescheduleBooking "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/reschedule_booking"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// RescheduleBookingRequest HTTP request model
// staffId и serviceId опциональны: отсутствие означает "оставить как было"
type RescheduleBookingRequest struct {
	BookingDate string  `json:"bookingDate"` // "2025-10-15"
	StartTime   string  `json:"startTime"`   // "10:00"
	StaffID     *int64  `json:"staffId,omitempty"`
	ServiceID   *int64  `json:"serviceId,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	StaffID      int64   `json:"staffId"`
	ClientID     int64   `json:"clientId"`
	ServiceID    int64   `json:"serviceId"`
	BookingDate  string  `json:"bookingDate"`
	StartTime    string  `json:"startTime"`
	EndTime      string  `json:"endTime"`
	Status       string  `json:"status"`
	Payment      string  `json:"paymentStatus"`
	ServiceName  string  `json:"serviceName"`
	ServicePrice float64 `json:"servicePrice"`
	ClientName   string  `json:"clientName"`
	Notes        *string `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// ConflictResponse HTTP response model для отказа с блокирующими бронированиями
type ConflictResponse struct {
	Error     string            `json:"error"`
	Reason    string            `json:"reason,omitempty"`
	Conflicts []BookingConflict `json:"conflicts,omitempty"`
}

// BookingConflict краткое описание блокирующего бронирования
type BookingConflict struct {
	ID          int64  `json:"id"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	Payment     string `json:"paymentStatus"`
	ServiceName string `json:"serviceName"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID int64) (*rescheduleBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		Date:      bookingDate,
		StartTime: startTime,
		StaffID:   r.StaffID,
		ServiceID: r.ServiceID,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		StaffID:      resp.StaffID,
		ClientID:     resp.ClientID,
		ServiceID:    resp.ServiceID,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		EndTime:      resp.EndTime.String(),
		Status:       resp.Status,
		Payment:      resp.Payment,
		ServiceName:  resp.ServiceName,
		ServicePrice: resp.ServicePrice,
		ClientName:   resp.ClientName,
		Notes:        resp.Notes,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromConflictError конвертирует типизированный отказ в HTTP response
func FromConflictError(message string, conflictErr *rescheduleBooking.ConflictError) *ConflictResponse {
	resp := &ConflictResponse{
		Error:  message,
		Reason: conflictErr.Reason,
	}
	for _, b := range conflictErr.Conflicts {
		resp.Conflicts = append(resp.Conflicts, BookingConflict{
			ID:          b.ID,
			BookingDate: b.BookingDate.Format(domain.DateFormat),
			StartTime:   b.StartTime.String(),
			EndTime:     b.EndTime.String(),
			Status:      string(b.Status),
			Payment:     string(b.Payment),
			ServiceName: b.ServiceName,
		})
	}
	return resp
}
