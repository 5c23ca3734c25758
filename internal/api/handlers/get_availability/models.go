package get_availability

import (
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	getAvailability "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model с разрешенной сеткой
type AvailabilityResponse struct {
	StaffID      int64              `json:"staffId"`
	Date         string             `json:"date"`
	SlotDuration int                `json:"slotDuration"`
	Slots        []AvailabilitySlot `json:"slots"`
}

// AvailabilitySlot один слот сетки с разрешенным статусом
type AvailabilitySlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
	Reason    string `json:"reason,omitempty"`

	// Заполняются для занятых слотов
	BookingID   *int64  `json:"bookingId,omitempty"`
	ServiceName *string `json:"serviceName,omitempty"`
	ClientName  *string `json:"clientName,omitempty"`
	BookingEnd  *string `json:"bookingEnd,omitempty"`

	// Для свободных слотов: сколько минут осталось до конца смены
	RemainingMinutes int `json:"remainingMinutes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	out := &AvailabilityResponse{
		StaffID:      resp.StaffID,
		Date:         resp.Date.Format(domain.DateFormat),
		SlotDuration: resp.SlotDuration,
		Slots:        make([]AvailabilitySlot, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		slot := AvailabilitySlot{
			StartTime:        s.Slot.Start.String(),
			EndTime:          s.Slot.End.String(),
			Status:           string(s.Status),
			Reason:           s.Reason,
			BookingID:        s.BookingID,
			ServiceName:      s.ServiceName,
			ClientName:       s.ClientName,
			RemainingMinutes: s.RemainingMinutes,
		}
		if s.BookingEnd != nil {
			end := s.BookingEnd.String()
			slot.BookingEnd = &end
		}
		out.Slots = append(out.Slots, slot)
	}

	return out
}
