package check_conflicts

import (
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	checkConflicts "github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/usecase/check_conflicts"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// CheckConflictsRequest HTTP request model
type CheckConflictsRequest struct {
	StaffID          int64  `json:"staffId"`
	Date             string `json:"date"`      // "2025-10-15"
	StartTime        string `json:"startTime"` // "10:00"
	DurationMinutes  int    `json:"durationMinutes"`
	ExcludeBookingID *int64 `json:"excludeBookingId,omitempty"`
}

// CheckConflictsResponse HTTP response model
type CheckConflictsResponse struct {
	HasConflicts   bool               `json:"hasConflicts"`
	ShiftViolation *ShiftViolation    `json:"shiftViolation,omitempty"`
	Conflicts      []BookingConflict  `json:"conflicts,omitempty"`
	Suggestions    []SuggestedWindow  `json:"suggestions,omitempty"`
}

// ShiftViolation описание нарушения смены
type ShiftViolation struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// BookingConflict краткое описание блокирующего бронирования
type BookingConflict struct {
	ID          int64  `json:"id"`
	BookingDate string `json:"bookingDate"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Status      string `json:"status"`
	ServiceName string `json:"serviceName"`
}

// SuggestedWindow альтернативное окно
type SuggestedWindow struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictsRequest) ToUseCaseRequest() (*checkConflicts.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &checkConflicts.Request{
		StaffID:          r.StaffID,
		Date:             date,
		StartTime:        startTime,
		DurationMinutes:  r.DurationMinutes,
		ExcludeBookingID: r.ExcludeBookingID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflicts.Response) *CheckConflictsResponse {
	out := &CheckConflictsResponse{
		HasConflicts: resp.HasConflicts,
	}

	if resp.ShiftViolation != nil {
		out.ShiftViolation = &ShiftViolation{
			Code:   resp.ShiftViolation.Code,
			Reason: resp.ShiftViolation.Reason,
		}
	}

	for _, b := range resp.Conflicts {
		out.Conflicts = append(out.Conflicts, BookingConflict{
			ID:          b.ID,
			BookingDate: b.BookingDate.Format(domain.DateFormat),
			StartTime:   b.StartTime.String(),
			EndTime:     b.EndTime.String(),
			Status:      string(b.Status),
			ServiceName: b.ServiceName,
		})
	}

	for _, s := range resp.Suggestions {
		out.Suggestions = append(out.Suggestions, SuggestedWindow{
			StartTime: s.Start.String(),
			EndTime:   s.End.String(),
		})
	}

	return out
}
