package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// SuggestParams параметры поиска альтернативных окон.
// Нулевые поля заменяются дефолтами.
type SuggestParams struct {
	BusinessStart      types.TimeString
	BusinessEnd        types.TimeString
	GranularityMinutes int
	MaxResults         int
}

func (p SuggestParams) withDefaults() SuggestParams {
	if p.BusinessStart.IsZero() {
		p.BusinessStart = domain.DefaultBusinessStart
	}
	if p.BusinessEnd.IsZero() {
		p.BusinessEnd = domain.DefaultBusinessEnd
	}
	if p.GranularityMinutes <= 0 {
		p.GranularityMinutes = domain.DefaultSuggestionGranularity
	}
	if p.MaxResults <= 0 {
		p.MaxResults = domain.DefaultSuggestionMaxResults
	}
	return p
}

// Suggester подбирает альтернативные окна, когда кандидат отклонен
type Suggester struct {
	bookings BookingRepository
}

// NewSuggester создает движок подсказок
func NewSuggester(bookings BookingRepository) *Suggester {
	return &Suggester{bookings: bookings}
}

// Suggest перебирает кандидатов с шагом granularity по рабочим часам и
// возвращает до MaxResults окон длиной durationMinutes, не пересекающихся
// с активными бронированиями мастера. Результат упорядочен по времени.
//
// Кандидаты сознательно не перепроверяются против смены, перерыва и
// out-of-office: потребители опираются на текущее поведение, строгую
// проверку делает ValidateAgainstShift по выбранному кандидату.
func (s *Suggester) Suggest(ctx context.Context, staffID int64, date time.Time, durationMinutes int, params SuggestParams) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidInterval)
	}

	p := params.withDefaults()

	bookings, err := s.bookings.GetActiveByStaffAndDate(ctx, staffID, date)
	if err != nil {
		return nil, fmt.Errorf("suggester: failed to load bookings: %w", err)
	}

	suggestions := make([]domain.TimeSlot, 0, p.MaxResults)

	for candidate := p.BusinessStart; candidate.IsBefore(p.BusinessEnd); {
		candidateEnd, err := candidate.AddMinutes(durationMinutes)
		if err != nil {
			break
		}
		if candidateEnd.IsAfter(p.BusinessEnd) {
			break
		}

		if !overlapsAny(candidate, candidateEnd, bookings) {
			suggestions = append(suggestions, domain.TimeSlot{
				Start:           candidate,
				End:             candidateEnd,
				DurationMinutes: durationMinutes,
			})
			if len(suggestions) >= p.MaxResults {
				break
			}
		}

		candidate, err = candidate.AddMinutes(p.GranularityMinutes)
		if err != nil {
			break
		}
	}

	return suggestions, nil
}

func overlapsAny(start, end types.TimeString, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.BlocksStaff() && b.Overlaps(start, end) {
			return true
		}
	}
	return false
}
