package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

func TestSuggest_SkipsOccupiedWindows(t *testing.T) {
	// Active booking 10:00-11:00; 60-minute suggestions must avoid it
	suggester := NewSuggester(&fakeBookingRepo{staffBookings: []*domain.Booking{
		booking(1, "10:00", "11:00", domain.StatusConfirmed),
	}})

	suggestions, err := suggester.Suggest(context.Background(), 10, date(2025, 6, 2), 60, SuggestParams{})
	require.NoError(t, err)
	require.Len(t, suggestions, 5)

	assert.Equal(t, types.TimeString("09:00"), suggestions[0].Start)
	assert.Equal(t, types.TimeString("11:00"), suggestions[1].Start)
	assert.Equal(t, types.TimeString("11:15"), suggestions[2].Start)

	for _, s := range suggestions {
		assert.Equal(t, 60, s.DurationMinutes)
		assert.False(t, s.Start.IsBefore(types.TimeString("09:00")))
		assert.False(t, s.End.IsAfter(types.TimeString("18:00")))
		// Never overlapping the existing booking
		assert.False(t, s.Start.IsBefore(types.TimeString("11:00")) && s.End.IsAfter(types.TimeString("10:00")),
			"suggestion %s-%s overlaps booking", s.Start, s.End)
	}

	// Chronological order
	for i := 1; i < len(suggestions); i++ {
		assert.True(t, suggestions[i-1].Start.IsBefore(suggestions[i].Start))
	}
}

func TestSuggest_RespectsMaxResults(t *testing.T) {
	suggester := NewSuggester(&fakeBookingRepo{})

	suggestions, err := suggester.Suggest(context.Background(), 10, date(2025, 6, 2), 30,
		SuggestParams{MaxResults: 3})
	require.NoError(t, err)
	assert.Len(t, suggestions, 3)
}

func TestSuggest_ExhaustedWindow(t *testing.T) {
	// The whole business day is occupied
	suggester := NewSuggester(&fakeBookingRepo{staffBookings: []*domain.Booking{
		booking(1, "09:00", "18:00", domain.StatusConfirmed),
	}})

	suggestions, err := suggester.Suggest(context.Background(), 10, date(2025, 6, 2), 30, SuggestParams{})
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestSuggest_CandidateMustFitBeforeBusinessEnd(t *testing.T) {
	suggester := NewSuggester(&fakeBookingRepo{})

	suggestions, err := suggester.Suggest(context.Background(), 10, date(2025, 6, 2), 120,
		SuggestParams{BusinessStart: "16:00", BusinessEnd: "18:00", MaxResults: 10})
	require.NoError(t, err)
	require.Len(t, suggestions, 1)
	assert.Equal(t, types.TimeString("16:00"), suggestions[0].Start)
	assert.Equal(t, types.TimeString("18:00"), suggestions[0].End)
}

func TestSuggest_InvalidDuration(t *testing.T) {
	suggester := NewSuggester(&fakeBookingRepo{})

	_, err := suggester.Suggest(context.Background(), 10, date(2025, 6, 2), 0, SuggestParams{})
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestSuggest_CancelledBookingsIgnored(t *testing.T) {
	suggester := NewSuggester(&fakeBookingRepo{staffBookings: []*domain.Booking{
		booking(1, "09:00", "18:00", domain.StatusCancelled),
	}})

	suggestions, err := suggester.Suggest(context.Background(), 10, date(2025, 6, 2), 60, SuggestParams{})
	require.NoError(t, err)
	assert.Len(t, suggestions, 5)
	assert.Equal(t, types.TimeString("09:00"), suggestions[0].Start)
}
