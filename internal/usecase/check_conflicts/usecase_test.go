package check_conflicts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/schedule"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/ptr"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

type fakeDetector struct {
	violation  *schedule.ShiftViolation
	conflicts  []*domain.Booking
	gotExclude *int64
}

func (d *fakeDetector) ValidateAgainstShift(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString) (*schedule.ShiftViolation, error) {
	return d.violation, nil
}

func (d *fakeDetector) CheckStaffConflicts(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString, excludeBookingID *int64) ([]*domain.Booking, error) {
	d.gotExclude = excludeBookingID
	return d.conflicts, nil
}

type fakeSuggester struct {
	windows []domain.TimeSlot
	calls   int
}

func (s *fakeSuggester) Suggest(_ context.Context, _ int64, _ time.Time, _ int, _ schedule.SuggestParams) ([]domain.TimeSlot, error) {
	s.calls++
	return s.windows, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRequest() *Request {
	return &Request{
		StaffID:         10,
		Date:            time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:       types.MustTimeString("10:00"),
		DurationMinutes: 60,
	}
}

func window(start, end string) domain.TimeSlot {
	return domain.TimeSlot{
		Start:           types.MustTimeString(start),
		End:             types.MustTimeString(end),
		DurationMinutes: 60,
	}
}

func TestExecute_CleanCandidate(t *testing.T) {
	suggester := &fakeSuggester{}
	uc := NewUseCase(&fakeDetector{}, suggester, schedule.SuggestParams{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.False(t, resp.HasConflicts)
	assert.Nil(t, resp.ShiftViolation)
	assert.Empty(t, resp.Conflicts)
	assert.Zero(t, suggester.calls, "no suggestions requested for a clean candidate")
}

func TestExecute_ShiftViolationTriggersSuggestions(t *testing.T) {
	detector := &fakeDetector{
		violation: &schedule.ShiftViolation{
			Code:   schedule.ViolationBreak,
			Reason: "Overlaps break time (13:00-14:00)",
		},
	}
	suggester := &fakeSuggester{windows: []domain.TimeSlot{window("09:00", "10:00"), window("14:00", "15:00")}}
	uc := NewUseCase(detector, suggester, schedule.SuggestParams{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, resp.HasConflicts)
	require.NotNil(t, resp.ShiftViolation)
	assert.Equal(t, "break_overlap", resp.ShiftViolation.Code)
	assert.Equal(t, "Overlaps break time (13:00-14:00)", resp.ShiftViolation.Reason)
	require.Len(t, resp.Suggestions, 2)
	assert.Equal(t, "09:00", resp.Suggestions[0].Start.String())
}

func TestExecute_StaffConflictsReported(t *testing.T) {
	blocking := &domain.Booking{ID: 7, Status: domain.StatusConfirmed}
	detector := &fakeDetector{conflicts: []*domain.Booking{blocking}}
	suggester := &fakeSuggester{windows: []domain.TimeSlot{window("11:00", "12:00")}}
	uc := NewUseCase(detector, suggester, schedule.SuggestParams{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, resp.HasConflicts)
	assert.Nil(t, resp.ShiftViolation)
	require.Len(t, resp.Conflicts, 1)
	assert.Equal(t, int64(7), resp.Conflicts[0].ID)
	assert.Equal(t, 1, suggester.calls)
}

func TestExecute_ExcludeBookingIDPassedThrough(t *testing.T) {
	detector := &fakeDetector{}
	uc := NewUseCase(detector, &fakeSuggester{}, schedule.SuggestParams{}, nopLogger{})

	req := testRequest()
	req.ExcludeBookingID = ptr.Ptr(int64(55))

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, detector.gotExclude)
	assert.Equal(t, int64(55), *detector.gotExclude)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeDetector{}, &fakeSuggester{}, schedule.SuggestParams{}, nopLogger{})

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero staff", func(r *Request) { r.StaffID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"zero duration", func(r *Request) { r.DurationMinutes = 0 }},
		{"negative exclude id", func(r *Request) { r.ExcludeBookingID = ptr.Ptr(int64(-1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
