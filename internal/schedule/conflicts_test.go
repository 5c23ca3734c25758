package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/ptr"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

func TestValidateAgainstShift_NoShift(t *testing.T) {
	detector := NewDetector(&fakeShiftRepo{}, &fakeBookingRepo{})

	violation, err := detector.ValidateAgainstShift(context.Background(), 10, date(2025, 6, 2),
		types.MustTimeString("10:00"), types.MustTimeString("11:00"))
	require.NoError(t, err)
	require.NotNil(t, violation)
	assert.Equal(t, ViolationNoShift, violation.Code)
}

func TestValidateAgainstShift_AbsentAndHoliday(t *testing.T) {
	for _, status := range []domain.ShiftStatus{domain.ShiftAbsent, domain.ShiftHoliday} {
		shiftRepo, log := standardShift()
		log.Status = status
		detector := NewDetector(shiftRepo, &fakeBookingRepo{})

		violation, err := detector.ValidateAgainstShift(context.Background(), 10, date(2025, 6, 2),
			types.MustTimeString("10:00"), types.MustTimeString("11:00"))
		require.NoError(t, err)
		require.NotNil(t, violation, "status %s", status)
		assert.Equal(t, ViolationAbsent, violation.Code)
	}
}

func TestValidateAgainstShift_OutsideShiftHours(t *testing.T) {
	shiftRepo, _ := standardShift() // 09:00-17:00
	detector := NewDetector(shiftRepo, &fakeBookingRepo{})

	cases := []struct{ start, end string }{
		{"08:00", "09:00"},
		{"08:30", "09:30"},
		{"16:30", "17:30"},
		{"17:00", "18:00"},
	}
	for _, tc := range cases {
		violation, err := detector.ValidateAgainstShift(context.Background(), 10, date(2025, 6, 2),
			types.MustTimeString(tc.start), types.MustTimeString(tc.end))
		require.NoError(t, err)
		require.NotNil(t, violation, "%s-%s", tc.start, tc.end)
		assert.Equal(t, ViolationOutsideShift, violation.Code)
		assert.Equal(t, "Outside of shift hours (09:00-17:00)", violation.Reason)
	}
}

func TestValidateAgainstShift_BreakOverlap(t *testing.T) {
	shiftRepo, log := standardShift()
	withBreak(log, "13:00", "14:00")
	detector := NewDetector(shiftRepo, &fakeBookingRepo{})

	// Booking 13:30-14:00 is rejected with a break-time reason
	violation, err := detector.ValidateAgainstShift(context.Background(), 10, date(2025, 6, 2),
		types.MustTimeString("13:30"), types.MustTimeString("14:00"))
	require.NoError(t, err)
	require.NotNil(t, violation)
	assert.Equal(t, ViolationBreak, violation.Code)
	assert.Equal(t, "Overlaps break time (13:00-14:00)", violation.Reason)

	// Touching the break boundary is fine
	violation, err = detector.ValidateAgainstShift(context.Background(), 10, date(2025, 6, 2),
		types.MustTimeString("14:00"), types.MustTimeString("15:00"))
	require.NoError(t, err)
	assert.Nil(t, violation)
}

func TestValidateAgainstShift_OutOfOffice(t *testing.T) {
	shiftRepo, log := standardShift()
	log.OutOfOfficeStart = ptr.Ptr(types.MustTimeString("15:00"))
	log.OutOfOfficeEnd = ptr.Ptr(types.MustTimeString("16:00"))
	log.OutOfOfficeReason = ptr.Ptr("Training")
	detector := NewDetector(shiftRepo, &fakeBookingRepo{})

	violation, err := detector.ValidateAgainstShift(context.Background(), 10, date(2025, 6, 2),
		types.MustTimeString("15:30"), types.MustTimeString("16:30"))
	require.NoError(t, err)
	require.NotNil(t, violation)
	assert.Equal(t, ViolationOutOfOffice, violation.Code)
	assert.Contains(t, violation.Reason, "Training")
}

func TestValidateAgainstShift_ValidInterval(t *testing.T) {
	shiftRepo, log := standardShift()
	withBreak(log, "13:00", "14:00")
	detector := NewDetector(shiftRepo, &fakeBookingRepo{})

	violation, err := detector.ValidateAgainstShift(context.Background(), 10, date(2025, 6, 2),
		types.MustTimeString("10:00"), types.MustTimeString("11:00"))
	require.NoError(t, err)
	assert.Nil(t, violation)
}

func TestCheckStaffConflicts_OverlapEquivalence(t *testing.T) {
	existing := booking(1, "10:00", "11:00", domain.StatusConfirmed)
	detector := NewDetector(&fakeShiftRepo{}, &fakeBookingRepo{
		staffBookings: []*domain.Booking{existing},
	})

	cases := []struct {
		start, end string
		conflicts  bool
	}{
		{"10:30", "11:30", true},  // partial overlap from the right
		{"09:30", "10:30", true},  // partial overlap from the left
		{"10:00", "11:00", true},  // exact match
		{"10:15", "10:45", true},  // fully inside
		{"09:00", "12:00", true},  // fully covers
		{"09:00", "10:00", false}, // touches start
		{"11:00", "12:00", false}, // touches end
		{"08:00", "09:00", false}, // disjoint before
		{"12:00", "13:00", false}, // disjoint after
	}

	for _, tc := range cases {
		conflicts, err := detector.CheckStaffConflicts(context.Background(), 10, date(2025, 6, 2),
			types.MustTimeString(tc.start), types.MustTimeString(tc.end), nil)
		require.NoError(t, err)
		if tc.conflicts {
			require.Len(t, conflicts, 1, "%s-%s", tc.start, tc.end)
			assert.Equal(t, existing.ID, conflicts[0].ID)
		} else {
			assert.Empty(t, conflicts, "%s-%s", tc.start, tc.end)
		}
	}
}

func TestCheckStaffConflicts_ExcludesOwnBookingOnReschedule(t *testing.T) {
	own := booking(5, "10:00", "11:00", domain.StatusConfirmed)
	detector := NewDetector(&fakeShiftRepo{}, &fakeBookingRepo{
		staffBookings: []*domain.Booking{own},
	})

	conflicts, err := detector.CheckStaffConflicts(context.Background(), 10, date(2025, 6, 2),
		types.MustTimeString("10:30"), types.MustTimeString("11:30"), ptr.Ptr(int64(5)))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckStaffConflicts_CompletedBookingDoesNotBlock(t *testing.T) {
	done := booking(9, "10:00", "11:00", domain.StatusCompleted)
	detector := NewDetector(&fakeShiftRepo{}, &fakeBookingRepo{
		staffBookings: []*domain.Booking{done},
	})

	conflicts, err := detector.CheckStaffConflicts(context.Background(), 10, date(2025, 6, 2),
		types.MustTimeString("10:00"), types.MustTimeString("11:00"), nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCheckUnpaidBlock_BlocksRegardlessOfDate(t *testing.T) {
	// Pending payment from 2024-01-01 blocks a 2025-06-01 request entirely
	unpaid := booking(3, "10:00", "11:00", domain.StatusCompleted)
	unpaid.BookingDate = date(2024, 1, 1)
	unpaid.Payment = domain.PaymentPending

	detector := NewDetector(&fakeShiftRepo{}, &fakeBookingRepo{
		unsettled: []*domain.Booking{unpaid},
	})

	blocking, err := detector.CheckUnpaidBlock(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, blocking, 1)
	assert.Equal(t, int64(3), blocking[0].ID)
	assert.Equal(t, date(2024, 1, 1), blocking[0].BookingDate)

	// And the combined client check reports it too, with no time overlap at all
	conflicts, err := detector.CheckClientConflicts(context.Background(), 20, date(2025, 6, 1),
		types.MustTimeString("09:00"), types.MustTimeString("10:00"))
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(3), conflicts[0].ID)
}

func TestCheckUnpaidBlock_CancelledAndNoShowExcluded(t *testing.T) {
	cancelled := booking(4, "10:00", "11:00", domain.StatusCancelled)
	cancelled.Payment = domain.PaymentPending
	noShow := booking(5, "12:00", "13:00", domain.StatusNoShow)
	noShow.Payment = domain.PaymentPartial

	detector := NewDetector(&fakeShiftRepo{}, &fakeBookingRepo{
		unsettled: []*domain.Booking{cancelled, noShow},
	})

	blocking, err := detector.CheckUnpaidBlock(context.Background(), 20)
	require.NoError(t, err)
	assert.Empty(t, blocking)
}

func TestCheckClientConflicts_SameDayOverlapAndDeduplication(t *testing.T) {
	overlapping := booking(6, "10:00", "11:00", domain.StatusScheduled)
	overlapping.Payment = domain.PaymentPending // matches both rules, reported once

	detector := NewDetector(&fakeShiftRepo{}, &fakeBookingRepo{
		clientBookings: []*domain.Booking{overlapping},
		unsettled:      []*domain.Booking{overlapping},
	})

	conflicts, err := detector.CheckClientConflicts(context.Background(), 20, date(2025, 6, 2),
		types.MustTimeString("10:30"), types.MustTimeString("11:30"))
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}
