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

func slotStatuses(result []domain.AvailabilitySlot) map[types.TimeString]domain.SlotStatus {
	statuses := make(map[types.TimeString]domain.SlotStatus, len(result))
	for _, s := range result {
		statuses[s.Slot.Start] = s.Status
	}
	return statuses
}

func TestResolver_NoShiftData_AllSlotsNotAvailable(t *testing.T) {
	resolver := NewResolver(&fakeShiftRepo{}, &fakeBookingRepo{})
	slots := GenerateSlots(9, 17, 15)

	result, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), slots)
	require.NoError(t, err)
	require.Len(t, result, len(slots))

	for _, s := range result {
		assert.Equal(t, domain.SlotNotAvailable, s.Status)
		assert.Equal(t, "No shift assigned for this date", s.Reason)
	}
}

func TestResolver_NoDailyLog_AllSlotsNotAvailable(t *testing.T) {
	shiftRepo, _ := standardShift()
	shiftRepo.log = nil
	resolver := NewResolver(shiftRepo, &fakeBookingRepo{})

	result, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), GenerateSlots(9, 17, 15))
	require.NoError(t, err)

	for _, s := range result {
		assert.Equal(t, domain.SlotNotAvailable, s.Status)
	}
}

func TestResolver_AbsentStaff(t *testing.T) {
	shiftRepo, log := standardShift()
	log.Status = domain.ShiftAbsent
	resolver := NewResolver(shiftRepo, &fakeBookingRepo{})

	result, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), GenerateSlots(9, 17, 15))
	require.NoError(t, err)

	for _, s := range result {
		assert.Equal(t, domain.SlotAbsent, s.Status)
		assert.Equal(t, "Staff is absent on this date", s.Reason)
	}
}

func TestResolver_OffDutyOutsideShiftHours(t *testing.T) {
	shiftRepo, _ := standardShift() // shift 09:00-17:00
	resolver := NewResolver(shiftRepo, &fakeBookingRepo{})

	result, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), GenerateSlots(8, 18, 30))
	require.NoError(t, err)

	statuses := slotStatuses(result)
	assert.Equal(t, domain.SlotOffDuty, statuses["08:00"])
	assert.Equal(t, domain.SlotOffDuty, statuses["08:30"])
	assert.Equal(t, domain.SlotAvailable, statuses["09:00"])
	assert.Equal(t, domain.SlotAvailable, statuses["16:30"])
	assert.Equal(t, domain.SlotOffDuty, statuses["17:00"])
	assert.Equal(t, domain.SlotOffDuty, statuses["17:30"])
}

func TestResolver_BreakWinsOverBooking(t *testing.T) {
	shiftRepo, log := standardShift()
	withBreak(log, "13:00", "14:00")

	// Booking right inside the break window: break still wins
	bookings := &fakeBookingRepo{staffBookings: []*domain.Booking{
		booking(1, "13:00", "13:30", domain.StatusConfirmed),
	}}
	resolver := NewResolver(shiftRepo, bookings)

	result, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), GenerateSlots(9, 17, 30))
	require.NoError(t, err)

	statuses := slotStatuses(result)
	assert.Equal(t, domain.SlotBreak, statuses["13:00"])
	assert.Equal(t, domain.SlotBreak, statuses["13:30"])
	assert.Equal(t, domain.SlotAvailable, statuses["14:00"])
}

func TestResolver_BreakWithoutBookings(t *testing.T) {
	shiftRepo, log := standardShift()
	withBreak(log, "13:00", "14:00")
	resolver := NewResolver(shiftRepo, &fakeBookingRepo{})

	result, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), GenerateSlots(9, 17, 15))
	require.NoError(t, err)

	statuses := slotStatuses(result)
	for _, start := range []types.TimeString{"13:00", "13:15", "13:30", "13:45"} {
		assert.Equal(t, domain.SlotBreak, statuses[start], "slot %s", start)
	}
}

func TestResolver_OutOfOfficeWindow(t *testing.T) {
	shiftRepo, log := standardShift()
	log.OutOfOfficeStart = ptr.Ptr(types.MustTimeString("15:00"))
	log.OutOfOfficeEnd = ptr.Ptr(types.MustTimeString("16:00"))
	log.OutOfOfficeReason = ptr.Ptr("Supplier visit")
	resolver := NewResolver(shiftRepo, &fakeBookingRepo{})

	result, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), GenerateSlots(9, 17, 30))
	require.NoError(t, err)

	for _, s := range result {
		if s.Slot.Start == "15:00" || s.Slot.Start == "15:30" {
			assert.Equal(t, domain.SlotOutOfOffice, s.Status)
			assert.Contains(t, s.Reason, "Supplier visit")
		}
	}
}

func TestResolver_BookedAndContinuation(t *testing.T) {
	shiftRepo, _ := standardShift()
	bookings := &fakeBookingRepo{staffBookings: []*domain.Booking{
		booking(7, "10:00", "11:00", domain.StatusConfirmed),
	}}
	resolver := NewResolver(shiftRepo, bookings)

	result, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), GenerateSlots(9, 17, 15))
	require.NoError(t, err)

	statuses := slotStatuses(result)
	assert.Equal(t, domain.SlotBooked, statuses["10:00"])
	assert.Equal(t, domain.SlotBookedContinuation, statuses["10:15"])
	assert.Equal(t, domain.SlotBookedContinuation, statuses["10:30"])
	assert.Equal(t, domain.SlotBookedContinuation, statuses["10:45"])
	assert.Equal(t, domain.SlotAvailable, statuses["11:00"])

	// First slot carries full booking detail
	for _, s := range result {
		if s.Slot.Start == "10:00" {
			require.NotNil(t, s.BookingID)
			assert.Equal(t, int64(7), *s.BookingID)
			require.NotNil(t, s.ServiceName)
			assert.Equal(t, "Swedish Massage", *s.ServiceName)
			require.NotNil(t, s.BookingEnd)
			assert.Equal(t, types.TimeString("11:00"), *s.BookingEnd)
		}
	}
}

func TestResolver_CancelledBookingDoesNotOccupySlot(t *testing.T) {
	shiftRepo, _ := standardShift()
	bookings := &fakeBookingRepo{staffBookings: []*domain.Booking{
		booking(7, "10:00", "11:00", domain.StatusCancelled),
	}}
	resolver := NewResolver(shiftRepo, bookings)

	result, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), GenerateSlots(9, 17, 15))
	require.NoError(t, err)

	assert.Equal(t, domain.SlotAvailable, slotStatuses(result)["10:00"])
}

func TestResolver_AvailableSlotReportsRemainingMinutes(t *testing.T) {
	shiftRepo, _ := standardShift() // shift ends 17:00
	resolver := NewResolver(shiftRepo, &fakeBookingRepo{})

	result, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), GenerateSlots(9, 17, 15))
	require.NoError(t, err)

	for _, s := range result {
		switch s.Slot.Start {
		case "09:00":
			assert.Equal(t, 480, s.RemainingMinutes)
		case "16:45":
			assert.Equal(t, 15, s.RemainingMinutes)
		}
	}
}

func TestResolver_Idempotent(t *testing.T) {
	shiftRepo, log := standardShift()
	withBreak(log, "13:00", "14:00")
	bookings := &fakeBookingRepo{staffBookings: []*domain.Booking{
		booking(1, "10:00", "11:00", domain.StatusConfirmed),
		booking(2, "15:00", "15:45", domain.StatusScheduled),
	}}
	resolver := NewResolver(shiftRepo, bookings)
	slots := GenerateSlots(9, 17, 15)

	first, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), slots)
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), 10, date(2025, 6, 2), slots)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
