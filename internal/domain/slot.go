package domain

import "github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"

// SlotStatus is the resolved availability state of a single time slot
type SlotStatus string

const (
	SlotAvailable          SlotStatus = "available"
	SlotBooked             SlotStatus = "booked"
	SlotBookedContinuation SlotStatus = "booked_continuation"
	SlotBreak              SlotStatus = "break"
	SlotOffDuty            SlotStatus = "off_duty"
	SlotOutOfOffice        SlotStatus = "out_of_office"
	SlotAbsent             SlotStatus = "absent"
	SlotNotAvailable       SlotStatus = "not_available"
)

// TimeSlot is a fixed-width interval of a business day.
// Half-open: [Start, End).
type TimeSlot struct {
	Start           types.TimeString
	End             types.TimeString
	DurationMinutes int
}

// AvailabilitySlot is the resolved status of one slot for one staff member
// on one date. Computed on demand, never persisted.
type AvailabilitySlot struct {
	Slot   TimeSlot
	Status SlotStatus
	Reason string

	// Set for booked slots
	BookingID   *int64
	ServiceName *string
	ClientName  *string
	BookingEnd  *types.TimeString

	// Set for available slots: minutes left until shift end,
	// so callers can tell whether the shortest service still fits
	RemainingMinutes int
}

// IsBookable returns true if a new booking could start in this slot
func (s *AvailabilitySlot) IsBookable() bool {
	return s.Status == SlotAvailable
}
