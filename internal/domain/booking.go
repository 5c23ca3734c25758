package domain

import (
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	StatusScheduled  BookingStatus = "scheduled"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusNoShow     BookingStatus = "no_show"
)

// PaymentStatus represents the settlement state of a booking
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking represents a client appointment with a staff member
type Booking struct {
	ID          int64
	StaffID     int64
	ClientID    int64
	ServiceID   int64
	BookingDate time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	Status      BookingStatus
	Payment     PaymentStatus

	// Denormalized data for history and grid rendering
	ServiceName  string
	ServicePrice float64
	ClientName   string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time slot.
// Cancelled and no-show bookings release the slot.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// BlocksStaff returns true if the booking participates in staff
// double-booking checks
func (b *Booking) BlocksStaff() bool {
	return b.Status == StatusScheduled || b.Status == StatusConfirmed || b.Status == StatusInProgress
}

// IsUnsettled returns true if the booking has unresolved payment.
// Any unsettled booking blocks the client from making new bookings.
func (b *Booking) IsUnsettled() bool {
	if b.Status == StatusCancelled || b.Status == StatusNoShow {
		return false
	}
	return b.Payment == PaymentPending || b.Payment == PaymentPartial
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusScheduled || b.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusScheduled || b.Status == StatusConfirmed
}

// Overlaps reports whether [start, end) intersects the booking interval.
// Half-open comparison: touching boundaries do not overlap.
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// StaffBookingsFilter filters staff booking history listings
type StaffBookingsFilter struct {
	StaffID         int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool
}
