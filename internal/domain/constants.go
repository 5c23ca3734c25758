package domain

import "github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Slot grid defaults
const (
	DefaultGranularityMinutes = 15
	MinServiceMinutes         = 15 // shortest sellable service
)

// Suggestion engine defaults
const (
	DefaultBusinessStart         = types.TimeString("09:00")
	DefaultBusinessEnd           = types.TimeString("18:00")
	DefaultSuggestionGranularity = 15
	DefaultSuggestionMaxResults  = 5
)

// Input limits
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// AllowedGranularities are the slot widths the grid generator accepts;
// anything else falls back to DefaultGranularityMinutes
var AllowedGranularities = []int{5, 10, 15, 30, 45, 60}

// StaffBlockingStatuses are the statuses that count towards staff
// double-booking checks
var StaffBlockingStatuses = []BookingStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusInProgress,
}

// InactiveStatuses are the statuses that release a booking's time slot
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
	StatusNoShow,
}

// UnsettledPaymentStatuses trigger the unpaid-block policy
var UnsettledPaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPartial,
}

// IsValidGranularity reports whether minutes is an accepted slot width
func IsValidGranularity(minutes int) bool {
	for _, g := range AllowedGranularities {
		if g == minutes {
			return true
		}
	}
	return false
}

// ParseBookingStatus validates and converts a status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusScheduled, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return BookingStatus(s), true
	default:
		return "", false
	}
}

// ParsePaymentStatus validates and converts a payment status string
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPartial, PaymentPaid:
		return PaymentStatus(s), true
	default:
		return "", false
	}
}
