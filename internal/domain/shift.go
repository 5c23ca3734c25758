package domain

import (
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

// ShiftStatus represents the state of a staff member's day
type ShiftStatus string

const (
	ShiftScheduled ShiftStatus = "scheduled"
	ShiftAbsent    ShiftStatus = "absent"
	ShiftHoliday   ShiftStatus = "holiday"
	ShiftCompleted ShiftStatus = "completed"
)

// ShiftRange is a staff member's assigned working date span.
// Written by the shift-assignment workflow, read-only here.
type ShiftRange struct {
	ID        int64
	StaffID   int64
	FromDate  time.Time
	ToDate    time.Time
	CreatedAt time.Time
}

// Contains reports whether the range covers the given date (inclusive)
func (r *ShiftRange) Contains(date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(r.FromDate)) && !d.After(DateOnly(r.ToDate))
}

// DailyShiftLog holds the concrete working hours, break and out-of-office
// windows for one staff member on one calendar date
type DailyShiftLog struct {
	ID           int64
	ShiftRangeID int64
	LogDate      time.Time
	ShiftStart   types.TimeString
	ShiftEnd     types.TimeString

	BreakStart *types.TimeString
	BreakEnd   *types.TimeString

	OutOfOfficeStart  *types.TimeString
	OutOfOfficeEnd    *types.TimeString
	OutOfOfficeReason *string

	Status ShiftStatus
}

// IsWorkable returns true if the staff member works on this date at all
func (l *DailyShiftLog) IsWorkable() bool {
	return l.Status != ShiftAbsent && l.Status != ShiftHoliday
}

// HasBreak returns true if both break boundaries are set
func (l *DailyShiftLog) HasBreak() bool {
	return l.BreakStart != nil && l.BreakEnd != nil
}

// HasOutOfOffice returns true if both out-of-office boundaries are set
func (l *DailyShiftLog) HasOutOfOffice() bool {
	return l.OutOfOfficeStart != nil && l.OutOfOfficeEnd != nil
}

// DateOnly truncates a timestamp to its calendar date
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
