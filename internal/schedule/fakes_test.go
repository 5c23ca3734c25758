package schedule

import (
	"context"
	"time"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/ptr"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

type fakeShiftRepo struct {
	shiftRange *domain.ShiftRange
	log        *domain.DailyShiftLog
}

func (f *fakeShiftRepo) GetRangeForDate(_ context.Context, _ int64, _ time.Time) (*domain.ShiftRange, error) {
	if f.shiftRange == nil {
		return nil, ErrShiftRangeNotFound
	}
	return f.shiftRange, nil
}

func (f *fakeShiftRepo) GetDailyLog(_ context.Context, _ int64, _ time.Time) (*domain.DailyShiftLog, error) {
	if f.log == nil {
		return nil, ErrDailyLogNotFound
	}
	return f.log, nil
}

type fakeBookingRepo struct {
	staffBookings  []*domain.Booking
	clientBookings []*domain.Booking
	unsettled      []*domain.Booking
}

func (f *fakeBookingRepo) GetActiveByStaffAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.staffBookings, nil
}

func (f *fakeBookingRepo) GetActiveByClientAndDate(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.clientBookings, nil
}

func (f *fakeBookingRepo) GetUnsettledByClient(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return f.unsettled, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func standardShift() (*fakeShiftRepo, *domain.DailyShiftLog) {
	log := &domain.DailyShiftLog{
		ID:           1,
		ShiftRangeID: 1,
		LogDate:      date(2025, 6, 2),
		ShiftStart:   types.MustTimeString("09:00"),
		ShiftEnd:     types.MustTimeString("17:00"),
		Status:       domain.ShiftScheduled,
	}

	repo := &fakeShiftRepo{
		shiftRange: &domain.ShiftRange{
			ID:       1,
			StaffID:  10,
			FromDate: date(2025, 6, 1),
			ToDate:   date(2025, 6, 30),
		},
		log: log,
	}

	return repo, log
}

func withBreak(log *domain.DailyShiftLog, start, end string) {
	log.BreakStart = ptr.Ptr(types.MustTimeString(start))
	log.BreakEnd = ptr.Ptr(types.MustTimeString(end))
}

func booking(id int64, start, end string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		StaffID:     10,
		ClientID:    20,
		ServiceID:   30,
		BookingDate: date(2025, 6, 2),
		StartTime:   types.MustTimeString(start),
		EndTime:     types.MustTimeString(end),
		Status:      status,
		Payment:     domain.PaymentPaid,
		ServiceName: "Swedish Massage",
		ClientName:  "Jane Smith",
	}
}
