package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/infra/storage/booking"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/integrations/directory"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/schedule"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/ptr"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

type fakeRepo struct {
	booking     *domain.Booking
	rescheduled *domain.Booking
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.booking == nil || r.booking.ID != id {
		return nil, booking.ErrBookingNotFound
	}
	copied := *r.booking
	return &copied, nil
}

func (r *fakeRepo) Reschedule(_ context.Context, b *domain.Booking) error {
	copied := *b
	r.rescheduled = &copied
	return nil
}

type fakeDetector struct {
	violation  *schedule.ShiftViolation
	conflicts  []*domain.Booking
	overlaps   []*domain.Booking
	gotExclude *int64
}

func (d *fakeDetector) ValidateAgainstShift(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString) (*schedule.ShiftViolation, error) {
	return d.violation, nil
}

func (d *fakeDetector) CheckStaffConflicts(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString, excludeBookingID *int64) ([]*domain.Booking, error) {
	d.gotExclude = excludeBookingID
	return d.conflicts, nil
}

func (d *fakeDetector) CheckClientOverlaps(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString) ([]*domain.Booking, error) {
	return d.overlaps, nil
}

type fakeDirectory struct{}

func (fakeDirectory) GetStaff(_ context.Context, staffID int64) (*directory.Staff, error) {
	return &directory.Staff{ID: staffID, Name: "Olga", IsActive: true}, nil
}

func (fakeDirectory) GetService(_ context.Context, serviceID int64) (*directory.Service, error) {
	return &directory.Service{ID: serviceID, Name: "Hot Stone Massage", DurationMinutes: 90, Price: 120}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeInvalidator struct {
	calls []int64
}

func (i *fakeInvalidator) Invalidate(_ context.Context, staffID int64, _ time.Time) error {
	i.calls = append(i.calls, staffID)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (t fixedTime) Now() time.Time { return t.now }

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           5,
		StaffID:      10,
		ClientID:     20,
		ServiceID:    30,
		BookingDate:  time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime:    types.MustTimeString("10:00"),
		EndTime:      types.MustTimeString("11:00"),
		Status:       domain.StatusScheduled,
		Payment:      domain.PaymentPending,
		ServiceName:  "Swedish Massage",
		ServicePrice: 80,
		ClientName:   "Jane Smith",
	}
}

func newTestUseCase(repo *fakeRepo, detector *fakeDetector, inv *fakeInvalidator) *UseCase {
	uc := NewUseCase(repo, detector, fakeDirectory{}, fakeTxManager{}, inv, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		BookingID: 5,
		Date:      time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		StartTime: types.MustTimeString("14:00"),
	}
}

func TestExecute_MovesBookingKeepingDuration(t *testing.T) {
	repo := &fakeRepo{booking: existingBooking()}
	detector := &fakeDetector{}
	inv := &fakeInvalidator{}
	uc := newTestUseCase(repo, detector, inv)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "14:00", resp.StartTime.String())
	assert.Equal(t, "15:00", resp.EndTime.String(), "duration of the original service is preserved")
	assert.Equal(t, int64(10), resp.StaffID)
	assert.Equal(t, "Swedish Massage", resp.ServiceName)

	// Собственное бронирование исключено из проверки конфликтов
	require.NotNil(t, detector.gotExclude)
	assert.Equal(t, int64(5), *detector.gotExclude)
}

func TestExecute_ServiceChangeUpdatesDurationAndPrice(t *testing.T) {
	repo := &fakeRepo{booking: existingBooking()}
	uc := newTestUseCase(repo, &fakeDetector{}, &fakeInvalidator{})

	req := validRequest()
	req.ServiceID = ptr.Ptr(int64(31))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "15:30", resp.EndTime.String())
	assert.Equal(t, "Hot Stone Massage", resp.ServiceName)
	assert.Equal(t, 120.0, resp.ServicePrice)
}

func TestExecute_StaffChangeInvalidatesBothStaff(t *testing.T) {
	repo := &fakeRepo{booking: existingBooking()}
	inv := &fakeInvalidator{}
	uc := newTestUseCase(repo, &fakeDetector{}, inv)

	req := validRequest()
	req.StaffID = ptr.Ptr(int64(11))

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.StaffID)
	assert.Equal(t, []int64{10, 11}, inv.calls)
}

func TestExecute_CompletedBookingCannotBeRescheduled(t *testing.T) {
	b := existingBooking()
	b.Status = domain.StatusCompleted
	repo := &fakeRepo{booking: b}
	uc := newTestUseCase(repo, &fakeDetector{}, &fakeInvalidator{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrCannotReschedule)
	assert.Nil(t, repo.rescheduled)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeDetector{}, &fakeInvalidator{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_OwnBookingExcludedFromClientOverlaps(t *testing.T) {
	// Детектор вернул только само переносимое бронирование: это не конфликт
	self := existingBooking()
	repo := &fakeRepo{booking: existingBooking()}
	detector := &fakeDetector{overlaps: []*domain.Booking{self}}
	uc := newTestUseCase(repo, detector, &fakeInvalidator{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_StaffConflictRejected(t *testing.T) {
	blocking := &domain.Booking{ID: 99, StaffID: 10, Status: domain.StatusConfirmed}
	repo := &fakeRepo{booking: existingBooking()}
	detector := &fakeDetector{conflicts: []*domain.Booking{blocking}}
	uc := newTestUseCase(repo, detector, &fakeInvalidator{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrStaffConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, int64(99), conflictErr.Conflicts[0].ID)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{booking: existingBooking()}, &fakeDetector{}, &fakeInvalidator{})

	req := validRequest()
	req.Date = time.Date(2025, 5, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
}
