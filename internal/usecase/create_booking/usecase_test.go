package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/integrations/directory"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/schedule"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/types"
)

type fakeRepo struct {
	created *domain.Booking
	nextID  int64
}

func (r *fakeRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.created = &created
	return &created, nil
}

type fakeDetector struct {
	violation      *schedule.ShiftViolation
	staffConflicts []*domain.Booking
	clientOverlaps []*domain.Booking
	unpaid         []*domain.Booking
}

func (d *fakeDetector) ValidateAgainstShift(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString) (*schedule.ShiftViolation, error) {
	return d.violation, nil
}

func (d *fakeDetector) CheckStaffConflicts(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString, _ *int64) ([]*domain.Booking, error) {
	return d.staffConflicts, nil
}

func (d *fakeDetector) CheckClientOverlaps(_ context.Context, _ int64, _ time.Time, _, _ types.TimeString) ([]*domain.Booking, error) {
	return d.clientOverlaps, nil
}

func (d *fakeDetector) CheckUnpaidBlock(_ context.Context, _ int64) ([]*domain.Booking, error) {
	return d.unpaid, nil
}

type fakeDirectory struct {
	staffErr error
	service  *directory.Service
}

func (d *fakeDirectory) GetStaff(_ context.Context, staffID int64) (*directory.Staff, error) {
	if d.staffErr != nil {
		return nil, d.staffErr
	}
	return &directory.Staff{ID: staffID, Name: "Anna", IsActive: true}, nil
}

func (d *fakeDirectory) GetCustomer(_ context.Context, customerID int64) (*directory.Customer, error) {
	return &directory.Customer{ID: customerID, Name: "Jane Smith"}, nil
}

func (d *fakeDirectory) GetService(_ context.Context, serviceID int64) (*directory.Service, error) {
	if d.service != nil {
		return d.service, nil
	}
	return &directory.Service{ID: serviceID, Name: "Swedish Massage", DurationMinutes: 60, Price: 80}, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeInvalidator struct {
	calls int
}

func (i *fakeInvalidator) Invalidate(_ context.Context, _ int64, _ time.Time) error {
	i.calls++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (t fixedTime) Now() time.Time { return t.now }

func newTestUseCase(repo *fakeRepo, detector *fakeDetector, dir *fakeDirectory, inv *fakeInvalidator) *UseCase {
	uc := NewUseCase(repo, detector, dir, fakeTxManager{}, inv, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		StaffID:   10,
		ClientID:  20,
		ServiceID: 30,
		Date:      time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		StartTime: types.MustTimeString("10:00"),
	}
}

func TestExecute_CreatesBookingWithServiceDuration(t *testing.T) {
	repo := &fakeRepo{nextID: 42}
	inv := &fakeInvalidator{}
	uc := newTestUseCase(repo, &fakeDetector{}, &fakeDirectory{}, inv)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime.String())
	assert.Equal(t, "11:00", resp.EndTime.String())
	assert.Equal(t, string(domain.StatusScheduled), resp.Status)
	assert.Equal(t, string(domain.PaymentPending), resp.Payment)
	assert.Equal(t, "Swedish Massage", resp.ServiceName)
	assert.Equal(t, "Jane Smith", resp.ClientName)
	assert.Equal(t, 1, inv.calls)
}

func TestExecute_ShortServiceClampedToMinimum(t *testing.T) {
	repo := &fakeRepo{nextID: 1}
	dir := &fakeDirectory{service: &directory.Service{ID: 30, Name: "Quick Touch-up", DurationMinutes: 5, Price: 10}}
	uc := newTestUseCase(repo, &fakeDetector{}, dir, &fakeInvalidator{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "10:15", resp.EndTime.String())
}

func TestExecute_ShiftViolationRejected(t *testing.T) {
	repo := &fakeRepo{nextID: 1}
	detector := &fakeDetector{
		violation: &schedule.ShiftViolation{
			Code:   schedule.ViolationOutsideShift,
			Reason: "Outside of shift hours (09:00-17:00)",
		},
	}
	inv := &fakeInvalidator{}
	uc := newTestUseCase(repo, detector, &fakeDirectory{}, inv)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrShiftViolation)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, "Outside of shift hours (09:00-17:00)", conflictErr.Reason)
	assert.Nil(t, repo.created)
	assert.Zero(t, inv.calls)
}

func TestExecute_StaffConflictCarriesBlockingBookings(t *testing.T) {
	blocking := &domain.Booking{ID: 7, StaffID: 10, Status: domain.StatusConfirmed}
	detector := &fakeDetector{staffConflicts: []*domain.Booking{blocking}}
	uc := newTestUseCase(&fakeRepo{nextID: 1}, detector, &fakeDirectory{}, &fakeInvalidator{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrStaffConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, int64(7), conflictErr.Conflicts[0].ID)
}

func TestExecute_UnpaidBookingBlocksAnyDate(t *testing.T) {
	// Долг двухмесячной давности блокирует бронирование на любую дату
	unpaid := &domain.Booking{
		ID:          3,
		ClientID:    20,
		BookingDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		Payment:     domain.PaymentPartial,
		Status:      domain.StatusCompleted,
	}
	detector := &fakeDetector{unpaid: []*domain.Booking{unpaid}}
	repo := &fakeRepo{nextID: 1}
	uc := newTestUseCase(repo, detector, &fakeDirectory{}, &fakeInvalidator{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrUnpaidBlock)
	assert.Nil(t, repo.created)
}

func TestExecute_ClientOverlapRejected(t *testing.T) {
	overlap := &domain.Booking{ID: 9, ClientID: 20, Status: domain.StatusScheduled}
	detector := &fakeDetector{clientOverlaps: []*domain.Booking{overlap}}
	uc := newTestUseCase(&fakeRepo{nextID: 1}, detector, &fakeDirectory{}, &fakeInvalidator{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrClientConflict)
}

func TestExecute_StaffNotFound(t *testing.T) {
	dir := &fakeDirectory{staffErr: directory.ErrStaffNotFound}
	uc := newTestUseCase(&fakeRepo{nextID: 1}, &fakeDetector{}, dir, &fakeInvalidator{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{nextID: 1}, &fakeDetector{}, &fakeDirectory{}, &fakeInvalidator{})

	req := validRequest()
	req.Date = time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero staff", func(r *Request) { r.StaffID = 0 }},
		{"negative client", func(r *Request) { r.ClientID = -1 }},
		{"zero service", func(r *Request) { r.ServiceID = 0 }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"empty start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "9:00" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
		})
	}
}
