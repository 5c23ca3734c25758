package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/infra/cache"
)

type fakeResolver struct {
	calls    int
	gotSlots []domain.TimeSlot
	resolved []domain.AvailabilitySlot
}

func (r *fakeResolver) Resolve(_ context.Context, _ int64, _ time.Time, slots []domain.TimeSlot) ([]domain.AvailabilitySlot, error) {
	r.calls++
	r.gotSlots = slots
	if r.resolved != nil {
		return r.resolved, nil
	}
	out := make([]domain.AvailabilitySlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, domain.AvailabilitySlot{Slot: s, Status: domain.SlotAvailable})
	}
	return out, nil
}

type memoryCache struct {
	stored map[string][]domain.AvailabilitySlot
}

func newMemoryCache() *memoryCache {
	return &memoryCache{stored: make(map[string][]domain.AvailabilitySlot)}
}

func (c *memoryCache) key(staffID int64, date time.Time, granularity int) string {
	return date.Format(domain.DateFormat)
}

func (c *memoryCache) Get(_ context.Context, staffID int64, date time.Time, granularity int) ([]domain.AvailabilitySlot, error) {
	slots, ok := c.stored[c.key(staffID, date, granularity)]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return slots, nil
}

func (c *memoryCache) Set(_ context.Context, staffID int64, date time.Time, granularity int, slots []domain.AvailabilitySlot) error {
	c.stored[c.key(staffID, date, granularity)] = slots
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testRequest() *Request {
	return &Request{
		StaffID:      10,
		Date:         time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		SlotDuration: 15,
	}
}

func TestExecute_ResolvesGridOverBusinessHours(t *testing.T) {
	resolver := &fakeResolver{}
	uc := NewUseCase(resolver, cache.Noop{}, 9, 18, nopLogger{})

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// 9 часов по 4 слота в час
	assert.Len(t, resp.Slots, 36)
	assert.Equal(t, "09:00", resolver.gotSlots[0].Start.String())
	assert.Equal(t, "18:00", resolver.gotSlots[len(resolver.gotSlots)-1].End.String())
	assert.Equal(t, 15, resp.SlotDuration)
}

func TestExecute_InvalidGranularityFallsBack(t *testing.T) {
	resolver := &fakeResolver{}
	uc := NewUseCase(resolver, cache.Noop{}, 9, 18, nopLogger{})

	req := testRequest()
	req.SlotDuration = 7

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultGranularityMinutes, resp.SlotDuration)
	assert.Len(t, resp.Slots, 36)
}

func TestExecute_SecondCallServedFromCache(t *testing.T) {
	resolver := &fakeResolver{}
	uc := NewUseCase(resolver, newMemoryCache(), 9, 18, nopLogger{})

	_, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, resolver.calls)
	assert.Len(t, resp.Slots, 36)
}

func TestExecute_InvalidStaffID(t *testing.T) {
	uc := NewUseCase(&fakeResolver{}, cache.Noop{}, 9, 18, nopLogger{})

	req := testRequest()
	req.StaffID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
