package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/infra/cache"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/schedule"
)

// UseCase use case для получения сетки доступности мастера на дату
type UseCase struct {
	resolver  AvailabilityResolver
	cache     GridCache
	startHour int
	endHour   int
	logger    Logger
}

// NewUseCase создает новый экземпляр use case.
// startHour и endHour задают рабочие часы, по которым строится сетка.
func NewUseCase(resolver AvailabilityResolver, gridCache GridCache, startHour, endHour int, logger Logger) *UseCase {
	return &UseCase{
		resolver:  resolver,
		cache:     gridCache,
		startHour: startHour,
		endHour:   endHour,
		logger:    logger,
	}
}

// Execute строит и разрешает сетку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	granularity := req.SlotDuration
	if !domain.IsValidGranularity(granularity) {
		granularity = domain.DefaultGranularityMinutes
	}

	uc.logger.Info("GetAvailability: staff=%d, date=%s, granularity=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), granularity)

	// 1. Пробуем кэш
	if cached, err := uc.cache.Get(ctx, req.StaffID, req.Date, granularity); err == nil {
		uc.logger.Info("GetAvailability: cache hit for staff=%d", req.StaffID)
		return uc.response(req, granularity, cached), nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		uc.logger.Warn("GetAvailability: cache read failed: %v", err)
	}

	// 2. Строим сетку и разрешаем статусы
	grid := schedule.GenerateSlots(uc.startHour, uc.endHour, granularity)

	slots, err := uc.resolver.Resolve(ctx, req.StaffID, req.Date, grid)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to resolve grid for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to resolve availability: %v", ErrInternal, err)
	}

	// 3. Кладем в кэш (промах кэша не фатален)
	if err := uc.cache.Set(ctx, req.StaffID, req.Date, granularity, slots); err != nil {
		uc.logger.Warn("GetAvailability: cache write failed: %v", err)
	}

	return uc.response(req, granularity, slots), nil
}

func (uc *UseCase) response(req *Request, granularity int, slots []domain.AvailabilitySlot) *Response {
	return &Response{
		StaffID:      req.StaffID,
		Date:         req.Date,
		SlotDuration: granularity,
		Slots:        slots,
	}
}

func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
