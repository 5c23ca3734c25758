package check_conflicts

import (
	"context"
	"fmt"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/schedule"
)

// UseCase use case для проверки кандидата без записи.
// Тот же конвейер детектора, что и при создании, но вне транзакции и без
// блокировок: результат носит информационный характер.
type UseCase struct {
	detector  ConflictDetector
	suggester SlotSuggester
	params    schedule.SuggestParams
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(detector ConflictDetector, suggester SlotSuggester, params schedule.SuggestParams, logger Logger) *UseCase {
	return &UseCase{
		detector:  detector,
		suggester: suggester,
		params:    params,
		logger:    logger,
	}
}

// Execute выполняет проверку кандидата
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflicts: staff=%d, date=%s, time=%s, duration=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflicts: validation failed: %v", err)
		return nil, err
	}

	endTime, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CheckConflicts: interval %s+%dmin does not fit into the day", req.StartTime, req.DurationMinutes)
		return nil, fmt.Errorf("%w: interval does not fit into the day", ErrInvalidInput)
	}

	resp := &Response{}

	// 1. Проверка против смены мастера
	violation, err := uc.detector.ValidateAgainstShift(ctx, req.StaffID, req.Date, req.StartTime, endTime)
	if err != nil {
		uc.logger.Error("CheckConflicts: shift validation failed: %v", err)
		return nil, fmt.Errorf("%w: failed to validate shift: %v", ErrInternal, err)
	}
	if violation != nil {
		resp.HasConflicts = true
		resp.ShiftViolation = &ShiftViolation{
			Code:   string(violation.Code),
			Reason: violation.Reason,
		}
	}

	// 2. Пересечения с бронированиями мастера
	conflicts, err := uc.detector.CheckStaffConflicts(ctx, req.StaffID, req.Date, req.StartTime, endTime, req.ExcludeBookingID)
	if err != nil {
		uc.logger.Error("CheckConflicts: staff conflict check failed: %v", err)
		return nil, fmt.Errorf("%w: failed to check staff conflicts: %v", ErrInternal, err)
	}
	if len(conflicts) > 0 {
		resp.HasConflicts = true
		resp.Conflicts = conflicts
	}

	// 3. Подбираем альтернативные окна, если кандидат заблокирован
	if resp.HasConflicts {
		suggestions, err := uc.suggester.Suggest(ctx, req.StaffID, req.Date, req.DurationMinutes, uc.params)
		if err != nil {
			uc.logger.Warn("CheckConflicts: failed to suggest alternatives: %v", err)
		} else {
			resp.Suggestions = suggestions
		}
	}

	uc.logger.Info("CheckConflicts: staff=%d hasConflicts=%t, %d conflicts, %d suggestions",
		req.StaffID, resp.HasConflicts, len(resp.Conflicts), len(resp.Suggestions))

	return resp, nil
}

func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}
	if req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	if req.ExcludeBookingID != nil && *req.ExcludeBookingID <= 0 {
		return fmt.Errorf("%w: excludeBookingID must be positive", ErrInvalidInput)
	}
	return nil
}
