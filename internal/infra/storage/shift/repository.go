package shift

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/domain"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/internal/schedule"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/dbmetrics"
	"github.com/hanamant1828-max/SpaManagement-AN-sub001/pkg/psqlbuilder"
)

// Repository read-only репозиторий смен персонала.
// Таблицы пишет внешний workflow назначения смен, сервис их только читает.
// Реализует schedule.ShiftRepository.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает репозиторий смен
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRangeForDate возвращает диапазон смен мастера, покрывающий дату.
// Пересекающиеся диапазоны не предотвращаются схемой, поэтому применяется
// детерминированный tie-break: побеждает последний созданный диапазон
// (created_at DESC, id DESC).
func (r *Repository) GetRangeForDate(ctx context.Context, staffID int64, date time.Time) (*domain.ShiftRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := domain.DateOnly(date)

	query, args, err := psqlbuilder.Select(
		"id",
		"staff_id",
		"from_date",
		"to_date",
		"created_at",
	).
		From("shift_ranges").
		Where(squirrel.Eq{"staff_id": staffID}).
		Where(squirrel.LtOrEq{"from_date": day}).
		Where(squirrel.GtOrEq{"to_date": day}).
		OrderBy("created_at DESC, id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRangeForDate - build select query: %v", ErrBuildQuery, err)
	}

	var shiftRange domain.ShiftRange
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&shiftRange.ID,
		&shiftRange.StaffID,
		&shiftRange.FromDate,
		&shiftRange.ToDate,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, schedule.ErrShiftRangeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRangeForDate - scan shift range: %v", ErrScanRow, err)
	}

	shiftRange.CreatedAt = createdAt.Time

	return &shiftRange, nil
}

// GetDailyLog возвращает журнал смены на конкретную дату
func (r *Repository) GetDailyLog(ctx context.Context, rangeID int64, date time.Time) (*domain.DailyShiftLog, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"shift_range_id",
		"log_date",
		"shift_start",
		"shift_end",
		"break_start",
		"break_end",
		"out_of_office_start",
		"out_of_office_end",
		"out_of_office_reason",
		"status",
	).
		From("daily_shift_logs").
		Where(squirrel.Eq{"shift_range_id": rangeID}).
		Where(squirrel.Eq{"log_date": domain.DateOnly(date)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDailyLog - build select query: %v", ErrBuildQuery, err)
	}

	var log domain.DailyShiftLog

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&log.ID,
		&log.ShiftRangeID,
		&log.LogDate,
		&log.ShiftStart,
		&log.ShiftEnd,
		&log.BreakStart,
		&log.BreakEnd,
		&log.OutOfOfficeStart,
		&log.OutOfOfficeEnd,
		&log.OutOfOfficeReason,
		&log.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, schedule.ErrDailyLogNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetDailyLog - scan daily log: %v", ErrScanRow, err)
	}

	return &log, nil
}
