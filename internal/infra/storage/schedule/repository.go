package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий недельного шаблона расписания (working_hours).
// Одна строка на день недели, уникальность по (salon_id, weekday).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ReplaceWeek целиком перезаписывает недельный шаблон салона.
// Вызывается внутри транзакции: сначала удаляются старые семь строк,
// затем вставляются новые.
func (r *Repository) ReplaceWeek(ctx context.Context, salonID int64, week []domain.ScheduleConfig) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("working_hours").
		Where(squirrel.Eq{"salon_id": salonID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("working_hours").
		Columns(
			"salon_id",
			"weekday",
			"is_open",
			"open_time",
			"close_time",
			"slot_duration_minutes",
			"break_start",
			"break_end",
		)

	for _, day := range week {
		insertBuilder = insertBuilder.Values(
			salonID,
			day.Weekday,
			day.IsOpen,
			day.OpenTime,
			day.CloseTime,
			day.SlotDurationMinutes,
			day.BreakStart,
			day.BreakEnd,
		)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeek - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeek - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetWeek возвращает все строки недельного шаблона салона,
// отсортированные по дню недели
func (r *Repository) GetWeek(ctx context.Context, salonID int64) ([]*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := scheduleColumns().
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	week := make([]*domain.ScheduleConfig, 0, 7)
	for rows.Next() {
		day, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		week = append(week, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeek - rows error: %v", ErrScanRow, err)
	}

	if len(week) == 0 {
		return nil, ErrConfigNotFound
	}
	return week, nil
}

// GetByWeekday возвращает строку шаблона салона на конкретный день недели
func (r *Repository) GetByWeekday(ctx context.Context, salonID int64, weekday int) (*domain.ScheduleConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := scheduleColumns().
		Where(squirrel.Eq{"salon_id": salonID, "weekday": weekday}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetByWeekday - rows error: %v", ErrScanRow, err)
		}
		return nil, ErrConfigNotFound
	}

	return scanSchedule(rows)
}

func scheduleColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"weekday",
		"is_open",
		"open_time",
		"close_time",
		"slot_duration_minutes",
		"break_start",
		"break_end",
		"created_at",
		"updated_at",
	).From("working_hours")
}

func scanSchedule(rows *sql.Rows) (*domain.ScheduleConfig, error) {
	var c domain.ScheduleConfig
	var breakStart, breakEnd types.TimeString
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&c.ID,
		&c.SalonID,
		&c.Weekday,
		&c.IsOpen,
		&c.OpenTime,
		&c.CloseTime,
		&c.SlotDurationMinutes,
		&breakStart,
		&breakEnd,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanSchedule - scan row: %v", ErrScanRow, err)
	}

	// NULL в колонках перерыва сканируется в пустую строку
	if !breakStart.IsZero() {
		c.BreakStart = &breakStart
	}
	if !breakEnd.IsZero() {
		c.BreakEnd = &breakEnd
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return &c, nil
}
