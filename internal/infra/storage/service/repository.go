package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий каталога услуг (только чтение).
// Управление каталогом лежит за пределами этого сервиса.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория услуг
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActiveBySalon возвращает активные услуги салона,
// популярные первыми (порядок витрины)
func (r *Repository) ListActiveBySalon(ctx context.Context, salonID int64) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceColumns().
		Where(squirrel.Eq{"salon_id": salonID, "active": true}).
		OrderBy("popular DESC, name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

// GetByIDs возвращает активные услуги салона по списку идентификаторов.
// Если какая-то услуга не найдена или неактивна, её просто не будет в
// результате; полноту набора проверяет вызывающий слой.
func (r *Repository) GetByIDs(ctx context.Context, salonID int64, ids []int64) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := serviceColumns().
		Where(squirrel.Eq{"salon_id": salonID, "id": ids, "active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServices(rows)
}

func serviceColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"name",
		"description",
		"price",
		"duration_minutes",
		"category",
		"active",
		"popular",
		"on_promotion",
		"promotional_price",
		"created_at",
		"updated_at",
	).From("services")
}

func (r *Repository) scanServices(rows *sql.Rows) ([]*domain.Service, error) {
	services := make([]*domain.Service, 0)

	for rows.Next() {
		var s domain.Service
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.SalonID,
			&s.Name,
			&s.Description,
			&s.Price,
			&s.DurationMinutes,
			&s.Category,
			&s.Active,
			&s.Popular,
			&s.OnPromotion,
			&s.PromotionalPrice,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanServices - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		services = append(services, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServices - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}
