package salon

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

// Repository репозиторий салонов (только чтение)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория салонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveByID получает активный салон по ID.
// Идентификатор салона всегда приходит от вызывающей стороны явно;
// никакого неявного "первого активного" салона в ядре нет.
func (r *Repository) GetActiveByID(ctx context.Context, id int64) (*domain.Salon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"address",
		"phone",
		"email",
		"active",
		"created_at",
		"updated_at",
	).
		From("salons").
		Where(squirrel.Eq{"id": id, "active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Salon
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&s.Phone,
		&s.Email,
		&s.Active,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSalonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByID - scan salon: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}
