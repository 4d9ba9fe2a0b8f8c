package customer

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

// Repository репозиторий для работы с клиентами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPhone ищет клиента по номеру телефона.
// Телефон является ключом дедупликации: повторный клиент переиспользует
// одну запись во всех своих бронированиях.
func (r *Repository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"phone",
		"email",
		"created_at",
		"updated_at",
	).
		From("customers").
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Customer
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID,
		&c.Name,
		&c.Phone,
		&c.Email,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhone - scan customer: %v", ErrScanRow, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return &c, nil
}

// Create создает клиента. При гонке двух создателей с одним телефоном
// конфликт разрешается в пользу существующей записи (upsert по phone),
// имя и email обновляются последним записавшим.
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("name", "phone", "email").
		Values(customer.Name, customer.Phone, customer.Email).
		Suffix("ON CONFLICT (phone) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, updated_at = NOW()").
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time
	customer.UpdatedAt = updatedAt.Time
	return customer, nil
}
