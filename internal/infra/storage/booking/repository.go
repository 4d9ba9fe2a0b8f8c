package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями и их строками услуг
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"salon_id",
			"customer_id",
			"booking_date",
			"start_time",
			"status",
			"total_price",
			"total_duration_minutes",
			"notes",
		).
		Values(
			booking.SalonID,
			booking.CustomerID,
			booking.BookingDate,
			booking.StartTime,
			booking.Status,
			booking.TotalPrice,
			booking.TotalDurationMinutes,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time
	return booking, nil
}

// CreateServices создает строки услуг бронирования.
// Цена фиксируется в строке на момент бронирования.
func (r *Repository) CreateServices(ctx context.Context, bookingID int64, lines []domain.BookingService) error {
	if len(lines) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("booking_services").
		Columns("booking_id", "service_id", "price")

	for _, line := range lines {
		insertBuilder = insertBuilder.Values(bookingID, line.ServiceID, line.Price)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateServices - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateServices - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := bookingColumns().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.SalonID,
		&b.CustomerID,
		&b.BookingDate,
		&b.StartTime,
		&b.Status,
		&b.TotalPrice,
		&b.TotalDurationMinutes,
		&b.Notes,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

// GetServices получает строки услуг бронирования
func (r *Repository) GetServices(ctx context.Context, bookingID int64) ([]domain.BookingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "service_id", "price").
		From("booking_services").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	lines := make([]domain.BookingService, 0)
	for rows.Next() {
		var line domain.BookingService
		if err := rows.Scan(&line.ID, &line.BookingID, &line.ServiceID, &line.Price); err != nil {
			return nil, fmt.Errorf("%w: GetServices - scan row: %v", ErrScanRow, err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServices - rows error: %v", ErrScanRow, err)
	}
	return lines, nil
}

// ListBySalon получает бронирования салона, опционально на конкретную дату.
// Для конкретной даты сортировка по времени начала, иначе новые сверху.
func (r *Repository) ListBySalon(ctx context.Context, salonID int64, date *time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := bookingColumns().
		Where(squirrel.Eq{"salon_id": salonID})

	if date != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"booking_date": *date}).
			OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBySalon - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus обновляет статус бронирования.
// Для отмены дополнительно фиксируется момент отмены.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if status == domain.StatusCancelled {
		updateBuilder = updateBuilder.Set("cancelled_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// DeleteServices удаляет строки услуг бронирования.
// Используется компенсацией при откате незавершенного бронирования.
func (r *Repository) DeleteServices(ctx context.Context, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("booking_services").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteServices - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteServices - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// Delete физически удаляет бронирование.
// Используется только компенсацией при откате незавершенного бронирования;
// завершенные бронирования отменяются через UpdateStatus ради истории.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// bookingColumns возвращает SELECT builder со стандартным набором колонок бронирования
func bookingColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"customer_id",
		"booking_date",
		"start_time",
		"status",
		"total_price",
		"total_duration_minutes",
		"notes",
		"cancelled_at",
		"created_at",
		"updated_at",
	).From("bookings")
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.SalonID,
			&b.CustomerID,
			&b.BookingDate,
			&b.StartTime,
			&b.Status,
			&b.TotalPrice,
			&b.TotalDurationMinutes,
			&b.Notes,
			&b.CancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
