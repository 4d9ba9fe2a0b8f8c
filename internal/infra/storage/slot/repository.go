package slot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Repository репозиторий для работы со слотами расписания
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch вставляет пачку слотов, пропуская уже существующие строки.
// Ключ уникальности (salon_id, slot_date, time_slot); конфликт означает, что
// слот уже был сгенерирован ранее, его статус и бронь не трогаются.
// Возвращает количество фактически вставленных строк.
func (r *Repository) CreateBatch(ctx context.Context, slots []domain.Slot) (int64, error) {
	if len(slots) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("slots").
		Columns("salon_id", "slot_date", "time_slot", "status")

	for _, s := range slots {
		insertBuilder = insertBuilder.Values(s.SalonID, s.SlotDate, s.TimeSlot, s.Status)
	}

	query, args, err := insertBuilder.
		Suffix("ON CONFLICT (salon_id, slot_date, time_slot) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CreateBatch - get rows affected: %v", ErrExecQuery, err)
	}

	return inserted, nil
}

// GetByKey получает слот по его естественному ключу
func (r *Repository) GetByKey(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := slotColumns().
		Where(squirrel.Eq{
			"salon_id":  salonID,
			"slot_date": date,
			"time_slot": timeSlot,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetByKey")
}

// GetByBookingID получает слот, закрепленный за бронированием
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := slotColumns().
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlot(executor.QueryRowContext(ctx, query, args...), "GetByBookingID")
}

// ListAvailableByDate возвращает свободные слоты салона на дату,
// отсортированные по времени
func (r *Repository) ListAvailableByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := slotColumns().
		Where(squirrel.Eq{
			"salon_id":  salonID,
			"slot_date": date,
			"status":    domain.SlotAvailable,
		}).
		OrderBy("time_slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailableByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// ListDayWithBookings возвращает все слоты салона на дату вместе с данными
// клиента для занятых слотов. Используется административным расписанием.
func (r *Repository) ListDayWithBookings(ctx context.Context, salonID int64, date time.Time) ([]*domain.SlotWithBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.salon_id",
		"s.slot_date",
		"s.time_slot",
		"s.status",
		"s.booking_id",
		"s.blocked_reason",
		"s.created_at",
		"s.updated_at",
		"c.name AS customer_name",
		"c.phone AS customer_phone",
	).
		From("slots s").
		LeftJoin("bookings b ON b.id = s.booking_id").
		LeftJoin("customers c ON c.id = b.customer_id").
		Where(squirrel.Eq{"s.salon_id": salonID, "s.slot_date": date}).
		OrderBy("s.time_slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDayWithBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDayWithBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.SlotWithBooking, 0)
	for rows.Next() {
		var item domain.SlotWithBooking
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&item.ID,
			&item.SalonID,
			&item.SlotDate,
			&item.TimeSlot,
			&item.Status,
			&item.BookingID,
			&item.BlockedReason,
			&createdAt,
			&updatedAt,
			&item.CustomerName,
			&item.CustomerPhone,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDayWithBookings - scan row: %v", ErrScanRow, err)
		}

		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time
		result = append(result, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDayWithBookings - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// MarkBooked условно переводит слот available -> booked и закрепляет за ним
// бронирование. Условие status = 'available' проверяется атомарно на стороне
// БД: если между проверкой доступности и этим обновлением слот занял другой
// вызов, запрос затронет ноль строк и вернется ErrSlotNotAvailable.
func (r *Repository) MarkBooked(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotBooked).
		Set("booking_id", bookingID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"salon_id":  salonID,
			"slot_date": date,
			"time_slot": timeSlot,
			"status":    domain.SlotAvailable,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotAvailable
	}
	return nil
}

// Release освобождает слот, закрепленный за бронированием:
// booked -> available, привязка к бронированию снимается
func (r *Repository) Release(ctx context.Context, bookingID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotAvailable).
		Set("booking_id", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"booking_id": bookingID,
			"status":     domain.SlotBooked,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// Block условно переводит слот available -> blocked с указанием причины
func (r *Repository) Block(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotBlocked).
		Set("blocked_reason", reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"salon_id":  salonID,
			"slot_date": date,
			"time_slot": timeSlot,
			"status":    domain.SlotAvailable,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Block - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Block - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Block - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotAvailable
	}
	return nil
}

// Unblock переводит слот blocked -> available, снимая причину блокировки
func (r *Repository) Unblock(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotAvailable).
		Set("blocked_reason", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"salon_id":  salonID,
			"slot_date": date,
			"time_slot": timeSlot,
			"status":    domain.SlotBlocked,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Unblock - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Unblock - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Unblock - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// DeleteNonBooked удаляет все свободные и заблокированные слоты салона.
// Занятые слоты этим запросом не затрагиваются никогда: удаление брони
// возможно только через отмену бронирования.
func (r *Repository) DeleteNonBooked(ctx context.Context, salonID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{
			"salon_id": salonID,
			"status":   []domain.SlotStatus{domain.SlotAvailable, domain.SlotBlocked},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteNonBooked - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteNonBooked - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteNonBooked - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// slotColumns возвращает SELECT builder со стандартным набором колонок слота
func slotColumns() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"salon_id",
		"slot_date",
		"time_slot",
		"status",
		"booking_id",
		"blocked_reason",
		"created_at",
		"updated_at",
	).From("slots")
}

func (r *Repository) scanSlot(row *sql.Row, method string) (*domain.Slot, error) {
	var s domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.SalonID,
		&s.SlotDate,
		&s.TimeSlot,
		&s.Status,
		&s.BookingID,
		&s.BlockedReason,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, method, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.SalonID,
			&s.SlotDate,
			&s.TimeSlot,
			&s.Status,
			&s.BookingID,
			&s.BlockedReason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time
		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
