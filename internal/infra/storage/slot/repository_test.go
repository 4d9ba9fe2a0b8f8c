package slot

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRepository(db)
	return db, mock, repo
}

var (
	testDate = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	testTime = types.TimeString("10:00:00")
)

func TestMarkBooked_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkBooked(context.Background(), 1, testDate, testTime, 42)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkBooked_SlotTakenConcurrently(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	// Условие status = 'available' не выполнилось: ноль затронутых строк
	mock.ExpectExec(`UPDATE slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkBooked(context.Background(), 1, testDate, testTime, 42)

	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBatch_ReportsInsertedCount(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	slots := []domain.Slot{
		{SalonID: 1, SlotDate: testDate, TimeSlot: "08:00:00", Status: domain.SlotAvailable},
		{SalonID: 1, SlotDate: testDate, TimeSlot: "08:30:00", Status: domain.SlotAvailable},
		{SalonID: 1, SlotDate: testDate, TimeSlot: "09:00:00", Status: domain.SlotAvailable},
	}

	// Одна строка уже существовала, ON CONFLICT DO NOTHING её пропустил
	mock.ExpectExec(`INSERT INTO slots .* ON CONFLICT \(salon_id, slot_date, time_slot\) DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 2))

	inserted, err := repo.CreateBatch(context.Background(), slots)

	require.NoError(t, err)
	assert.Equal(t, int64(2), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBatch_EmptyInput(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	inserted, err := repo.CreateBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, int64(0), inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByKey_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM slots`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByKey(context.Background(), 1, testDate, testTime)

	require.ErrorIs(t, err, ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByKey_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "salon_id", "slot_date", "time_slot", "status",
		"booking_id", "blocked_reason", "created_at", "updated_at",
	}).AddRow(int64(5), int64(1), testDate, "10:00:00", "available", nil, nil, time.Now(), time.Now())

	mock.ExpectQuery(`SELECT .* FROM slots`).
		WithArgs(int64(1), testDate, "10:00:00").
		WillReturnRows(rows)

	slot, err := repo.GetByKey(context.Background(), 1, testDate, testTime)

	require.NoError(t, err)
	assert.Equal(t, int64(5), slot.ID)
	assert.Equal(t, domain.SlotAvailable, slot.Status)
	assert.Nil(t, slot.BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBlock_ZeroRowsMeansNotAvailable(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Block(context.Background(), 1, testDate, testTime, "manutenção")

	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRelease_OnlyBookedSlots(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE slots SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Release(context.Background(), 42)

	require.ErrorIs(t, err, ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNonBooked_ReturnsDeletedCount(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	// Фильтр по статусу не задевает занятые слоты
	mock.ExpectExec(`DELETE FROM slots WHERE .*salon_id.*status`).
		WillReturnResult(sqlmock.NewResult(0, 14))

	deleted, err := repo.DeleteNonBooked(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(14), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
