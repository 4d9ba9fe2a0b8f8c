package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) GetServices(ctx context.Context, bookingID int64) ([]domain.BookingService, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BookingService), args.Error(1)
}

func (m *mockBookingRepo) ListBySalon(ctx context.Context, salonID int64, date *time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, salonID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) Release(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newService(t *testing.T) (*Service, *mockBookingRepo, *mockSlotRepo) {
	t.Helper()

	bookings := &mockBookingRepo{}
	slots := &mockSlotRepo{}
	return NewService(bookings, slots, nopLogger{}), bookings, slots
}

func confirmedBooking(id int64) *domain.Booking {
	return &domain.Booking{
		ID:                   id,
		SalonID:              1,
		CustomerID:           7,
		BookingDate:          time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:            types.TimeString("10:00:00"),
		Status:               domain.StatusConfirmed,
		TotalPrice:           120,
		TotalDurationMinutes: 60,
	}
}

func TestGetByID_WithServiceLines(t *testing.T) {
	svc, bookings, _ := newService(t)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(confirmedBooking(42), nil)
	bookings.On("GetServices", mock.Anything, int64(42)).Return([]domain.BookingService{
		{ID: 1, BookingID: 42, ServiceID: 10, Price: 120},
	}, nil)

	resp, err := svc.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, int64(10), resp.Services[0].ServiceID)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, bookings, _ := newService(t)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatus_TerminalReleasesSlot(t *testing.T) {
	svc, bookings, slots := newService(t)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(confirmedBooking(42), nil)
	bookings.On("UpdateStatus", mock.Anything, int64(42), domain.StatusCompleted).Return(nil)
	slots.On("Release", mock.Anything, int64(42)).Return(nil)

	resp, err := svc.UpdateStatus(context.Background(), 42, domain.StatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	slots.AssertCalled(t, "Release", mock.Anything, int64(42))
}

func TestUpdateStatus_NonTerminalKeepsSlot(t *testing.T) {
	svc, bookings, slots := newService(t)

	pending := confirmedBooking(42)
	pending.Status = domain.StatusPending

	bookings.On("GetByID", mock.Anything, int64(42)).Return(pending, nil)
	bookings.On("UpdateStatus", mock.Anything, int64(42), domain.StatusConfirmed).Return(nil)

	_, err := svc.UpdateStatus(context.Background(), 42, domain.StatusConfirmed)

	require.NoError(t, err)
	slots.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestUpdateStatus_ReleaseFailureIsSwallowed(t *testing.T) {
	svc, bookings, slots := newService(t)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(confirmedBooking(42), nil)
	bookings.On("UpdateStatus", mock.Anything, int64(42), domain.StatusCancelled).Return(nil)

	// Освобождение слота best-effort: смена статуса уже зафиксирована
	slots.On("Release", mock.Anything, int64(42)).Return(errors.New("connection reset"))

	resp, err := svc.UpdateStatus(context.Background(), 42, domain.StatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.NotNil(t, resp.CancelledAt)
}

func TestUpdateStatus_MissingSlotIsFine(t *testing.T) {
	svc, bookings, slots := newService(t)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(confirmedBooking(42), nil)
	bookings.On("UpdateStatus", mock.Anything, int64(42), domain.StatusNoShow).Return(nil)
	slots.On("Release", mock.Anything, int64(42)).Return(slotRepo.ErrSlotNotFound)

	_, err := svc.UpdateStatus(context.Background(), 42, domain.StatusNoShow)
	require.NoError(t, err)
}

func TestUpdateStatus_TerminalBookingIsFinal(t *testing.T) {
	svc, bookings, _ := newService(t)

	cancelled := confirmedBooking(42)
	cancelled.Status = domain.StatusCancelled

	bookings.On("GetByID", mock.Anything, int64(42)).Return(cancelled, nil)

	_, err := svc.UpdateStatus(context.Background(), 42, domain.StatusConfirmed)
	require.ErrorIs(t, err, ErrInvalidTransition)

	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_SameStatusIsNoop(t *testing.T) {
	svc, bookings, _ := newService(t)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(confirmedBooking(42), nil)

	resp, err := svc.UpdateStatus(context.Background(), 42, domain.StatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_ActiveBooking(t *testing.T) {
	svc, bookings, slots := newService(t)

	bookings.On("GetByID", mock.Anything, int64(42)).Return(confirmedBooking(42), nil)
	bookings.On("UpdateStatus", mock.Anything, int64(42), domain.StatusCancelled).Return(nil)
	slots.On("Release", mock.Anything, int64(42)).Return(nil)

	resp, err := svc.Cancel(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
}

func TestCancel_CompletedBookingRejected(t *testing.T) {
	svc, bookings, _ := newService(t)

	completed := confirmedBooking(42)
	completed.Status = domain.StatusCompleted

	bookings.On("GetByID", mock.Anything, int64(42)).Return(completed, nil)

	_, err := svc.Cancel(context.Background(), 42)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestListBySalon_PassesOptionalDate(t *testing.T) {
	svc, bookings, _ := newService(t)

	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	bookings.On("ListBySalon", mock.Anything, int64(1), &date).Return([]*domain.Booking{confirmedBooking(42)}, nil)

	resp, err := svc.ListBySalon(context.Background(), 1, &date)

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "2026-09-15", resp.Bookings[0].BookingDate)
}
