package create_booking

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type mockSlotRepo struct {
	mock.Mock
}

func (m *mockSlotRepo) GetByKey(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString) (*domain.Slot, error) {
	args := m.Called(ctx, salonID, date, timeSlot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

func (m *mockSlotRepo) MarkBooked(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString, bookingID int64) error {
	args := m.Called(ctx, salonID, date, timeSlot, bookingID)
	return args.Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) CreateServices(ctx context.Context, bookingID int64, lines []domain.BookingService) error {
	args := m.Called(ctx, bookingID, lines)
	return args.Error(0)
}

func (m *mockBookingRepo) DeleteServices(ctx context.Context, bookingID int64) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

func (m *mockBookingRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCustomerRepo struct {
	mock.Mock
}

func (m *mockCustomerRepo) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *mockCustomerRepo) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) GetByIDs(ctx context.Context, salonID int64, ids []int64) ([]*domain.Service, error) {
	args := m.Called(ctx, salonID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Service), args.Error(1)
}

type mockSalonRepo struct {
	mock.Mock
}

func (m *mockSalonRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salon), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}
