package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	slotRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type useCaseMocks struct {
	slots     *mockSlotRepo
	bookings  *mockBookingRepo
	customers *mockCustomerRepo
	services  *mockServiceRepo
	salons    *mockSalonRepo
}

func newUseCase(t *testing.T) (*UseCase, *useCaseMocks) {
	t.Helper()

	m := &useCaseMocks{
		slots:     &mockSlotRepo{},
		bookings:  &mockBookingRepo{},
		customers: &mockCustomerRepo{},
		services:  &mockServiceRepo{},
		salons:    &mockSalonRepo{},
	}
	uc := NewUseCase(m.slots, m.bookings, m.customers, m.services, m.salons, nopLogger{})
	return uc, m
}

func validRequest() *Request {
	return &Request{
		SalonID:   1,
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00:00"),
		Customer: CustomerInput{
			Name:  "Maria Silva",
			Phone: "+5511999990000",
		},
		ServiceIDs: []int64{10, 11},
	}
}

func activeSalon() *domain.Salon {
	return &domain.Salon{ID: 1, Name: "Studio Bem Estar", Active: true}
}

func availableSlot() *domain.Slot {
	return &domain.Slot{
		ID:       100,
		SalonID:  1,
		SlotDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		TimeSlot: types.TimeString("10:00:00"),
		Status:   domain.SlotAvailable,
	}
}

func catalogServices() []*domain.Service {
	return []*domain.Service{
		{ID: 10, SalonID: 1, Name: "Massagem relaxante", Price: 120, DurationMinutes: 60},
		{
			ID: 11, SalonID: 1, Name: "Limpeza de pele", Price: 90, DurationMinutes: 30,
			OnPromotion: true, PromotionalPrice: ptr.Ptr(75.0),
		},
	}
}

func TestExecute_Success(t *testing.T) {
	uc, m := newUseCase(t)
	req := validRequest()

	m.salons.On("GetActiveByID", mock.Anything, int64(1)).Return(activeSalon(), nil)
	m.slots.On("GetByKey", mock.Anything, int64(1), req.Date, req.StartTime).Return(availableSlot(), nil)
	m.customers.On("GetByPhone", mock.Anything, req.Customer.Phone).Return(nil, customerRepo.ErrCustomerNotFound)
	m.customers.On("Create", mock.Anything, mock.Anything).Return(&domain.Customer{ID: 7, Name: req.Customer.Name, Phone: req.Customer.Phone}, nil)
	m.services.On("GetByIDs", mock.Anything, int64(1), req.ServiceIDs).Return(catalogServices(), nil)

	m.bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		// Акционная цена второй услуги входит в итог вместо базовой
		return b.CustomerID == 7 &&
			b.Status == domain.StatusConfirmed &&
			b.TotalPrice == 195.0 &&
			b.TotalDurationMinutes == 90
	})).Return(&domain.Booking{
		ID:                   42,
		SalonID:              1,
		CustomerID:           7,
		BookingDate:          req.Date,
		StartTime:            req.StartTime,
		Status:               domain.StatusConfirmed,
		TotalPrice:           195.0,
		TotalDurationMinutes: 90,
	}, nil)
	m.bookings.On("CreateServices", mock.Anything, int64(42), mock.MatchedBy(func(lines []domain.BookingService) bool {
		return len(lines) == 2 && lines[0].Price == 120.0 && lines[1].Price == 75.0
	})).Return(nil)
	m.slots.On("MarkBooked", mock.Anything, int64(1), req.Date, req.StartTime, int64(42)).Return(nil)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 195.0, resp.TotalPrice)
	assert.Equal(t, 90, resp.TotalDurationMinutes)
	assert.Len(t, resp.Services, 2)

	m.bookings.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	m.slots.AssertExpectations(t)
	m.bookings.AssertExpectations(t)
}

func TestExecute_ReusesCustomerByPhone(t *testing.T) {
	uc, m := newUseCase(t)
	req := validRequest()

	existing := &domain.Customer{ID: 5, Name: "Maria Silva", Phone: req.Customer.Phone}

	m.salons.On("GetActiveByID", mock.Anything, int64(1)).Return(activeSalon(), nil)
	m.slots.On("GetByKey", mock.Anything, int64(1), req.Date, req.StartTime).Return(availableSlot(), nil)
	m.customers.On("GetByPhone", mock.Anything, req.Customer.Phone).Return(existing, nil)
	m.services.On("GetByIDs", mock.Anything, int64(1), req.ServiceIDs).Return(catalogServices(), nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{
		ID: 43, SalonID: 1, CustomerID: 5, BookingDate: req.Date, StartTime: req.StartTime,
		Status: domain.StatusConfirmed, TotalPrice: 195.0, TotalDurationMinutes: 90,
	}, nil)
	m.bookings.On("CreateServices", mock.Anything, int64(43), mock.Anything).Return(nil)
	m.slots.On("MarkBooked", mock.Anything, int64(1), req.Date, req.StartTime, int64(43)).Return(nil)

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.CustomerID)
	m.customers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_SalonNotFound(t *testing.T) {
	uc, m := newUseCase(t)
	req := validRequest()

	m.salons.On("GetActiveByID", mock.Anything, int64(1)).Return(nil, salonRepo.ErrSalonNotFound)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSalonNotFound)
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc, m := newUseCase(t)
	req := validRequest()

	m.salons.On("GetActiveByID", mock.Anything, int64(1)).Return(activeSalon(), nil)
	m.slots.On("GetByKey", mock.Anything, int64(1), req.Date, req.StartTime).Return(nil, slotRepo.ErrSlotNotFound)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotNotAvailableOnPrecheck(t *testing.T) {
	uc, m := newUseCase(t)
	req := validRequest()

	blocked := availableSlot()
	blocked.Status = domain.SlotBlocked

	m.salons.On("GetActiveByID", mock.Anything, int64(1)).Return(activeSalon(), nil)
	m.slots.On("GetByKey", mock.Anything, int64(1), req.Date, req.StartTime).Return(blocked, nil)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_ServicesNotFound(t *testing.T) {
	uc, m := newUseCase(t)
	req := validRequest()

	// Каталог вернул только одну услугу из двух запрошенных
	partial := catalogServices()[:1]

	m.salons.On("GetActiveByID", mock.Anything, int64(1)).Return(activeSalon(), nil)
	m.slots.On("GetByKey", mock.Anything, int64(1), req.Date, req.StartTime).Return(availableSlot(), nil)
	m.customers.On("GetByPhone", mock.Anything, req.Customer.Phone).Return(&domain.Customer{ID: 5}, nil)
	m.services.On("GetByIDs", mock.Anything, int64(1), req.ServiceIDs).Return(partial, nil)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrServicesNotFound)

	m.bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_LostSlotRaceCompensates(t *testing.T) {
	uc, m := newUseCase(t)
	req := validRequest()

	m.salons.On("GetActiveByID", mock.Anything, int64(1)).Return(activeSalon(), nil)
	m.slots.On("GetByKey", mock.Anything, int64(1), req.Date, req.StartTime).Return(availableSlot(), nil)
	m.customers.On("GetByPhone", mock.Anything, req.Customer.Phone).Return(&domain.Customer{ID: 5}, nil)
	m.services.On("GetByIDs", mock.Anything, int64(1), req.ServiceIDs).Return(catalogServices(), nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 42}, nil)
	m.bookings.On("CreateServices", mock.Anything, int64(42), mock.Anything).Return(nil)

	// Между предварительной проверкой и условным обновлением слот занял
	// другой вызов: бронирование откатывается полностью
	m.slots.On("MarkBooked", mock.Anything, int64(1), req.Date, req.StartTime, int64(42)).Return(slotRepo.ErrSlotNotAvailable)
	m.bookings.On("DeleteServices", mock.Anything, int64(42)).Return(nil)
	m.bookings.On("Delete", mock.Anything, int64(42)).Return(nil)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotAvailable)

	m.bookings.AssertCalled(t, "DeleteServices", mock.Anything, int64(42))
	m.bookings.AssertCalled(t, "Delete", mock.Anything, int64(42))
	m.bookings.AssertExpectations(t)
}

func TestExecute_CompensationFailureStillReturnsSlotError(t *testing.T) {
	uc, m := newUseCase(t)
	req := validRequest()

	m.salons.On("GetActiveByID", mock.Anything, int64(1)).Return(activeSalon(), nil)
	m.slots.On("GetByKey", mock.Anything, int64(1), req.Date, req.StartTime).Return(availableSlot(), nil)
	m.customers.On("GetByPhone", mock.Anything, req.Customer.Phone).Return(&domain.Customer{ID: 5}, nil)
	m.services.On("GetByIDs", mock.Anything, int64(1), req.ServiceIDs).Return(catalogServices(), nil)
	m.bookings.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 42}, nil)
	m.bookings.On("CreateServices", mock.Anything, int64(42), mock.Anything).Return(nil)
	m.slots.On("MarkBooked", mock.Anything, int64(1), req.Date, req.StartTime, int64(42)).Return(slotRepo.ErrSlotNotAvailable)

	// Ошибки компенсации только логируются, исходная ошибка не подменяется
	m.bookings.On("DeleteServices", mock.Anything, int64(42)).Return(errors.New("boom"))
	m.bookings.On("Delete", mock.Anything, int64(42)).Return(errors.New("boom"))

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc, _ := newUseCase(t)

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{name: "zero salon", mutate: func(r *Request) { r.SalonID = 0 }, wantErr: ErrInvalidInput},
		{name: "zero date", mutate: func(r *Request) { r.Date = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "empty time", mutate: func(r *Request) { r.StartTime = "" }, wantErr: ErrInvalidInput},
		{name: "empty name", mutate: func(r *Request) { r.Customer.Name = "  " }, wantErr: ErrInvalidInput},
		{name: "empty phone", mutate: func(r *Request) { r.Customer.Phone = "" }, wantErr: ErrInvalidInput},
		{name: "no services", mutate: func(r *Request) { r.ServiceIDs = nil }, wantErr: ErrServicesNotFound},
		{name: "duplicate services", mutate: func(r *Request) { r.ServiceIDs = []int64{10, 10} }, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
