package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByKey(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString) (*domain.Slot, error)
	MarkBooked(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString, bookingID int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CreateServices(ctx context.Context, bookingID int64, lines []domain.BookingService) error
	DeleteServices(ctx context.Context, bookingID int64) error
	Delete(ctx context.Context, id int64) error
}

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	GetByPhone(ctx context.Context, phone string) (*domain.Customer, error)
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetByIDs(ctx context.Context, salonID int64, ids []int64) ([]*domain.Service, error)
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Salon, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
