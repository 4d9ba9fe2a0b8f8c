package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetServices(ctx context.Context, bookingID int64) ([]domain.BookingService, error)
	ListBySalon(ctx context.Context, salonID int64, date *time.Time) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// SlotRepository интерфейс репозитория слотов для освобождения слота
// при завершении жизненного цикла бронирования
type SlotRepository interface {
	Release(ctx context.Context, bookingID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
