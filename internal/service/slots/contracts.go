package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByKey(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString) (*domain.Slot, error)
	ListAvailableByDate(ctx context.Context, salonID int64, date time.Time) ([]*domain.Slot, error)
	ListDayWithBookings(ctx context.Context, salonID int64, date time.Time) ([]*domain.SlotWithBooking, error)
	Block(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString, reason string) error
	Unblock(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString) error
	DeleteNonBooked(ctx context.Context, salonID int64) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
