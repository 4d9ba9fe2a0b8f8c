package get_salon_bookings

import (
	"context"
	"time"

	bookingsModels "github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

type BookingsService interface {
	ListBySalon(ctx context.Context, salonID int64, date *time.Time) (*bookingsModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
