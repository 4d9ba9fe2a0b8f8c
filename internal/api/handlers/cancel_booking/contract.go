package cancel_booking

import (
	"context"

	bookingsModels "github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, id int64) (*bookingsModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
