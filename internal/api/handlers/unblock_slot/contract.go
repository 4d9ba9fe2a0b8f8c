package unblock_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type SlotsService interface {
	Unblock(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
