package block_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type SlotsService interface {
	Block(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString, reason string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
