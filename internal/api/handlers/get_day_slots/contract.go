package get_day_slots

import (
	"context"
	"time"

	slotsModels "github.com/m04kA/SMC-SalonService/internal/service/slots/models"
)

type SlotsService interface {
	GetDay(ctx context.Context, salonID int64, date time.Time) (*slotsModels.DaySlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
