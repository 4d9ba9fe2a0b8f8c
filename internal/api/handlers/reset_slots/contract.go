package reset_slots

import (
	"context"

	slotsModels "github.com/m04kA/SMC-SalonService/internal/service/slots/models"
)

type SlotsService interface {
	Reset(ctx context.Context, salonID int64) (*slotsModels.ResetResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
