package update_schedule

import (
	"context"

	scheduleModels "github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

type ScheduleService interface {
	Save(ctx context.Context, req *scheduleModels.SaveScheduleRequest) (*scheduleModels.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
