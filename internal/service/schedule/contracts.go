package schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ScheduleRepository интерфейс репозитория недельного шаблона расписания
type ScheduleRepository interface {
	ReplaceWeek(ctx context.Context, salonID int64, week []domain.ScheduleConfig) error
	GetByWeekday(ctx context.Context, salonID int64, weekday int) (*domain.ScheduleConfig, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
