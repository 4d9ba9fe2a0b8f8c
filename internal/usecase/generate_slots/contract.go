package generate_slots

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ScheduleRepository интерфейс репозитория недельного шаблона расписания
type ScheduleRepository interface {
	GetWeek(ctx context.Context, salonID int64) ([]*domain.ScheduleConfig, error)
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	CreateBatch(ctx context.Context, slots []domain.Slot) (int64, error)
}

// SalonRepository интерфейс репозитория салонов
type SalonRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Salon, error)
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
