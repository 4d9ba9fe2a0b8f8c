package generate_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
)

// UseCase use case генерации слотов за период.
//
// Раскрывает недельный шаблон расписания в конкретные строки слотов.
// Генерация идемпотентна: вставка пропускает уже существующие слоты по ключу
// (salon_id, slot_date, time_slot), поэтому повторный запуск по пересекающемуся
// периоду не дублирует слоты и не трогает занятые и заблокированные.
type UseCase struct {
	scheduleRepo ScheduleRepository
	slotRepo     SlotRepository
	salonRepo    SalonRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	slotRepo SlotRepository,
	salonRepo SalonRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		slotRepo:     slotRepo,
		salonRepo:    salonRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute генерирует слоты салона на каждый день периода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: salon=%d, period=%s..%s",
		req.SalonID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.salonRepo.GetActiveByID(ctx, req.SalonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("GenerateSlots: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("GenerateSlots: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	week, err := uc.scheduleRepo.GetWeek(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			uc.logger.Warn("GenerateSlots: salon id=%d has no saved schedule", req.SalonID)
			return nil, ErrScheduleNotConfigured
		}
		uc.logger.Error("GenerateSlots: failed to load schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	byWeekday := make(map[int]*domain.ScheduleConfig, len(week))
	for _, day := range week {
		byWeekday[day.Weekday] = day
	}

	slots := make([]domain.Slot, 0)
	for date := req.StartDate; !date.After(req.EndDate); date = date.AddDate(0, 0, 1) {
		cfg, ok := byWeekday[int(date.Weekday())]
		if !ok || !cfg.IsOpen {
			continue
		}

		daySlots, err := expandDay(cfg, req.SalonID, date)
		if err != nil {
			uc.logger.Error("GenerateSlots: failed to expand %s: %v", date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: failed to expand day: %v", ErrInternal, err)
		}
		slots = append(slots, daySlots...)
	}

	if len(slots) == 0 {
		uc.logger.Info("GenerateSlots: nothing to generate for salon=%d", req.SalonID)
		return &Response{}, nil
	}

	// Вся пачка вставляется в одной транзакции: прерванная генерация
	// не оставляет частично заполненного периода
	var inserted int64
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		n, err := uc.slotRepo.CreateBatch(txCtx, slots)
		if err != nil {
			return fmt.Errorf("%w: failed to insert slots: %v", ErrInternal, err)
		}
		inserted = n
		return nil
	})
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to insert slots for salon=%d: %v", req.SalonID, err)
		return nil, err
	}

	skipped := int64(len(slots)) - inserted
	uc.logger.Info("GenerateSlots: salon=%d generated=%d skipped=%d", req.SalonID, inserted, skipped)

	return &Response{Generated: inserted, Skipped: skipped}, nil
}

func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return ErrInvalidPeriod
	}
	if req.EndDate.Sub(req.StartDate).Hours() > 24*domain.MaxGenerationDays {
		return fmt.Errorf("%w: period longer than %d days", ErrInvalidPeriod, domain.MaxGenerationDays)
	}
	return nil
}
