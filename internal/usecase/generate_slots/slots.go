package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// expandDay раскрывает шаблон одного дня недели в слоты на конкретную дату.
// Слоты идут с фиксированным шагом slot_duration от открытия до закрытия;
// слот попадает в результат, только если целиком помещается до закрытия.
// Шаги, начинающиеся внутри перерыва [break_start, break_end), пропускаются.
func expandDay(cfg *domain.ScheduleConfig, salonID int64, date time.Time) ([]domain.Slot, error) {
	slots := make([]domain.Slot, 0)

	current := cfg.OpenTime
	for current.IsBefore(cfg.CloseTime) {
		end, err := current.AddMinutes(cfg.SlotDurationMinutes)
		if err != nil {
			// Шаг вышел за границу суток — дальше слотов нет
			break
		}
		if end.IsAfter(cfg.CloseTime) {
			break
		}

		if !inBreak(cfg, current) {
			slots = append(slots, domain.Slot{
				SalonID:  salonID,
				SlotDate: date,
				TimeSlot: current,
				Status:   domain.SlotAvailable,
			})
		}

		current = end
	}

	return slots, nil
}

// inBreak возвращает true, если момент начала слота попадает в перерыв.
// Граница break_end не входит в перерыв: слот, начинающийся ровно в конце
// перерыва, генерируется.
func inBreak(cfg *domain.ScheduleConfig, t types.TimeString) bool {
	if !cfg.HasBreak() {
		return false
	}
	return !t.IsBefore(*cfg.BreakStart) && t.IsBefore(*cfg.BreakEnd)
}
