package update_schedule

import (
	scheduleModels "github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	OpenTime            string  `json:"openTime"`  // "08:00"
	CloseTime           string  `json:"closeTime"` // "18:00"
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	BreakStart          *string `json:"breakStart,omitempty"`
	BreakEnd            *string `json:"breakEnd,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(salonID int64) *scheduleModels.SaveScheduleRequest {
	return &scheduleModels.SaveScheduleRequest{
		SalonID:             salonID,
		OpenTime:            r.OpenTime,
		CloseTime:           r.CloseTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		BreakStart:          r.BreakStart,
		BreakEnd:            r.BreakEnd,
	}
}
