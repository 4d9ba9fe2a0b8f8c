package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SaveScheduleRequest запрос на сохранение недельного шаблона.
// Времена приходят в отображаемой форме HH:MM или полной HH:MM:SS.
type SaveScheduleRequest struct {
	SalonID             int64
	OpenTime            string
	CloseTime           string
	SlotDurationMinutes int
	BreakStart          *string
	BreakEnd            *string
}

// ScheduleResponse недельный шаблон в отображаемой форме HH:MM
type ScheduleResponse struct {
	OpenTime            string  `json:"openTime"`
	CloseTime           string  `json:"closeTime"`
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	BreakStart          *string `json:"breakStart,omitempty"`
	BreakEnd            *string `json:"breakEnd,omitempty"`
}

// FromDomainConfig конвертирует доменный шаблон в ответ сервиса
func FromDomainConfig(cfg *domain.ScheduleConfig) *ScheduleResponse {
	resp := &ScheduleResponse{
		OpenTime:            cfg.OpenTime.Display(),
		CloseTime:           cfg.CloseTime.Display(),
		SlotDurationMinutes: cfg.SlotDurationMinutes,
	}
	if cfg.BreakStart != nil {
		v := cfg.BreakStart.Display()
		resp.BreakStart = &v
	}
	if cfg.BreakEnd != nil {
		v := cfg.BreakEnd.Display()
		resp.BreakEnd = &v
	}
	return resp
}
