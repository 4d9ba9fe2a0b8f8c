package models

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SlotResponse слот в отображаемой форме
type SlotResponse struct {
	TimeSlot      string  `json:"timeSlot"` // HH:MM
	Status        string  `json:"status"`
	BookingID     *int64  `json:"bookingId,omitempty"`
	BlockedReason *string `json:"blockedReason,omitempty"`
}

// DaySlotResponse слот административного расписания с данными клиента
// для занятых слотов
type DaySlotResponse struct {
	SlotResponse
	CustomerName  *string `json:"customerName,omitempty"`
	CustomerPhone *string `json:"customerPhone,omitempty"`
}

// SlotListResponse список слотов на дату
type SlotListResponse struct {
	Date  string         `json:"date"` // YYYY-MM-DD
	Slots []SlotResponse `json:"slots"`
}

// DaySlotListResponse список слотов административного расписания
type DaySlotListResponse struct {
	Date  string            `json:"date"`
	Slots []DaySlotResponse `json:"slots"`
}

// ResetResponse результат массового удаления незанятых слотов
type ResetResponse struct {
	Deleted int64 `json:"deleted"`
}

// FromDomainSlot конвертирует доменный слот в ответ сервиса
func FromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		TimeSlot:      s.TimeSlot.Display(),
		Status:        string(s.Status),
		BookingID:     s.BookingID,
		BlockedReason: s.BlockedReason,
	}
}

// FromDomainSlotWithBooking конвертирует слот с данными клиента
func FromDomainSlotWithBooking(s *domain.SlotWithBooking) DaySlotResponse {
	return DaySlotResponse{
		SlotResponse:  FromDomainSlot(&s.Slot),
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
	}
}
