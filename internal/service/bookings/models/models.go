package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceLine строка услуги бронирования
type ServiceLine struct {
	ServiceID int64   `json:"service_id"`
	Price     float64 `json:"price"`
}

// BookingResponse модель ответа с данными бронирования
type BookingResponse struct {
	ID                   int64         `json:"id"`
	SalonID              int64         `json:"salon_id"`
	CustomerID           int64         `json:"customer_id"`
	BookingDate          string        `json:"booking_date"`
	StartTime            string        `json:"start_time"`
	Status               string        `json:"status"`
	TotalPrice           float64       `json:"total_price"`
	TotalDurationMinutes int           `json:"total_duration_minutes"`
	Notes                *string       `json:"notes,omitempty"`
	CancelledAt          *time.Time    `json:"cancelled_at,omitempty"`
	Services             []ServiceLine `json:"services,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// BookingListResponse модель ответа со списком бронирований салона
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// UpdateStatusRequest модель запроса на смену статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// FromDomainBooking конвертирует доменную модель бронирования в модель ответа
func FromDomainBooking(b *domain.Booking, lines []domain.BookingService) BookingResponse {
	resp := BookingResponse{
		ID:                   b.ID,
		SalonID:              b.SalonID,
		CustomerID:           b.CustomerID,
		BookingDate:          b.BookingDate.Format(domain.DateFormat),
		StartTime:            b.StartTime.Display(),
		Status:               string(b.Status),
		TotalPrice:           b.TotalPrice,
		TotalDurationMinutes: b.TotalDurationMinutes,
		Notes:                b.Notes,
		CancelledAt:          b.CancelledAt,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}

	for _, line := range lines {
		resp.Services = append(resp.Services, ServiceLine{
			ServiceID: line.ServiceID,
			Price:     line.Price,
		})
	}
	return resp
}
