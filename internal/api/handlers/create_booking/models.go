package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	createBooking "github.com/m04kA/SMC-SalonService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BookingDate   string  `json:"bookingDate"` // "2026-09-15"
	StartTime     string  `json:"startTime"`   // "10:00"
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail *string `json:"customerEmail,omitempty"`
	ServiceIDs    []int64 `json:"serviceIds"`
	Notes         *string `json:"notes,omitempty"`
}

// ServiceLineResponse строка услуги в ответе
type ServiceLineResponse struct {
	ServiceID int64   `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                   int64                 `json:"id"`
	SalonID              int64                 `json:"salonId"`
	CustomerID           int64                 `json:"customerId"`
	BookingDate          string                `json:"bookingDate"`
	StartTime            string                `json:"startTime"`
	Status               string                `json:"status"`
	TotalPrice           float64               `json:"totalPrice"`
	TotalDurationMinutes int                   `json:"totalDurationMinutes"`
	Services             []ServiceLineResponse `json:"services"`
	Notes                *string               `json:"notes,omitempty"`
	CreatedAt            string                `json:"createdAt"`
	UpdatedAt            string                `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(salonID int64) (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		SalonID:   salonID,
		Date:      bookingDate,
		StartTime: startTime,
		Customer: createBooking.CustomerInput{
			Name:  r.CustomerName,
			Phone: r.CustomerPhone,
			Email: r.CustomerEmail,
		},
		ServiceIDs: r.ServiceIDs,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	services := make([]ServiceLineResponse, 0, len(resp.Services))
	for _, line := range resp.Services {
		services = append(services, ServiceLineResponse{
			ServiceID: line.ServiceID,
			Name:      line.Name,
			Price:     line.Price,
		})
	}

	return &BookingResponse{
		ID:                   resp.ID,
		SalonID:              resp.SalonID,
		CustomerID:           resp.CustomerID,
		BookingDate:          resp.BookingDate.Format(domain.DateFormat),
		StartTime:            resp.StartTime.Display(),
		Status:               resp.Status,
		TotalPrice:           resp.TotalPrice,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		Services:             services,
		Notes:                resp.Notes,
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            resp.UpdatedAt.Format(time.RFC3339),
	}
}
