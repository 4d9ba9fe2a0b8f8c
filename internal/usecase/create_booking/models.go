package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CustomerInput данные клиента из формы бронирования
type CustomerInput struct {
	Name  string
	Phone string
	Email *string
}

// Request модель запроса на создание бронирования
type Request struct {
	SalonID    int64            // ID салона (всегда передается явно)
	Date       time.Time        // Дата бронирования (без времени)
	StartTime  types.TimeString // Время слота
	Customer   CustomerInput    // Клиент (дедупликация по телефону)
	ServiceIDs []int64          // Выбранные услуги
	Notes      *string          // Заметки клиента (опционально)
}

// ServiceLine строка услуги в ответе
type ServiceLine struct {
	ServiceID int64
	Name      string
	Price     float64
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                   int64
	SalonID              int64
	CustomerID           int64
	BookingDate          time.Time
	StartTime            types.TimeString
	Status               string
	TotalPrice           float64
	TotalDurationMinutes int
	Services             []ServiceLine
	Notes                *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
