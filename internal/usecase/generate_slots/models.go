package generate_slots

import "time"

// Request модель запроса на генерацию слотов за период
type Request struct {
	SalonID   int64     // ID салона
	StartDate time.Time // Первый день периода (включительно)
	EndDate   time.Time // Последний день периода (включительно)
}

// Response модель ответа генерации
type Response struct {
	Generated int64 // Количество фактически вставленных слотов
	Skipped   int64 // Количество слотов, уже существовавших в периоде
}
