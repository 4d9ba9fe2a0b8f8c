package schedule

import "errors"

var (
	// ErrInvalidSchedule возвращается при нарушении инвариантов шаблона:
	// открытие не раньше закрытия или некорректное окно перерыва
	ErrInvalidSchedule = errors.New("schedule.service: invalid schedule")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule.service: internal error")
)
