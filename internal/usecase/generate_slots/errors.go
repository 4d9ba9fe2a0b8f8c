package generate_slots

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден или неактивен
	ErrSalonNotFound = errors.New("generate_slots: salon not found")

	// ErrInvalidPeriod возвращается, когда конец периода раньше начала
	// или период превышает допустимую длину
	ErrInvalidPeriod = errors.New("generate_slots: invalid generation period")

	// ErrScheduleNotConfigured возвращается, когда у салона нет сохраненного
	// недельного шаблона: генерация требует явно сохраненного расписания
	ErrScheduleNotConfigured = errors.New("generate_slots: schedule is not configured")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
