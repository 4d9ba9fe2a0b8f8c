package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slots.service: slot not found")

	// ErrSlotBooked возвращается при попытке заблокировать занятый слот:
	// бронирование нужно сперва отменить, молча оно не перекрывается
	ErrSlotBooked = errors.New("slots.service: slot is booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("slots.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots.service: internal error")
)
