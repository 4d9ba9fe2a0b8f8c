package create_booking

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден или неактивен
	ErrSalonNotFound = errors.New("create_booking: salon not found")

	// ErrSlotNotFound возвращается, когда слот с указанными датой и временем не существует
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrSlotNotAvailable возвращается, когда слот занят, заблокирован или
	// был занят конкурентным бронированием между проверкой и записью
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrServicesNotFound возвращается, когда список услуг пуст или
	// хотя бы одна услуга не найдена среди активных услуг салона
	ErrServicesNotFound = errors.New("create_booking: services not found")

	// ErrCustomerPersist возвращается при ошибке поиска или создания клиента
	ErrCustomerPersist = errors.New("create_booking: failed to persist customer")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
