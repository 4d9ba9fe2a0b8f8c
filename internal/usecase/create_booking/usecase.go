package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	customerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/customer"
	salonRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/salon"
	slotRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/slot"
)

// UseCase use case создания бронирования.
//
// Хранилище не дает многошаговой транзакции вокруг всей операции, поэтому
// корректность обеспечивается иначе: финальный перевод слота в booked —
// условное обновление (status = 'available' проверяется атомарно на стороне
// БД), а созданные до него строки бронирования при проигрыше гонки
// откатываются компенсацией. Снаружи частичный сбой не виден: либо
// бронирование состоялось целиком, либо не осталось ни одной строки.
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	customerRepo CustomerRepository
	serviceRepo  ServiceRepository
	salonRepo    SalonRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	customerRepo CustomerRepository,
	serviceRepo ServiceRepository,
	salonRepo SalonRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		customerRepo: customerRepo,
		serviceRepo:  serviceRepo,
		salonRepo:    salonRepo,
		logger:       logger,
	}
}

// Execute выполняет бронирование слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: salon=%d, date=%s, time=%s, phone=%s, services=%v",
		req.SalonID, req.Date.Format(domain.DateFormat), req.StartTime, req.Customer.Phone, req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что салон существует и активен
	if _, err := uc.salonRepo.GetActiveByID(ctx, req.SalonID); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNotFound) {
			uc.logger.Warn("CreateBooking: salon id=%d not found", req.SalonID)
			return nil, ErrSalonNotFound
		}
		uc.logger.Error("CreateBooking: failed to get salon id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: failed to get salon: %v", ErrInternal, err)
	}

	// 3. Находим целевой слот и проверяем его доступность.
	// Это предварительная проверка: финальное слово за условным обновлением
	// в шаге 7 — между этими точками слот может занять другой вызов.
	slot, err := uc.slotRepo.GetByKey(ctx, req.SalonID, req.Date, req.StartTime)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			uc.logger.Warn("CreateBooking: slot %s %s not found for salon=%d",
				req.Date.Format(domain.DateFormat), req.StartTime, req.SalonID)
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("CreateBooking: failed to get slot: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
	}
	if !slot.IsAvailable() {
		uc.logger.Warn("CreateBooking: slot %s %s has status=%s",
			req.Date.Format(domain.DateFormat), req.StartTime, slot.Status)
		return nil, ErrSlotNotAvailable
	}

	// 4. Находим или создаем клиента по телефону
	customer, err := uc.resolveCustomer(ctx, req.Customer)
	if err != nil {
		return nil, err
	}

	// 5. Находим услуги и считаем итоговые цену и длительность
	services, err := uc.serviceRepo.GetByIDs(ctx, req.SalonID, req.ServiceIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}
	if len(services) != len(req.ServiceIDs) {
		uc.logger.Warn("CreateBooking: resolved %d of %d requested services",
			len(services), len(req.ServiceIDs))
		return nil, ErrServicesNotFound
	}

	var totalPrice float64
	var totalDuration int
	lines := make([]domain.BookingService, 0, len(services))
	responseLines := make([]ServiceLine, 0, len(services))
	for _, svc := range services {
		price := svc.EffectivePrice()
		totalPrice += price
		totalDuration += svc.DurationMinutes
		lines = append(lines, domain.BookingService{ServiceID: svc.ID, Price: price})
		responseLines = append(responseLines, ServiceLine{ServiceID: svc.ID, Name: svc.Name, Price: price})
	}

	// 6. Создаем бронирование и строки услуг
	booking := &domain.Booking{
		SalonID:              req.SalonID,
		CustomerID:           customer.ID,
		BookingDate:          req.Date,
		StartTime:            req.StartTime,
		Status:               domain.StatusConfirmed,
		TotalPrice:           totalPrice,
		TotalDurationMinutes: totalDuration,
		Notes:                req.Notes,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	if err := uc.bookingRepo.CreateServices(ctx, created.ID, lines); err != nil {
		uc.logger.Error("CreateBooking: failed to create booking services for id=%d: %v", created.ID, err)
		uc.compensate(ctx, created.ID)
		return nil, fmt.Errorf("%w: failed to create booking services: %v", ErrInternal, err)
	}

	// 7. Условный перевод слота available -> booked. Если с шага 3 слот успел
	// занять другой вызов, обновление затронет ноль строк — тогда откатываем
	// созданные строки бронирования и сообщаем о недоступности слота.
	if err := uc.slotRepo.MarkBooked(ctx, req.SalonID, req.Date, req.StartTime, created.ID); err != nil {
		uc.compensate(ctx, created.ID)

		if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: lost slot race for %s %s, booking id=%d rolled back",
				req.Date.Format(domain.DateFormat), req.StartTime, created.ID)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: failed to mark slot booked for booking id=%d: %v", created.ID, err)
		return nil, fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (total=%.2f, duration=%d min)",
		created.ID, totalPrice, totalDuration)

	return &Response{
		ID:                   created.ID,
		SalonID:              created.SalonID,
		CustomerID:           created.CustomerID,
		BookingDate:          created.BookingDate,
		StartTime:            created.StartTime,
		Status:               string(created.Status),
		TotalPrice:           created.TotalPrice,
		TotalDurationMinutes: created.TotalDurationMinutes,
		Services:             responseLines,
		Notes:                created.Notes,
		CreatedAt:            created.CreatedAt,
		UpdatedAt:            created.UpdatedAt,
	}, nil
}

// resolveCustomer ищет клиента по телефону и создает нового при отсутствии
func (uc *UseCase) resolveCustomer(ctx context.Context, input CustomerInput) (*domain.Customer, error) {
	existing, err := uc.customerRepo.GetByPhone(ctx, input.Phone)
	if err == nil {
		uc.logger.Info("CreateBooking: reusing customer id=%d for phone=%s", existing.ID, input.Phone)
		return existing, nil
	}
	if !errors.Is(err, customerRepo.ErrCustomerNotFound) {
		uc.logger.Error("CreateBooking: failed to look up customer by phone=%s: %v", input.Phone, err)
		return nil, fmt.Errorf("%w: lookup by phone: %v", ErrCustomerPersist, err)
	}

	created, err := uc.customerRepo.Create(ctx, &domain.Customer{
		Name:  input.Name,
		Phone: input.Phone,
		Email: input.Email,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create customer for phone=%s: %v", input.Phone, err)
		return nil, fmt.Errorf("%w: create customer: %v", ErrCustomerPersist, err)
	}

	uc.logger.Info("CreateBooking: created customer id=%d for phone=%s", created.ID, input.Phone)
	return created, nil
}

// compensate откатывает строки незавершенного бронирования: сначала строки
// услуг, затем само бронирование. Ошибки отката только логируются — вызвавшая
// сторона в любом случае получает исходную ошибку операции.
func (uc *UseCase) compensate(ctx context.Context, bookingID int64) {
	if err := uc.bookingRepo.DeleteServices(ctx, bookingID); err != nil {
		uc.logger.Error("CreateBooking: compensation failed to delete booking services for id=%d: %v", bookingID, err)
	}
	if err := uc.bookingRepo.Delete(ctx, bookingID); err != nil {
		uc.logger.Error("CreateBooking: compensation failed to delete booking id=%d: %v", bookingID, err)
	}
}
