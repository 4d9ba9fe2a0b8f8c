package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SalonService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований после их создания:
// чтение, смена статуса, отмена
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

// GetByID возвращает бронирование вместе со строками услуг
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	lines, err := s.bookingRepo.GetServices(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to load service lines for booking=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - load service lines: %v", ErrInternal, err)
	}

	resp := models.FromDomainBooking(booking, lines)
	return &resp, nil
}

// ListBySalon возвращает бронирования салона, опционально на конкретную дату
func (s *Service) ListBySalon(ctx context.Context, salonID int64, date *time.Time) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.ListBySalon(ctx, salonID, date)
	if err != nil {
		s.logger.Error("ListBySalon: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ListBySalon - repository error: %v", ErrInternal, err)
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, models.FromDomainBooking(b, nil))
	}
	return resp, nil
}

// UpdateStatus переводит бронирование в новый статус.
// При переходе в конечный статус слот освобождается: ошибка освобождения
// логируется, но смену статуса не откатывает, слот добирается вручную
// через сброс расписания.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking=%d -> %s", id, status)

	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if booking.Status == status {
		resp := models.FromDomainBooking(booking, nil)
		return &resp, nil
	}

	if !booking.CanTransitionTo(status) {
		s.logger.Warn("UpdateStatus: transition %s -> %s rejected for booking=%d", booking.Status, status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: failed to update booking=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - update booking: %v", ErrInternal, err)
	}

	if status.IsTerminal() {
		s.releaseSlot(ctx, id)
	}

	booking.Status = status
	if status == domain.StatusCancelled {
		now := time.Now()
		booking.CancelledAt = &now
	}

	resp := models.FromDomainBooking(booking, nil)
	return &resp, nil
}

// Cancel отменяет бронирование. Краткая форма UpdateStatus для клиентского
// сценария отмены: разрешена только из активных статусов.
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking=%d in status %s cannot be cancelled", id, booking.Status)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.StatusCancelled)
	}

	return s.UpdateStatus(ctx, id, domain.StatusCancelled)
}

// releaseSlot освобождает слот завершенного бронирования.
// Отсутствие занятого слота не считается ошибкой: слот мог быть
// удален сбросом расписания раньше.
func (s *Service) releaseSlot(ctx context.Context, bookingID int64) {
	err := s.slotRepo.Release(ctx, bookingID)
	if err == nil {
		s.logger.Info("releaseSlot: slot released for booking=%d", bookingID)
		return
	}
	if errors.Is(err, slotRepo.ErrSlotNotFound) {
		s.logger.Info("releaseSlot: no booked slot for booking=%d", bookingID)
		return
	}
	s.logger.Error("releaseSlot: failed to release slot for booking=%d: %v", bookingID, err)
}
