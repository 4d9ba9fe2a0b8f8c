package slots

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-SalonService/internal/service/slots/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Service сервис ручного управления слотами: чтение расписания,
// блокировка и разблокировка отдельных слотов, массовый сброс
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// GetAvailable возвращает свободные слоты салона на дату (публичная витрина)
func (s *Service) GetAvailable(ctx context.Context, salonID int64, date time.Time) (*models.SlotListResponse, error) {
	slots, err := s.slotRepo.ListAvailableByDate(ctx, salonID, date)
	if err != nil {
		s.logger.Error("GetAvailable: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetAvailable - repository error: %v", ErrInternal, err)
	}

	resp := &models.SlotListResponse{
		Date:  date.Format(domain.DateFormat),
		Slots: make([]models.SlotResponse, 0, len(slots)),
	}
	for _, sl := range slots {
		resp.Slots = append(resp.Slots, models.FromDomainSlot(sl))
	}
	return resp, nil
}

// GetDay возвращает все слоты салона на дату вместе с данными клиентов
// занятых слотов (административное расписание)
func (s *Service) GetDay(ctx context.Context, salonID int64, date time.Time) (*models.DaySlotListResponse, error) {
	slots, err := s.slotRepo.ListDayWithBookings(ctx, salonID, date)
	if err != nil {
		s.logger.Error("GetDay: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: GetDay - repository error: %v", ErrInternal, err)
	}

	resp := &models.DaySlotListResponse{
		Date:  date.Format(domain.DateFormat),
		Slots: make([]models.DaySlotResponse, 0, len(slots)),
	}
	for _, sl := range slots {
		resp.Slots = append(resp.Slots, models.FromDomainSlotWithBooking(sl))
	}
	return resp, nil
}

// Block вручную блокирует свободный слот с указанием причины.
// Занятый слот заблокировать нельзя: бронирование нужно сперва отменить.
// Повторная блокировка уже заблокированного слота — no-op.
func (s *Service) Block(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString, reason string) error {
	s.logger.Info("Block: salon=%d, date=%s, time=%s", salonID, date.Format(domain.DateFormat), timeSlot)

	reason = strings.TrimSpace(reason)
	if len(reason) > domain.MaxBlockReasonLength {
		return fmt.Errorf("%w: reason longer than %d characters", ErrInvalidInput, domain.MaxBlockReasonLength)
	}

	current, err := s.getSlot(ctx, salonID, date, timeSlot, "Block")
	if err != nil {
		return err
	}

	switch current.Status {
	case domain.SlotBooked:
		s.logger.Warn("Block: slot %s %s is booked", date.Format(domain.DateFormat), timeSlot)
		return ErrSlotBooked
	case domain.SlotBlocked:
		return nil
	}

	if err := s.slotRepo.Block(ctx, salonID, date, timeSlot, reason); err != nil {
		// Условное обновление могло проиграть гонку бронированию
		if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
			s.logger.Warn("Block: slot %s %s was taken concurrently", date.Format(domain.DateFormat), timeSlot)
			return ErrSlotBooked
		}
		s.logger.Error("Block: repository error: %v", err)
		return fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Block: slot %s %s blocked", date.Format(domain.DateFormat), timeSlot)
	return nil
}

// Unblock возвращает заблокированный слот в свободные.
// Разблокировка свободного слота — no-op, занятого — ошибка.
func (s *Service) Unblock(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString) error {
	s.logger.Info("Unblock: salon=%d, date=%s, time=%s", salonID, date.Format(domain.DateFormat), timeSlot)

	current, err := s.getSlot(ctx, salonID, date, timeSlot, "Unblock")
	if err != nil {
		return err
	}

	switch current.Status {
	case domain.SlotBooked:
		s.logger.Warn("Unblock: slot %s %s is booked", date.Format(domain.DateFormat), timeSlot)
		return ErrSlotBooked
	case domain.SlotAvailable:
		return nil
	}

	if err := s.slotRepo.Unblock(ctx, salonID, date, timeSlot); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil
		}
		s.logger.Error("Unblock: repository error: %v", err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unblock: slot %s %s released", date.Format(domain.DateFormat), timeSlot)
	return nil
}

// Reset удаляет все свободные и заблокированные слоты салона.
// Слоты с бронированиями операция не трогает никогда — это ключевой
// инвариант безопасности сброса расписания.
func (s *Service) Reset(ctx context.Context, salonID int64) (*models.ResetResponse, error) {
	s.logger.Info("Reset: deleting non-booked slots for salon=%d", salonID)

	deleted, err := s.slotRepo.DeleteNonBooked(ctx, salonID)
	if err != nil {
		s.logger.Error("Reset: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: Reset - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reset: deleted %d slots for salon=%d", deleted, salonID)
	return &models.ResetResponse{Deleted: deleted}, nil
}

func (s *Service) getSlot(ctx context.Context, salonID int64, date time.Time, timeSlot types.TimeString, method string) (*domain.Slot, error) {
	current, err := s.slotRepo.GetByKey(ctx, salonID, date, timeSlot)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("%s: slot %s %s not found for salon=%d", method, date.Format(domain.DateFormat), timeSlot, salonID)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("%s: repository error: %v", method, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return current, nil
}
