package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Service сервис недельного шаблона расписания.
//
// Администратор редактирует одно повторяющееся правило, а не семь независимых
// дней: при сохранении правило тиражируется на все семь строк недели,
// воскресенье по соглашению помечается выходным. Каноническая строка шаблона —
// понедельник.
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Save валидирует и целиком перезаписывает недельный шаблон салона
func (s *Service) Save(ctx context.Context, req *models.SaveScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("SaveSchedule: salon=%d, open=%s, close=%s, duration=%d",
		req.SalonID, req.OpenTime, req.CloseTime, req.SlotDurationMinutes)

	if req.SalonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	template, err := s.toDomainTemplate(req)
	if err != nil {
		s.logger.Warn("SaveSchedule: failed to parse times: %v", err)
		return nil, err
	}

	if err := template.Validate(); err != nil {
		s.logger.Warn("SaveSchedule: invalid schedule for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}

	// Тиражируем правило на неделю: одна строка на каждый день
	week := make([]domain.ScheduleConfig, 0, 7)
	for weekday := 0; weekday < 7; weekday++ {
		day := *template
		day.Weekday = weekday
		day.IsOpen = weekday != domain.WeekdaySunday
		week = append(week, day)
	}

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceWeek(txCtx, req.SalonID, week)
	})
	if err != nil {
		s.logger.Error("SaveSchedule: failed to replace week for salon=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: SaveSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveSchedule: successfully saved schedule for salon=%d", req.SalonID)
	return models.FromDomainConfig(template), nil
}

// Load возвращает шаблон салона. Отсутствие сохраненного шаблона — не ошибка:
// возвращается документированный шаблон по умолчанию (08:00-18:00, слот 30
// минут, перерыв 12:00-13:00).
func (s *Service) Load(ctx context.Context, salonID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("LoadSchedule: salon=%d", salonID)

	if salonID <= 0 {
		return nil, fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	cfg, err := s.scheduleRepo.GetByWeekday(ctx, salonID, domain.CanonicalWeekday)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrConfigNotFound) {
			s.logger.Info("LoadSchedule: salon=%d has no saved schedule, using defaults", salonID)
			return models.FromDomainConfig(defaultTemplate(salonID)), nil
		}
		s.logger.Error("LoadSchedule: repository error for salon=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: LoadSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

func (s *Service) toDomainTemplate(req *models.SaveScheduleRequest) (*domain.ScheduleConfig, error) {
	openTime, err := types.NewTimeStringFromString(req.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid open time: %v", ErrInvalidSchedule, err)
	}
	closeTime, err := types.NewTimeStringFromString(req.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid close time: %v", ErrInvalidSchedule, err)
	}

	template := &domain.ScheduleConfig{
		SalonID:             req.SalonID,
		Weekday:             domain.CanonicalWeekday,
		IsOpen:              true,
		OpenTime:            openTime,
		CloseTime:           closeTime,
		SlotDurationMinutes: req.SlotDurationMinutes,
	}

	if req.BreakStart != nil {
		breakStart, err := types.NewTimeStringFromString(*req.BreakStart)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid break start: %v", ErrInvalidSchedule, err)
		}
		template.BreakStart = &breakStart
	}
	if req.BreakEnd != nil {
		breakEnd, err := types.NewTimeStringFromString(*req.BreakEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid break end: %v", ErrInvalidSchedule, err)
		}
		template.BreakEnd = &breakEnd
	}

	return template, nil
}

func defaultTemplate(salonID int64) *domain.ScheduleConfig {
	breakStart := types.TimeString(domain.DefaultBreakStart)
	breakEnd := types.TimeString(domain.DefaultBreakEnd)

	return &domain.ScheduleConfig{
		SalonID:             salonID,
		Weekday:             domain.CanonicalWeekday,
		IsOpen:              true,
		OpenTime:            types.TimeString(domain.DefaultOpenTime),
		CloseTime:           types.TimeString(domain.DefaultCloseTime),
		SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
		BreakStart:          &breakStart,
		BreakEnd:            &breakEnd,
	}
}
