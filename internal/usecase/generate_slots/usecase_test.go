package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type mockScheduleRepo struct {
	mock.Mock
}

func (m *mockScheduleRepo) GetWeek(ctx context.Context, salonID int64) ([]*domain.ScheduleConfig, error) {
	args := m.Called(ctx, salonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ScheduleConfig), args.Error(1)
}

type mockSlotRepo struct {
	mock.Mock

	lastBatch []domain.Slot
}

func (m *mockSlotRepo) CreateBatch(ctx context.Context, slots []domain.Slot) (int64, error) {
	m.lastBatch = slots
	args := m.Called(ctx, slots)
	return args.Get(0).(int64), args.Error(1)
}

type mockSalonRepo struct {
	mock.Mock
}

func (m *mockSalonRepo) GetActiveByID(ctx context.Context, id int64) (*domain.Salon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Salon), args.Error(1)
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newUseCase(t *testing.T) (*UseCase, *mockScheduleRepo, *mockSlotRepo, *mockSalonRepo) {
	t.Helper()

	schedules := &mockScheduleRepo{}
	slots := &mockSlotRepo{}
	salons := &mockSalonRepo{}
	uc := NewUseCase(schedules, slots, salons, fakeTxManager{}, nopLogger{})
	return uc, schedules, slots, salons
}

// weekTemplate недельный шаблон 08:00-10:00 с часовыми слотами,
// воскресенье закрыто
func weekTemplate(salonID int64) []*domain.ScheduleConfig {
	week := make([]*domain.ScheduleConfig, 0, 7)
	for weekday := 0; weekday < 7; weekday++ {
		week = append(week, &domain.ScheduleConfig{
			SalonID:             salonID,
			Weekday:             weekday,
			IsOpen:              weekday != domain.WeekdaySunday,
			OpenTime:            types.TimeString("08:00:00"),
			CloseTime:           types.TimeString("10:00:00"),
			SlotDurationMinutes: 60,
		})
	}
	return week
}

func TestExecute_GeneratesSlotsForPeriod(t *testing.T) {
	uc, schedules, slots, salons := newUseCase(t)

	salons.On("GetActiveByID", mock.Anything, int64(1)).Return(&domain.Salon{ID: 1, Active: true}, nil)
	schedules.On("GetWeek", mock.Anything, int64(1)).Return(weekTemplate(1), nil)
	slots.On("CreateBatch", mock.Anything, mock.Anything).Return(int64(4), nil)

	// 2026-09-07 понедельник, 2026-09-08 вторник
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:   1,
		StartDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Generated)
	assert.Equal(t, int64(0), resp.Skipped)

	require.Len(t, slots.lastBatch, 4)
	assert.Equal(t, types.TimeString("08:00:00"), slots.lastBatch[0].TimeSlot)
	assert.Equal(t, types.TimeString("09:00:00"), slots.lastBatch[1].TimeSlot)
	assert.Equal(t, domain.SlotAvailable, slots.lastBatch[0].Status)
}

func TestExecute_SkipsClosedSunday(t *testing.T) {
	uc, schedules, slots, salons := newUseCase(t)

	salons.On("GetActiveByID", mock.Anything, int64(1)).Return(&domain.Salon{ID: 1, Active: true}, nil)
	schedules.On("GetWeek", mock.Anything, int64(1)).Return(weekTemplate(1), nil)
	slots.On("CreateBatch", mock.Anything, mock.Anything).Return(int64(2), nil)

	// 2026-09-06 воскресенье, 2026-09-07 понедельник
	resp, err := uc.Execute(context.Background(), &Request{
		SalonID:   1,
		StartDate: time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Generated)

	// Батч содержит только слоты понедельника
	require.Len(t, slots.lastBatch, 2)
	for _, s := range slots.lastBatch {
		assert.Equal(t, time.Monday, s.SlotDate.Weekday())
	}
}

func TestExecute_ExcludesBreakWindow(t *testing.T) {
	uc, schedules, slots, salons := newUseCase(t)

	week := make([]*domain.ScheduleConfig, 0, 7)
	for weekday := 0; weekday < 7; weekday++ {
		week = append(week, &domain.ScheduleConfig{
			SalonID:             1,
			Weekday:             weekday,
			IsOpen:              true,
			OpenTime:            types.TimeString("11:00:00"),
			CloseTime:           types.TimeString("14:00:00"),
			SlotDurationMinutes: 30,
			BreakStart:          ptr.Ptr(types.TimeString("12:00:00")),
			BreakEnd:            ptr.Ptr(types.TimeString("13:00:00")),
		})
	}

	salons.On("GetActiveByID", mock.Anything, int64(1)).Return(&domain.Salon{ID: 1, Active: true}, nil)
	schedules.On("GetWeek", mock.Anything, int64(1)).Return(week, nil)
	slots.On("CreateBatch", mock.Anything, mock.Anything).Return(int64(4), nil)

	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, StartDate: day, EndDate: day})
	require.NoError(t, err)

	got := make([]types.TimeString, 0, len(slots.lastBatch))
	for _, s := range slots.lastBatch {
		got = append(got, s.TimeSlot)
	}

	// 12:00 и 12:30 выпадают, 13:00 (конец перерыва) генерируется
	assert.Equal(t, []types.TimeString{"11:00:00", "11:30:00", "13:00:00", "13:30:00"}, got)
}

func TestExecute_ReportsSkippedAsAlreadyExisting(t *testing.T) {
	uc, schedules, slots, salons := newUseCase(t)

	salons.On("GetActiveByID", mock.Anything, int64(1)).Return(&domain.Salon{ID: 1, Active: true}, nil)
	schedules.On("GetWeek", mock.Anything, int64(1)).Return(weekTemplate(1), nil)

	// Повторная генерация того же дня: ON CONFLICT вставил ноль строк
	slots.On("CreateBatch", mock.Anything, mock.Anything).Return(int64(0), nil)

	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{SalonID: 1, StartDate: day, EndDate: day})

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Generated)
	assert.Equal(t, int64(2), resp.Skipped)
}

func TestExecute_InvalidPeriod(t *testing.T) {
	uc, _, _, _ := newUseCase(t)

	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{
		SalonID:   1,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, -1),
	})
	require.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = uc.Execute(context.Background(), &Request{
		SalonID:   1,
		StartDate: start,
		EndDate:   start.AddDate(0, 0, domain.MaxGenerationDays+1),
	})
	require.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestExecute_ScheduleNotConfigured(t *testing.T) {
	uc, schedules, _, salons := newUseCase(t)

	salons.On("GetActiveByID", mock.Anything, int64(1)).Return(&domain.Salon{ID: 1, Active: true}, nil)
	schedules.On("GetWeek", mock.Anything, int64(1)).Return(nil, scheduleRepo.ErrConfigNotFound)

	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{SalonID: 1, StartDate: day, EndDate: day})
	require.ErrorIs(t, err, ErrScheduleNotConfigured)
}

func TestExpandDay_PartialSlotDoesNotFit(t *testing.T) {
	cfg := &domain.ScheduleConfig{
		IsOpen:              true,
		OpenTime:            types.TimeString("08:00:00"),
		CloseTime:           types.TimeString("09:45:00"),
		SlotDurationMinutes: 30,
	}

	slots, err := expandDay(cfg, 1, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	// Последний полный слот 09:00-09:30; 09:30-10:00 не помещается до закрытия
	got := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		got = append(got, s.TimeSlot)
	}
	assert.Equal(t, []types.TimeString{"08:00:00", "08:30:00", "09:00:00"}, got)
}
