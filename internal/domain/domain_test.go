package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusNoShow.IsTerminal())
}

func TestBooking_CanTransitionTo(t *testing.T) {
	active := &Booking{Status: StatusConfirmed}
	assert.True(t, active.CanTransitionTo(StatusCompleted))
	assert.True(t, active.CanTransitionTo(StatusCancelled))
	assert.False(t, active.CanTransitionTo(BookingStatus("unknown")))

	done := &Booking{Status: StatusCompleted}
	assert.False(t, done.CanTransitionTo(StatusConfirmed))
	assert.False(t, done.CanTransitionTo(StatusCancelled))
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestService_EffectivePrice(t *testing.T) {
	svc := &Service{Price: 100}
	assert.Equal(t, 100.0, svc.EffectivePrice())

	// Акционная цена действует только вместе с активным флагом акции
	svc.PromotionalPrice = ptr.Ptr(80.0)
	assert.Equal(t, 100.0, svc.EffectivePrice())

	svc.OnPromotion = true
	assert.Equal(t, 80.0, svc.EffectivePrice())

	svc.PromotionalPrice = nil
	assert.Equal(t, 100.0, svc.EffectivePrice())
}

func TestScheduleConfig_Validate(t *testing.T) {
	valid := func() *ScheduleConfig {
		return &ScheduleConfig{
			OpenTime:            types.TimeString("08:00:00"),
			CloseTime:           types.TimeString("18:00:00"),
			SlotDurationMinutes: 30,
			BreakStart:          ptr.Ptr(types.TimeString("12:00:00")),
			BreakEnd:            ptr.Ptr(types.TimeString("13:00:00")),
		}
	}

	require.NoError(t, valid().Validate())

	noBreak := valid()
	noBreak.BreakStart, noBreak.BreakEnd = nil, nil
	require.NoError(t, noBreak.Validate())

	inverted := valid()
	inverted.OpenTime, inverted.CloseTime = inverted.CloseTime, inverted.OpenTime
	assert.ErrorIs(t, inverted.Validate(), ErrScheduleOrder)

	tooShort := valid()
	tooShort.SlotDurationMinutes = MinSlotDurationMinutes - 1
	assert.ErrorIs(t, tooShort.Validate(), ErrScheduleDuration)

	halfBreak := valid()
	halfBreak.BreakEnd = nil
	assert.ErrorIs(t, halfBreak.Validate(), ErrScheduleBreak)

	breakBeforeOpen := valid()
	breakBeforeOpen.BreakStart = ptr.Ptr(types.TimeString("07:00:00"))
	assert.ErrorIs(t, breakBeforeOpen.Validate(), ErrScheduleBreak)

	breakAfterClose := valid()
	breakAfterClose.BreakEnd = ptr.Ptr(types.TimeString("19:00:00"))
	assert.ErrorIs(t, breakAfterClose.Validate(), ErrScheduleBreak)

	emptyBreak := valid()
	emptyBreak.BreakEnd = emptyBreak.BreakStart
	assert.ErrorIs(t, emptyBreak.Validate(), ErrScheduleBreak)
}
