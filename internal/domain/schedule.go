package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ScheduleConfig is the recurring weekly template used to generate concrete slots.
// The salon edits a single rule; on save it is replicated to all seven weekday
// rows of working_hours, with Sunday flagged closed by convention.
type ScheduleConfig struct {
	ID                  int64
	SalonID             int64
	Weekday             int // 0 = Sunday .. 6 = Saturday
	IsOpen              bool
	OpenTime            types.TimeString
	CloseTime           types.TimeString
	SlotDurationMinutes int
	BreakStart          *types.TimeString
	BreakEnd            *types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasBreak returns true if a break window is configured
func (c *ScheduleConfig) HasBreak() bool {
	return c.BreakStart != nil && c.BreakEnd != nil
}

// Validate checks the time-ordering invariants of the template:
// open < close and, when a break is present, open <= break_start < break_end <= close.
func (c *ScheduleConfig) Validate() error {
	if err := c.OpenTime.Validate(); err != nil {
		return err
	}
	if err := c.CloseTime.Validate(); err != nil {
		return err
	}
	if !c.OpenTime.IsBefore(c.CloseTime) {
		return ErrScheduleOrder
	}
	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return ErrScheduleDuration
	}
	if c.BreakStart == nil && c.BreakEnd == nil {
		return nil
	}
	if c.BreakStart == nil || c.BreakEnd == nil {
		return ErrScheduleBreak
	}
	if c.BreakStart.IsBefore(c.OpenTime) ||
		!c.BreakStart.IsBefore(*c.BreakEnd) ||
		c.CloseTime.IsBefore(*c.BreakEnd) {
		return ErrScheduleBreak
	}
	return nil
}
