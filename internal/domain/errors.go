package domain

import "errors"

var (
	// ErrScheduleOrder is returned when open_time is not strictly before close_time
	ErrScheduleOrder = errors.New("domain: open time must be before close time")

	// ErrScheduleDuration is returned when the slot duration is out of bounds
	ErrScheduleDuration = errors.New("domain: slot duration out of allowed range")

	// ErrScheduleBreak is returned when the break window is malformed or outside working hours
	ErrScheduleBreak = errors.New("domain: invalid break window")
)
