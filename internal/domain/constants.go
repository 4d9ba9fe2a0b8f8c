package domain

// Default weekly schedule template, used when a salon has not saved one yet
const (
	DefaultOpenTime            = "08:00:00"
	DefaultCloseTime           = "18:00:00"
	DefaultSlotDurationMinutes = 30
	DefaultBreakStart          = "12:00:00"
	DefaultBreakEnd            = "13:00:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MaxNotesLength         = 500
	MaxBlockReasonLength   = 255
	MaxGenerationDays      = 365 // longest allowed generation period
)

// Time format constants
const (
	TimeFormat     = "15:04"       // HH:MM, display form
	TimeFormatFull = "15:04:05"    // HH:MM:SS, storage form
	DateFormat     = "2006-01-02"  // YYYY-MM-DD
)

// WeekdaySunday is the weekday flagged closed when replicating the template
const WeekdaySunday = 0

// CanonicalWeekday is the weekday row treated as the shared weekly template.
// The admin form edits one recurring rule, not seven independent ones.
const CanonicalWeekday = 1 // Monday
