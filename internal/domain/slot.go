package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// SlotStatus represents the status of a time slot
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBlocked   SlotStatus = "blocked"
	SlotBooked    SlotStatus = "booked"
)

// Slot represents a single bookable time unit on a given date for a salon.
// At most one slot exists per (salon_id, slot_date, time_slot).
//
// Allowed transitions:
//   - available -> booked  (only via the booking transaction, conditional write)
//   - available -> blocked (manual block)
//   - blocked   -> available (manual unblock)
//   - booked    -> available (release, when the linked booking becomes terminal)
//
// BookingID is set if and only if the status is booked.
type Slot struct {
	ID            int64
	SalonID       int64
	SlotDate      time.Time
	TimeSlot      types.TimeString
	Status        SlotStatus
	BookingID     *int64
	BlockedReason *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot can be booked or blocked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsBooked returns true if the slot is occupied by a booking
func (s *Slot) IsBooked() bool {
	return s.Status == SlotBooked
}

// SlotWithBooking is a slot joined with its booking's customer data.
// Used by the admin schedule view; customer fields are nil for non-booked slots.
type SlotWithBooking struct {
	Slot
	CustomerName  *string
	CustomerPhone *string
}
