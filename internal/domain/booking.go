package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// Booking represents a confirmed reservation of a time slot for a customer
type Booking struct {
	ID                   int64
	SalonID              int64
	CustomerID           int64
	BookingDate          time.Time
	StartTime            types.TimeString
	Status               BookingStatus
	TotalPrice           float64
	TotalDurationMinutes int
	Notes                *string
	CancelledAt          *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookingService is a single service line of a booking.
// Price is captured at booking time and never follows later catalog changes.
type BookingService struct {
	ID        int64
	BookingID int64
	ServiceID int64
	Price     float64
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo returns true if the status change is allowed.
// Terminal statuses are final.
func (b *Booking) CanTransitionTo(status BookingStatus) bool {
	if !status.IsValid() {
		return false
	}
	return !b.Status.IsTerminal()
}

// IsValid returns true if the status is one of the known booking statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// IsTerminal returns true if the status ends the active lifecycle of a booking.
// A booking entering a terminal status must release its slot back to available.
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted || s == StatusNoShow
}
