package domain

import "time"

// Customer represents a salon customer.
// Customers are deduplicated by phone number: a repeat customer reuses
// one record across bookings.
type Customer struct {
	ID    int64
	Name  string
	Phone string
	Email *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
