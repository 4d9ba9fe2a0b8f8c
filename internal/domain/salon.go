package domain

import "time"

// Salon is the business entity that owns services, slots and bookings.
// Every core operation is scoped by an explicit salon identifier; the core
// never resolves its own tenant implicitly.
type Salon struct {
	ID      int64
	Name    string
	Address *string
	Phone   *string
	Email   *string
	Active  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
