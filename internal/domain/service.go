package domain

import "time"

// Service represents a catalog service offered by a salon
type Service struct {
	ID               int64
	SalonID          int64
	Name             string
	Description      string
	Price            float64
	DurationMinutes  int
	Category         string
	Active           bool
	Popular          bool
	OnPromotion      bool
	PromotionalPrice *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectivePrice returns the price a booking captures for this service.
// The promotional price wins while a promotion is running.
func (s *Service) EffectivePrice() float64 {
	if s.OnPromotion && s.PromotionalPrice != nil {
		return *s.PromotionalPrice
	}
	return s.Price
}
