package update_booking_status

// UpdateBookingStatusRequest HTTP request model
type UpdateBookingStatusRequest struct {
	Status string `json:"status"` // pending | confirmed | cancelled | completed | no_show
}
