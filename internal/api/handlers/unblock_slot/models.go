package unblock_slot

// UnblockSlotRequest HTTP request model
type UnblockSlotRequest struct {
	Date     string `json:"date"`     // "2026-09-15"
	TimeSlot string `json:"timeSlot"` // "10:00"
}
