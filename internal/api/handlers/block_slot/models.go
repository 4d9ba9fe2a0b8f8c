package block_slot

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Date     string `json:"date"`     // "2026-09-15"
	TimeSlot string `json:"timeSlot"` // "10:00"
	Reason   string `json:"reason,omitempty"`
}
