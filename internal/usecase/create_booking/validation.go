package create_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if strings.TrimSpace(req.Customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Customer.Phone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return ErrServicesNotFound
	}
	seen := make(map[int64]struct{}, len(req.ServiceIDs))
	for _, id := range req.ServiceIDs {
		if id <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate serviceID %d", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
