package get_slot_grid

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venue_id must be positive", ErrInvalidInput)
	}
	return nil
}
