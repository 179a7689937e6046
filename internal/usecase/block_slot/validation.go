package block_slot

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venue_id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidInput, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidInput, err)
	}

	if req.StartTime.Minute() != 0 || req.EndTime.Minute() != 0 {
		return fmt.Errorf("%w: %s-%s must be on whole hours", ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: start %s must be before end %s", ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}

	return nil
}
