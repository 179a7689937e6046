package list_attempts

import (
	"time"

	listAttempts "github.com/m04kA/SMC-SlotService/internal/usecase/list_attempts"
)

// AttemptResponse запись журнала отправок
type AttemptResponse struct {
	ID        int64  `json:"id"`
	SessionID string `json:"sessionId"`
	VenueID   int64  `json:"venueId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Outcome   string `json:"outcome"`
	BookingID *int64 `json:"bookingId,omitempty"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func FromUseCaseResponse(resp *listAttempts.Response) []AttemptResponse {
	result := make([]AttemptResponse, len(resp.Attempts))
	for i, a := range resp.Attempts {
		result[i] = AttemptResponse{
			ID:        a.ID,
			SessionID: a.SessionID,
			VenueID:   a.VenueID,
			StartTime: a.StartTime.Format(time.RFC3339),
			EndTime:   a.EndTime.Format(time.RFC3339),
			Outcome:   string(a.Outcome),
			BookingID: a.BookingID,
			Message:   a.Message,
			CreatedAt: a.CreatedAt.Format(time.RFC3339),
		}
	}
	return result
}
