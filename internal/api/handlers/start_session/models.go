package start_session

import (
	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	startSession "github.com/m04kA/SMC-SlotService/internal/usecase/start_session"
)

// StartSessionRequest HTTP request model
type StartSessionRequest struct {
	VenueID int64 `json:"venueId" validate:"gt=0"`
}

// SessionResponse HTTP response model
type SessionResponse struct {
	Session     *handlers.SessionView `json:"session"`
	Slots       []handlers.SlotView   `json:"slots"`
	DateOptions []string              `json:"dateOptions"`
}

func (r *StartSessionRequest) ToUseCaseRequest() *startSession.Request {
	return &startSession.Request{VenueID: r.VenueID}
}

func FromUseCaseResponse(resp *startSession.Response) *SessionResponse {
	return &SessionResponse{
		Session:     handlers.ToSessionView(resp.Session),
		Slots:       handlers.ToSlotViews(resp.Slots),
		DateOptions: handlers.ToDateStrings(resp.DateOptions),
	}
}
