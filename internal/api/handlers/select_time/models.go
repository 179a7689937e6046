package select_time

import (
	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	selectTime "github.com/m04kA/SMC-SlotService/internal/usecase/select_time"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// SelectTimeRequest HTTP request model
type SelectTimeRequest struct {
	StartTime string `json:"startTime" validate:"required,hhmm"` // "15:00"
}

// SessionResponse HTTP response model
type SessionResponse struct {
	Session *handlers.SessionView `json:"session"`
	Slots   []handlers.SlotView   `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectTimeRequest) ToUseCaseRequest(sessionID string) (*selectTime.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}
	return &selectTime.Request{SessionID: sessionID, StartTime: startTime}, nil
}

func FromUseCaseResponse(resp *selectTime.Response) *SessionResponse {
	return &SessionResponse{
		Session: handlers.ToSessionView(resp.Session),
		Slots:   handlers.ToSlotViews(resp.Slots),
	}
}
