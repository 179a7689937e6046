package select_date

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	selectDate "github.com/m04kA/SMC-SlotService/internal/usecase/select_date"
)

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date" validate:"required,date"` // "2025-06-01"
}

// SessionResponse HTTP response model
type SessionResponse struct {
	Session *handlers.SessionView `json:"session"`
	Slots   []handlers.SlotView   `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectDateRequest) ToUseCaseRequest(sessionID string) (*selectDate.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}
	return &selectDate.Request{SessionID: sessionID, Date: date}, nil
}

func FromUseCaseResponse(resp *selectDate.Response) *SessionResponse {
	return &SessionResponse{
		Session: handlers.ToSessionView(resp.Session),
		Slots:   handlers.ToSlotViews(resp.Slots),
	}
}
