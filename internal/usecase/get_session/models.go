package get_session

import "github.com/m04kA/SMC-SlotService/internal/domain"

// Request модель запроса сессии
type Request struct {
	SessionID string
}

// Response модель ответа: сессия и сетка слотов на выбранную дату
type Response struct {
	Session *domain.BookingSession
	Slots   []domain.Slot
}
