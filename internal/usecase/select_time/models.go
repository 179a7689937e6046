package select_time

import (
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Request модель запроса выбора времени
type Request struct {
	SessionID string
	StartTime types.TimeString // Начало слота, например "15:00"
}

// Response модель ответа: сессия с выбранным временем и сетка на выбранную дату
type Response struct {
	Session *domain.BookingSession
	Slots   []domain.Slot
}
