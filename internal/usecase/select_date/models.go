package select_date

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// Request модель запроса выбора даты
type Request struct {
	SessionID string
	Date      time.Time // Берутся только компоненты y/m/d
}

// Response модель ответа: сессия со сброшенным временем и сетка на новую дату
type Response struct {
	Session *domain.BookingSession
	Slots   []domain.Slot
}
