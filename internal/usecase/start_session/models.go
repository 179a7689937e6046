package start_session

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// Request модель запроса на создание сессии бронирования
type Request struct {
	VenueID int64 // ID площадки
}

// Response модель ответа с новой сессией и сеткой слотов на сегодня
type Response struct {
	Session     *domain.BookingSession
	Slots       []domain.Slot
	DateOptions []time.Time
}
