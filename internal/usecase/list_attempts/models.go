package list_attempts

import "github.com/m04kA/SMC-SlotService/internal/domain"

// Request модель запроса журнала отправок площадки
type Request struct {
	VenueID int64
	Limit   int // 0 = значение по умолчанию
}

// Response модель ответа
type Response struct {
	Attempts []*domain.BookingAttempt
}
