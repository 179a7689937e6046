package submit_booking

import "github.com/m04kA/SMC-SlotService/internal/domain"

// Request модель запроса на отправку бронирования
type Request struct {
	SessionID     string
	Token         string // Bearer токен пользователя, пустой = не авторизован
	TermsAccepted bool
}

// Response модель ответа на успешное бронирование
type Response struct {
	Session     *domain.BookingSession
	BookingID   int64
	PaymentPath string

	// Superseded = true, если выбор сменился, пока бронирование отправлялось:
	// бронь создана, но сессия осталась в новом состоянии
	Superseded bool
}
