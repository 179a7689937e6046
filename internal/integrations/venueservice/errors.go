package venueservice

import (
	"errors"
	"fmt"
)

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("venueservice client: venue not found")

	// ErrRejected возвращается, когда бэкенд отклонил бронирование или блокировку
	// (например, слот уже занят другим пользователем)
	ErrRejected = errors.New("venueservice client: request rejected")

	// ErrUnauthorized возвращается, когда бэкенд не принял токен пользователя
	ErrUnauthorized = errors.New("venueservice client: unauthorized")

	// ErrUnavailable возвращается, когда бэкенд недоступен (сеть, таймаут)
	ErrUnavailable = errors.New("venueservice client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("venueservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("venueservice client: invalid response")
)

// defaultRejectionMessage сообщение, если бэкенд не вернул текст ошибки
const defaultRejectionMessage = "Booking failed"

// RejectedError отказ бэкенда с сообщением, которое показывается пользователю как есть
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", ErrRejected, e.StatusCode, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}
