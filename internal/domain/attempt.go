package domain

import (
	"time"
	"unicode/utf8"
)

// AttemptOutcome результат отправки бронирования
type AttemptOutcome string

const (
	AttemptConfirmed  AttemptOutcome = "confirmed"
	AttemptRejected   AttemptOutcome = "rejected"   // Бэкенд отказал (например, слот уже занят)
	AttemptFailed     AttemptOutcome = "failed"     // Сетевая или непредвиденная ошибка
	AttemptSuperseded AttemptOutcome = "superseded" // Выбор изменился, пока отправка была в процессе
)

// BookingAttempt запись журнала отправок бронирования
type BookingAttempt struct {
	ID              int64
	SessionID       string
	SubmissionToken string
	VenueID         int64
	StartTime       time.Time
	EndTime         time.Time
	Outcome         AttemptOutcome
	BookingID       *int64
	Message         string
	CreatedAt       time.Time
}

// TruncateMessage обрезает сообщение бэкенда до MaxBackendMessageLength байт
// Обрезка идет по границе символа, результат остается валидным UTF-8
func TruncateMessage(msg string) string {
	if len(msg) <= MaxBackendMessageLength {
		return msg
	}

	cut := MaxBackendMessageLength
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}
