package submit_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("submit_booking: session not found")

	// ErrNoTimeSelected возвращается, когда в сессии не выбрано время
	ErrNoTimeSelected = errors.New("submit_booking: no time selected")

	// ErrTermsNotAccepted возвращается, когда пользователь не принял условия
	ErrTermsNotAccepted = errors.New("submit_booking: terms not accepted")

	// ErrUnauthenticated возвращается, когда у пользователя нет токена или бэкенд его не принял
	ErrUnauthenticated = errors.New("submit_booking: unauthenticated")

	// ErrSubmissionInFlight возвращается, когда по сессии уже идет отправка
	ErrSubmissionInFlight = errors.New("submit_booking: submission in flight")

	// ErrSlotNotSelectable возвращается, когда выбранный слот занят или уже начался
	ErrSlotNotSelectable = errors.New("submit_booking: slot is not selectable")

	// ErrSelectionChanged возвращается, когда выбор сменился до начала отправки
	ErrSelectionChanged = errors.New("submit_booking: selection changed")

	// ErrSuperseded возвращается, когда неуспешный результат пришел после смены выбора
	// и был отброшен без изменения сессии
	ErrSuperseded = errors.New("submit_booking: submission superseded")

	// ErrBookingRejected возвращается, когда бэкенд отказал в бронировании
	ErrBookingRejected = errors.New("submit_booking: booking rejected")

	// ErrBackendUnavailable возвращается при сетевой или непредвиденной ошибке бэкенда
	ErrBackendUnavailable = errors.New("submit_booking: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)

// RejectedError отказ бэкенда с сообщением, которое показывается пользователю как есть
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBookingRejected, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrBookingRejected
}

// AuthRequiredError требуется вход: пользователя нужно перенаправить на Redirect
type AuthRequiredError struct {
	Redirect string
}

func (e *AuthRequiredError) Error() string {
	return fmt.Sprintf("%s: redirect to %s", ErrUnauthenticated, e.Redirect)
}

func (e *AuthRequiredError) Unwrap() error {
	return ErrUnauthenticated
}
