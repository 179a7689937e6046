package get_session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("get_session: session not found")

	// ErrBackendUnavailable возвращается, когда бэкенд бронирований недоступен
	ErrBackendUnavailable = errors.New("get_session: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_session: internal error")
)
