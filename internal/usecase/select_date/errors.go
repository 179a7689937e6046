package select_date

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("select_date: session not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_date: invalid input data")

	// ErrDateInPast возвращается, когда выбранная дата уже прошла по календарю площадки
	ErrDateInPast = errors.New("select_date: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает окно бронирования
	ErrDateTooFarInFuture = errors.New("select_date: date is too far in the future")

	// ErrBackendUnavailable возвращается, когда бэкенд бронирований недоступен
	ErrBackendUnavailable = errors.New("select_date: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_date: internal error")
)
