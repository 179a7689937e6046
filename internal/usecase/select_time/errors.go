package select_time

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("select_time: session not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("select_time: invalid input data")

	// ErrSlotNotSelectable возвращается, когда слот занят, уже начался или не входит в сетку площадки
	ErrSlotNotSelectable = errors.New("select_time: slot is not selectable")

	// ErrSubmissionInFlight возвращается, когда по сессии идет отправка бронирования
	ErrSubmissionInFlight = errors.New("select_time: submission in flight")

	// ErrSelectionChanged возвращается, когда дата сменилась во время проверки слота
	ErrSelectionChanged = errors.New("select_time: selection changed concurrently")

	// ErrBackendUnavailable возвращается, когда бэкенд бронирований недоступен
	ErrBackendUnavailable = errors.New("select_time: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_time: internal error")
)
