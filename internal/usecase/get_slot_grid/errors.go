package get_slot_grid

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("get_slot_grid: venue not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_slot_grid: invalid input data")

	// ErrBackendUnavailable возвращается, когда бэкенд бронирований недоступен
	ErrBackendUnavailable = errors.New("get_slot_grid: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_slot_grid: internal error")
)
