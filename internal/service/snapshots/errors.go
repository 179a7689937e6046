package snapshots

import "errors"

var (
	// ErrVenueNotFound возвращается, когда площадка не найдена в бэкенде
	ErrVenueNotFound = errors.New("snapshots service: venue not found")

	// ErrBackendUnavailable возвращается, когда бэкенд недоступен или ответил некорректно
	ErrBackendUnavailable = errors.New("snapshots service: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("snapshots service: internal error")
)
