package block_slot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_slot: invalid input data")

	// ErrInvalidTimeRange возвращается, когда диапазон не на границах часов или пустой
	ErrInvalidTimeRange = errors.New("block_slot: invalid time range")

	// ErrUnauthenticated возвращается, когда нет токена владельца или бэкенд его не принял
	ErrUnauthenticated = errors.New("block_slot: unauthenticated")

	// ErrVenueNotFound возвращается, когда площадка не найдена
	ErrVenueNotFound = errors.New("block_slot: venue not found")

	// ErrBlockRejected возвращается, когда бэкенд отказал в блокировке
	ErrBlockRejected = errors.New("block_slot: block rejected")

	// ErrBackendUnavailable возвращается, когда бэкенд бронирований недоступен
	ErrBackendUnavailable = errors.New("block_slot: backend unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_slot: internal error")
)

// RejectedError отказ бэкенда с сообщением, которое показывается владельцу как есть
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBlockRejected, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrBlockRejected
}
