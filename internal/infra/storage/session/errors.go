package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session repository: session not found")

	// ErrSessionExists возвращается при повторном создании сессии с тем же ID
	ErrSessionExists = errors.New("session repository: session already exists")
)
