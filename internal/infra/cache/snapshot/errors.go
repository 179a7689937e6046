package snapshot

import "errors"

var (
	// ErrCacheMiss возвращается, когда снапшота нет в кеше (или он истек)
	ErrCacheMiss = errors.New("snapshot cache: miss")

	// ErrCache возвращается при ошибках хранилища кеша
	ErrCache = errors.New("snapshot cache: storage error")

	// ErrCorruptEntry возвращается, когда значение в кеше не удалось разобрать
	ErrCorruptEntry = errors.New("snapshot cache: corrupt entry")
)
