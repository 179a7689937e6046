package domain

import "time"

// IntervalKind тип занятого интервала
type IntervalKind string

const (
	IntervalBooking IntervalKind = "booking" // Бронирование игрока
	IntervalBlock   IntervalKind = "block"   // Блокировка владельцем (обслуживание)
)

// BookedInterval занятый интервал [Start, End) в абсолютном времени
// Снапшот с бэкенда, только для чтения - может устареть
type BookedInterval struct {
	Start time.Time
	End   time.Time
	Kind  IntervalKind
}

// Overlaps проверяет пересечение полуоткрытых интервалов [start, end) и [Start, End)
// Касание границ пересечением не считается
func (b BookedInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}

// IsValid возвращает true, если интервал непустой
func (b BookedInterval) IsValid() bool {
	return b.Start.Before(b.End)
}
