package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// SlotState состояние слота в сетке
type SlotState string

const (
	SlotAvailable SlotState = "available"
	SlotBooked    SlotState = "booked"
	SlotPast      SlotState = "past"
)

// Slot часовой слот в сетке (вычисляется, не хранится)
type Slot struct {
	StartTime types.TimeString // Начало по локальному времени площадки
	EndTime   types.TimeString
	StartsAt  time.Time // Абсолютное время начала
	EndsAt    time.Time
	State     SlotState
}

// IsAvailable возвращает true, если слот можно выбрать
func (s *Slot) IsAvailable() bool {
	return s.State == SlotAvailable
}
