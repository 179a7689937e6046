package domain

import "time"

// Параметры слотов
const (
	SlotDurationMinutes = 60
	SlotDuration        = SlotDurationMinutes * time.Minute
)

// Значения по умолчанию для выбора даты
const (
	DefaultDateOptionsDays    = 7 // Сколько дней (начиная с сегодня) предлагаем для выбора
	DefaultAdvanceBookingDays = 7 // 0 = без ограничений
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Лимиты
const (
	MaxBackendMessageLength = 500
	DefaultAttemptsLimit    = 50
	MaxAttemptsLimit        = 500
)
