package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrOutOfDayRange возвращается, когда результат арифметики выходит за пределы суток
	ErrOutOfDayRange = errors.New("time string is out of day range")
)

// TimeString время суток в формате "HH:MM" (настенное время площадки, без даты и часового пояса)
// Допускается "24:00" как конец суток (например, время закрытия)
type TimeString string

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromHour создает TimeString вида "HH:00"
func NewTimeStringFromHour(hour int) TimeString {
	return TimeString(fmt.Sprintf("%02d:00", hour))
}

// NewTimeStringFromString парсит и валидирует строку "HH:MM"
// Бэкенд отдает время в формате "HH:MM:SS" (тип TIME в postgres) - секунды отбрасываются
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)
	if len(s) == len("15:04:05") && strings.Count(s, ":") == 2 {
		s = s[:len("15:04")]
	}

	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	_, _, err := t.parse()
	return err
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Hour возвращает час (0 для некорректного значения)
func (t TimeString) Hour() int {
	h, _, err := t.parse()
	if err != nil {
		return 0
	}
	return h
}

// Minute возвращает минуты (0 для некорректного значения)
func (t TimeString) Minute() int {
	_, m, err := t.parse()
	if err != nil {
		return 0
	}
	return m
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() int {
	return t.Hour()*minutesPerHour + t.Minute()
}

// AddMinutes прибавляет минуты, результат должен оставаться в пределах [00:00, 24:00]
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	total := t.Minutes() + minutes
	if total < 0 || total > minutesPerDay {
		return "", fmt.Errorf("%w: %s %+d min", ErrOutOfDayRange, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/minutesPerHour, total%minutesPerHour)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Equal возвращает true, если t и other обозначают одно и то же время
func (t TimeString) Equal(other TimeString) bool {
	return t.Minutes() == other.Minutes()
}

// Scan реализует sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}

	parsed, err := NewTimeStringFromString(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func (t TimeString) parse() (int, int, error) {
	s := string(t)
	if len(s) != len("15:04") || s[2] != ':' || !isDigits(s[:2]) || !isDigits(s[3:]) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')

	if hour > 24 || minute >= minutesPerHour || (hour == 24 && minute != 0) {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return hour, minute, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
