package slotengine

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

var (
	// ErrInvalidHours возвращается, когда часы работы площадки нарушают инварианты
	ErrInvalidHours = errors.New("slotengine: invalid operating hours")
)

// ValidateHours проверяет инварианты часов работы:
// opening <= closing; если есть обед - opening <= lunchStart < lunchEnd <= closing
// opening == closing допустимо (пустая сетка)
func ValidateHours(hours domain.OperatingHours) error {
	if err := hours.Opening.Validate(); err != nil {
		return fmt.Errorf("%w: opening time: %v", ErrInvalidHours, err)
	}
	if err := hours.Closing.Validate(); err != nil {
		return fmt.Errorf("%w: closing time: %v", ErrInvalidHours, err)
	}
	if hours.Closing.IsBefore(hours.Opening) {
		return fmt.Errorf("%w: closing %s is before opening %s", ErrInvalidHours, hours.Closing, hours.Opening)
	}

	if !hours.HasLunch() {
		return nil
	}

	if err := hours.LunchStart.Validate(); err != nil {
		return fmt.Errorf("%w: lunch start: %v", ErrInvalidHours, err)
	}
	if err := hours.LunchEnd.Validate(); err != nil {
		return fmt.Errorf("%w: lunch end: %v", ErrInvalidHours, err)
	}
	if !hours.LunchStart.IsBefore(*hours.LunchEnd) {
		return fmt.Errorf("%w: lunch start %s must be before lunch end %s", ErrInvalidHours, *hours.LunchStart, *hours.LunchEnd)
	}
	if hours.LunchStart.IsBefore(hours.Opening) || hours.LunchEnd.IsAfter(hours.Closing) {
		return fmt.Errorf("%w: lunch %s-%s is outside %s-%s", ErrInvalidHours,
			*hours.LunchStart, *hours.LunchEnd, hours.Opening, hours.Closing)
	}

	return nil
}

// DateOptions возвращает days календарных дней, начиная с сегодняшнего по календарю площадки
func DateOptions(now time.Time, days int, loc *time.Location) []time.Time {
	if loc == nil {
		loc = now.Location()
	}
	if days <= 0 {
		return []time.Time{}
	}

	today := domain.StartOfDay(now.In(loc))
	dates := make([]time.Time, days)
	for i := 0; i < days; i++ {
		dates[i] = today.AddDate(0, 0, i)
	}
	return dates
}
