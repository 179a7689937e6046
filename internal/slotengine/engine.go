// Package slotengine вычисляет сетку часовых слотов площадки и классифицирует каждый слот
// как свободный, занятый или прошедший. Пакет не делает I/O и не возвращает ошибок
// на пути классификации - это чистые функции от входных данных.
package slotengine

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// GenerateSlots генерирует начала слотов по часам работы площадки
// Один слот на каждый час в [openingHour, closingHour), кроме часов обеда [lunchStartHour, lunchEndHour)
// Учитывается только час (минуты отбрасываются), слоты всегда по 60 минут
func GenerateSlots(hours domain.OperatingHours) []types.TimeString {
	openHour := hours.Opening.Hour()
	closeHour := hours.Closing.Hour()

	lunchStart, lunchEnd := -1, -1
	if hours.HasLunch() {
		lunchStart = hours.LunchStart.Hour()
		lunchEnd = hours.LunchEnd.Hour()
	}

	slots := make([]types.TimeString, 0)
	for h := openHour; h < closeHour; h++ {
		if lunchStart != -1 && h >= lunchStart && h < lunchEnd {
			continue
		}
		slots = append(slots, types.NewTimeStringFromHour(h))
	}

	return slots
}

// SlotBounds вычисляет абсолютные границы слота [start, start+1h)
// Дата берется по компонентам y/m/d (а не через парсинг строки "дата+время"),
// время - по часам и минутам slotStart в часовом поясе площадки
func SlotBounds(date time.Time, slotStart types.TimeString, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = date.Location()
	}

	y, m, d := date.Date()
	start := time.Date(y, m, d, slotStart.Hour(), slotStart.Minute(), 0, 0, loc)
	return start, start.Add(domain.SlotDuration)
}

// SlotExists проверяет, что время начала слота существует на дату в часовом поясе площадки
// В день перехода на летнее время пропущенный час (например, 02:00) нормализуется
// в следующий и совпал бы со следующим слотом, такой слот не существует
func SlotExists(date time.Time, slotStart types.TimeString, loc *time.Location) bool {
	start, _ := SlotBounds(date, slotStart, loc)
	return start.Hour() == slotStart.Hour() && start.Minute() == slotStart.Minute()
}

// IsSlotBooked возвращает true, если слот пересекается хотя бы с одним занятым интервалом
// Пересечение полуоткрытое: slotStart < interval.End && slotEnd > interval.Start
func IsSlotBooked(date time.Time, slotStart types.TimeString, intervals []domain.BookedInterval, loc *time.Location) bool {
	start, end := SlotBounds(date, slotStart, loc)

	for _, interval := range intervals {
		if interval.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// IsSlotPast возвращает true, если слот уже начался
// Сравнение дня идет по календарю площадки: любой будущий день - всегда false,
// любой прошедший день - всегда true, для сегодняшнего начало слота <= now считается прошедшим
func IsSlotPast(date time.Time, slotStart types.TimeString, now time.Time, loc *time.Location) bool {
	if loc == nil {
		loc = date.Location()
	}

	today := domain.StartOfDay(now.In(loc))
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)

	switch {
	case day.After(today):
		return false
	case day.Before(today):
		return true
	}

	start, _ := SlotBounds(date, slotStart, loc)
	return !start.After(now)
}

// IsSlotSelectable возвращает true, если слот свободен и еще не начался
func IsSlotSelectable(
	date time.Time,
	slotStart types.TimeString,
	intervals []domain.BookedInterval,
	now time.Time,
	loc *time.Location,
) bool {
	return SlotExists(date, slotStart, loc) &&
		!IsSlotBooked(date, slotStart, intervals, loc) &&
		!IsSlotPast(date, slotStart, now, loc)
}

// IsSlotOffered проверяет, что время совпадает с одним из сгенерированных слотов площадки
func IsSlotOffered(hours domain.OperatingHours, slotStart types.TimeString) bool {
	if slotStart.Validate() != nil {
		return false
	}

	for _, s := range GenerateSlots(hours) {
		if s.Equal(slotStart) {
			return true
		}
	}
	return false
}

// Classify строит сетку слотов на дату с состоянием каждого слота
// Если слот одновременно прошел и занят - он считается прошедшим
func Classify(date time.Time, venue *domain.Venue, intervals []domain.BookedInterval, now time.Time) []domain.Slot {
	loc := venue.Loc()
	starts := GenerateSlots(venue.Hours)

	result := make([]domain.Slot, 0, len(starts))
	for _, slotStart := range starts {
		if !SlotExists(date, slotStart, loc) {
			continue
		}
		startsAt, endsAt := SlotBounds(date, slotStart, loc)

		state := domain.SlotAvailable
		switch {
		case IsSlotPast(date, slotStart, now, loc):
			state = domain.SlotPast
		case IsSlotBooked(date, slotStart, intervals, loc):
			state = domain.SlotBooked
		}

		result = append(result, domain.Slot{
			StartTime: slotStart,
			EndTime:   types.NewTimeStringFromHour(slotStart.Hour() + 1),
			StartsAt:  startsAt,
			EndsAt:    endsAt,
			State:     state,
		})
	}

	return result
}
