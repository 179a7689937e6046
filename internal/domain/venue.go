package domain

import (
	"time"

	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// OperatingHours часы работы площадки в локальном времени площадки
// Инвариант: Opening < Closing; обеденный перерыв (если есть) лежит внутри [Opening, Closing]
type OperatingHours struct {
	Opening    types.TimeString
	Closing    types.TimeString
	LunchStart *types.TimeString // nil = без перерыва
	LunchEnd   *types.TimeString
}

// HasLunch возвращает true, если задан обеденный перерыв
func (h OperatingHours) HasLunch() bool {
	return h.LunchStart != nil && h.LunchEnd != nil &&
		!h.LunchStart.IsZero() && !h.LunchEnd.IsZero()
}

// Venue площадка, на которой бронируются слоты
type Venue struct {
	ID            int64
	Name          string
	SportCategory string
	Description   string
	Address       string
	PricePerHour  float64 // Только для отображения, в расчете конфликтов не участвует
	Hours         OperatingHours
	Location      *time.Location // Часовой пояс площадки (локальное время площадки - источник истины)
}

// Loc возвращает часовой пояс площадки, UTC если не задан
func (v *Venue) Loc() *time.Location {
	if v.Location == nil {
		return time.UTC
	}
	return v.Location
}

// Today возвращает сегодняшнюю дату (полночь) по календарю площадки
func (v *Venue) Today(now time.Time) time.Time {
	return StartOfDay(now.In(v.Loc()))
}

// StartOfDay обнуляет время, сохраняя дату и часовой пояс
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay проверяет, что две даты относятся к одному календарному дню (по компонентам y/m/d)
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
