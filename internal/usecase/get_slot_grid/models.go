package get_slot_grid

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// Request модель запроса сетки слотов
type Request struct {
	VenueID int64      // ID площадки
	Date    *time.Time // Дата (компоненты y/m/d), nil = сегодня по календарю площадки
}

// Response модель ответа с сеткой слотов
type Response struct {
	Venue       *domain.Venue
	Date        time.Time     // Дата сетки (полночь по времени площадки)
	Slots       []domain.Slot // Слоты в порядке возрастания времени
	DateOptions []time.Time   // Даты, доступные для выбора
}
