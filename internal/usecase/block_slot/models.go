package block_slot

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Request модель запроса блокировки интервала владельцем
type Request struct {
	VenueID   int64
	Token     string           // Bearer токен владельца
	Date      time.Time        // Берутся только компоненты y/m/d
	StartTime types.TimeString // Начало, на границе часа
	EndTime   types.TimeString // Конец, на границе часа ("24:00" допустимо)
}

// Response модель ответа с созданной блокировкой
type Response struct {
	BlockID  int64
	VenueID  int64
	StartsAt time.Time
	EndsAt   time.Time
	Slots    []domain.Slot // Сетка на дату после блокировки; nil, если снапшот недоступен
}
