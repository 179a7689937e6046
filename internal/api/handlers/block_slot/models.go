package block_slot

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	blockSlot "github.com/m04kA/SMC-SlotService/internal/usecase/block_slot"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// BlockSlotRequest HTTP request model
type BlockSlotRequest struct {
	Date      string `json:"date" validate:"required,date"`      // "2025-06-01"
	StartTime string `json:"startTime" validate:"required,hhmm"` // "10:00"
	EndTime   string `json:"endTime" validate:"required,hhmm"`   // "12:00"
}

// BlockResponse HTTP response model
type BlockResponse struct {
	ID       int64               `json:"id"`
	VenueID  int64               `json:"venueId"`
	StartsAt string              `json:"startsAt"`
	EndsAt   string              `json:"endsAt"`
	Slots    []handlers.SlotView `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BlockSlotRequest) ToUseCaseRequest(venueID int64, token string) (*blockSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &blockSlot.Request{
		VenueID:   venueID,
		Token:     token,
		Date:      date,
		StartTime: types.TimeString(r.StartTime),
		EndTime:   types.TimeString(r.EndTime),
	}, nil
}

func FromUseCaseResponse(resp *blockSlot.Response) *BlockResponse {
	out := &BlockResponse{
		ID:       resp.BlockID,
		VenueID:  resp.VenueID,
		StartsAt: resp.StartsAt.Format(time.RFC3339),
		EndsAt:   resp.EndsAt.Format(time.RFC3339),
	}
	// null в ответе: снапшот недоступен, состояние слотов неизвестно
	if resp.Slots != nil {
		out.Slots = handlers.ToSlotViews(resp.Slots)
	}
	return out
}
