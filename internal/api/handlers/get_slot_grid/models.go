package get_slot_grid

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	getSlotGrid "github.com/m04kA/SMC-SlotService/internal/usecase/get_slot_grid"
)

// SlotGridResponse HTTP response model
type SlotGridResponse struct {
	Venue       *handlers.VenueView `json:"venue"`
	Date        string              `json:"date"`
	Slots       []handlers.SlotView `json:"slots"`
	DateOptions []string            `json:"dateOptions"`
}

// ToUseCaseRequest создает запрос use case из параметров; пустая дата = сегодня
func ToUseCaseRequest(venueID int64, dateStr string) (*getSlotGrid.Request, error) {
	req := &getSlotGrid.Request{VenueID: venueID}
	if dateStr == "" {
		return req, nil
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}
	req.Date = &date
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotGrid.Response) *SlotGridResponse {
	return &SlotGridResponse{
		Venue:       handlers.ToVenueView(resp.Venue),
		Date:        resp.Date.Format(domain.DateFormat),
		Slots:       handlers.ToSlotViews(resp.Slots),
		DateOptions: handlers.ToDateStrings(resp.DateOptions),
	}
}
