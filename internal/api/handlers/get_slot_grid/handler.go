package get_slot_grid

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/domain"
	getSlotGrid "github.com/m04kA/SMC-SlotService/internal/usecase/get_slot_grid"
)

const (
	msgInvalidVenueID     = "некорректный ID площадки"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgVenueNotFound      = "площадка не найдена"
	msgBackendUnavailable = "сервис бронирований временно недоступен"
)

type Handler struct {
	useCase GetSlotGridUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/slots
// Query params: date (optional, YYYY-MM-DD, по умолчанию сегодня по календарю площадки)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		h.logger.Warn("GET /venues/{id}/slots - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(venueID, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /venues/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getSlotGrid.ErrInvalidInput):
			h.logger.Warn("GET /venues/{id}/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidVenueID)

		case errors.Is(err, getSlotGrid.ErrVenueNotFound):
			h.logger.Warn("GET /venues/{id}/slots - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, getSlotGrid.ErrBackendUnavailable):
			h.logger.Error("GET /venues/{id}/slots - Backend unavailable: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /venues/{id}/slots - Failed to build slot grid: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /venues/{id}/slots - Slot grid built: venue_id=%d, date=%s, slots_count=%d",
		venueID, result.Date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
