package block_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	blockSlot "github.com/m04kA/SMC-SlotService/internal/usecase/block_slot"
)

const (
	msgInvalidVenueID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeRange   = "интервал должен начинаться и заканчиваться на границе часа"
	msgUnauthenticated    = "требуется токен владельца площадки"
	msgVenueNotFound      = "площадка не найдена"
	msgBackendUnavailable = "сервис бронирований временно недоступен"
)

type Handler struct {
	useCase BlockSlotUseCase
	logger  Logger
}

func NewHandler(useCase BlockSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/blocks
// Authorization: Bearer <owner token>
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil || venueID <= 0 {
		h.logger.Warn("POST /venues/{id}/blocks - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req BlockSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /venues/{id}/blocks - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(venueID, middleware.GetToken(r.Context()))
	if err != nil {
		h.logger.Warn("POST /venues/{id}/blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var rejectedErr *blockSlot.RejectedError

		switch {
		case errors.As(err, &rejectedErr):
			h.logger.Warn("POST /venues/{id}/blocks - Block rejected: venue_id=%d, message=%s", venueID, rejectedErr.Message)
			handlers.RespondConflict(w, rejectedErr.Message)

		case errors.Is(err, blockSlot.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, blockSlot.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, blockSlot.ErrUnauthenticated):
			h.logger.Warn("POST /venues/{id}/blocks - Unauthenticated: venue_id=%d", venueID)
			handlers.RespondError(w, http.StatusUnauthorized, msgUnauthenticated)

		case errors.Is(err, blockSlot.ErrVenueNotFound):
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, blockSlot.ErrBackendUnavailable):
			h.logger.Error("POST /venues/{id}/blocks - Backend unavailable: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /venues/{id}/blocks - Failed to create block: venue_id=%d, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/blocks - Block created: venue_id=%d, block_id=%d", venueID, result.BlockID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
