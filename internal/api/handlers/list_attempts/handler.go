package list_attempts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	listAttempts "github.com/m04kA/SMC-SlotService/internal/usecase/list_attempts"
)

const (
	msgInvalidVenueID = "некорректный ID площадки"
	msgInvalidLimit   = "некорректный limit"
)

type Handler struct {
	useCase ListAttemptsUseCase
	logger  Logger
}

func NewHandler(useCase ListAttemptsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/attempts
// Query params: limit (optional, по умолчанию 50, максимум 500)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/attempts - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			h.logger.Warn("GET /venues/{id}/attempts - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &listAttempts.Request{VenueID: venueID, Limit: limit})
	if err != nil {
		if errors.Is(err, listAttempts.ErrInvalidInput) {
			h.logger.Warn("GET /venues/{id}/attempts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		h.logger.Error("GET /venues/{id}/attempts - Failed to list attempts: venue_id=%d, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
