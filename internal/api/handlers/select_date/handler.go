package select_date

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	selectDate "github.com/m04kA/SMC-SlotService/internal/usecase/select_date"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgDateInPast         = "нельзя выбрать прошедшую дату"
	msgDateTooFar         = "дата слишком далеко в будущем"
	msgBackendUnavailable = "сервис бронирований временно недоступен"
)

type Handler struct {
	useCase SelectDateUseCase
	logger  Logger
}

func NewHandler(useCase SelectDateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectDate.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/date - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selectDate.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/date - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, selectDate.ErrDateInPast):
			h.logger.Warn("PUT /sessions/{id}/date - Date in past: session_id=%s, date=%s", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, selectDate.ErrDateTooFarInFuture):
			h.logger.Warn("PUT /sessions/{id}/date - Date too far: session_id=%s, date=%s", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, selectDate.ErrBackendUnavailable):
			h.logger.Error("PUT /sessions/{id}/date - Backend unavailable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /sessions/{id}/date - Failed to select date: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/date - Date selected: session_id=%s, date=%s", sessionID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
