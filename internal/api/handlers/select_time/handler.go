package select_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	selectTime "github.com/m04kA/SMC-SlotService/internal/usecase/select_time"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgSlotNotSelectable  = "выбранный слот недоступен"
	msgSubmissionInFlight = "бронирование уже отправляется"
	msgSelectionChanged   = "выбор изменился, попробуйте снова"
	msgBackendUnavailable = "сервис бронирований временно недоступен"
)

type Handler struct {
	useCase SelectTimeUseCase
	logger  Logger
}

func NewHandler(useCase SelectTimeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/time - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(sessionID)
	if err != nil {
		h.logger.Warn("PUT /sessions/{id}/time - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, selectTime.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/time - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selectTime.ErrInvalidInput):
			h.logger.Warn("PUT /sessions/{id}/time - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, selectTime.ErrSlotNotSelectable):
			h.logger.Warn("PUT /sessions/{id}/time - Slot not selectable: session_id=%s, time=%s", sessionID, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotSelectable)

		case errors.Is(err, selectTime.ErrSubmissionInFlight):
			h.logger.Warn("PUT /sessions/{id}/time - Submission in flight: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSubmissionInFlight)

		case errors.Is(err, selectTime.ErrSelectionChanged):
			h.logger.Warn("PUT /sessions/{id}/time - Selection changed: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSelectionChanged)

		case errors.Is(err, selectTime.ErrBackendUnavailable):
			h.logger.Error("PUT /sessions/{id}/time - Backend unavailable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /sessions/{id}/time - Failed to select time: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/time - Time selected: session_id=%s, time=%s", sessionID, req.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
