package get_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	getSession "github.com/m04kA/SMC-SlotService/internal/usecase/get_session"
)

const (
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgBackendUnavailable = "сервис бронирований временно недоступен"
)

// SessionResponse HTTP response model
type SessionResponse struct {
	Session *handlers.SessionView `json:"session"`
	Slots   []handlers.SlotView   `json:"slots"`
}

type Handler struct {
	useCase GetSessionUseCase
	logger  Logger
}

func NewHandler(useCase GetSessionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &getSession.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, getSession.ErrSessionNotFound):
			h.logger.Warn("GET /sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getSession.ErrBackendUnavailable):
			h.logger.Error("GET /sessions/{id} - Backend unavailable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &SessionResponse{
		Session: handlers.ToSessionView(result.Session),
		Slots:   handlers.ToSlotViews(result.Slots),
	})
}
