package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	submitBooking "github.com/m04kA/SMC-SlotService/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgNoTimeSelected     = "выберите время"
	msgTermsNotAccepted   = "необходимо принять условия бронирования"
	msgUnauthenticated    = "войдите, чтобы забронировать"
	msgSubmissionInFlight = "бронирование уже отправляется"
	msgSlotNotSelectable  = "выбранный слот недоступен"
	msgSelectionChanged   = "выбор изменился, попробуйте снова"
	msgSuperseded         = "выбор изменился, пока бронирование отправлялось"
	msgBackendUnavailable = "сервис бронирований временно недоступен, попробуйте снова"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/submit
// Authorization: Bearer <token> (без токена - 401 с адресом входа)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/submit - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID, middleware.GetToken(r.Context())))
	if err != nil {
		var (
			authErr     *submitBooking.AuthRequiredError
			rejectedErr *submitBooking.RejectedError
		)

		switch {
		case errors.As(err, &authErr):
			h.logger.Warn("POST /sessions/{id}/submit - Unauthenticated: session_id=%s", sessionID)
			handlers.RespondUnauthorized(w, msgUnauthenticated, authErr.Redirect)

		case errors.As(err, &rejectedErr):
			// Сообщение бэкенда показывается пользователю как есть
			h.logger.Warn("POST /sessions/{id}/submit - Booking rejected: session_id=%s, message=%s", sessionID, rejectedErr.Message)
			handlers.RespondConflict(w, rejectedErr.Message)

		case errors.Is(err, submitBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrNoTimeSelected):
			handlers.RespondBadRequest(w, msgNoTimeSelected)

		case errors.Is(err, submitBooking.ErrTermsNotAccepted):
			handlers.RespondBadRequest(w, msgTermsNotAccepted)

		case errors.Is(err, submitBooking.ErrSubmissionInFlight):
			handlers.RespondConflict(w, msgSubmissionInFlight)

		case errors.Is(err, submitBooking.ErrSlotNotSelectable):
			handlers.RespondConflict(w, msgSlotNotSelectable)

		case errors.Is(err, submitBooking.ErrSelectionChanged):
			handlers.RespondConflict(w, msgSelectionChanged)

		case errors.Is(err, submitBooking.ErrSuperseded):
			h.logger.Warn("POST /sessions/{id}/submit - Submission superseded: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSuperseded)

		case errors.Is(err, submitBooking.ErrBackendUnavailable):
			h.logger.Error("POST /sessions/{id}/submit - Backend unavailable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /sessions/{id}/submit - Failed to submit booking: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/submit - Booking created: session_id=%s, booking_id=%d, superseded=%t",
		sessionID, result.BookingID, result.Superseded)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
