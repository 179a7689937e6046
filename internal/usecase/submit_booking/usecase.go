package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/session"
	venueClient "github.com/m04kA/SMC-SlotService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-SlotService/internal/slotengine"
)

const msgBackendUnavailable = "Booking service is unavailable, please try again"

// UseCase use case для отправки бронирования выбранного слота
//
// Сервис никогда не блокирует слоты сам: ответ бэкенда на конфликт окончательный.
// При успехе снапшот дополняется оптимистично, при отказе - перезагружается.
type UseCase struct {
	sessionRepo     SessionRepository
	venueClient     VenueServiceClient
	snapshotService SnapshotService
	attemptRepo     AttemptRepository
	metrics         Metrics
	submitTimeout   time.Duration
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(
	sessionRepo SessionRepository,
	venueClient VenueServiceClient,
	snapshotService SnapshotService,
	attemptRepo AttemptRepository,
	metrics Metrics,
	submitTimeout time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:     sessionRepo,
		venueClient:     venueClient,
		snapshotService: snapshotService,
		attemptRepo:     attemptRepo,
		metrics:         metrics,
		submitTimeout:   submitTimeout,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// submission параметры одной отправки
type submission struct {
	token   string
	session *domain.BookingSession // Состояние до начала отправки
	start   time.Time
	end     time.Time
}

// Execute выполняет use case отправки бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s", req.SessionID)

	// 1. Получаем сессию
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, uc.mapSessionError(req.SessionID, err)
	}

	// 2. Валидация до любых сетевых вызовов
	if err := validateSubmission(session, req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	// 3. Без токена - на страницу входа с возвратом на площадку
	if req.Token == "" {
		uc.logger.Warn("SubmitBooking: no token for session=%s, redirecting to login", req.SessionID)
		return nil, &AuthRequiredError{Redirect: domain.LoginRedirect(session.Venue.ID)}
	}

	// 4. Одна отправка на сессию
	if session.IsSubmitting() {
		uc.logger.Warn("SubmitBooking: session=%s already submitting", req.SessionID)
		return nil, ErrSubmissionInFlight
	}

	// 5. Повторно проверяем слот по снапшоту
	slotStart := *session.SelectedTime
	loc := session.Venue.Loc()

	intervals, err := uc.snapshotService.Get(ctx, session.Venue.ID, session.SelectedDate)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to load snapshot for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrBackendUnavailable, err)
	}
	if !slotengine.IsSlotSelectable(session.SelectedDate, slotStart, intervals, uc.timeProvider.Now(), loc) {
		uc.logger.Warn("SubmitBooking: slot %s on %s is no longer selectable for session=%s",
			slotStart, session.SelectedDate.Format(domain.DateFormat), req.SessionID)
		return nil, ErrSlotNotSelectable
	}

	// 6. Переводим сессию в submitting с новым токеном отправки
	sub := &submission{token: uuid.NewString(), session: session}
	sub.start, sub.end = slotengine.SlotBounds(session.SelectedDate, slotStart, loc)

	_, err = uc.sessionRepo.Update(ctx, req.SessionID, func(s *domain.BookingSession) error {
		if s.IsSubmitting() {
			return ErrSubmissionInFlight
		}
		if s.Generation != session.Generation || s.SelectedTime == nil || !s.SelectedTime.Equal(slotStart) {
			return ErrSelectionChanged
		}
		s.BeginSubmission(sub.token)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSubmissionInFlight) || errors.Is(err, ErrSelectionChanged) {
			uc.logger.Warn("SubmitBooking: session=%s changed before submission: %v", req.SessionID, err)
			return nil, err
		}
		return nil, uc.mapSessionError(req.SessionID, err)
	}

	// 7. Отправляем бронирование
	// Результат должен быть обработан, даже если клиент отключился
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.submitTimeout)
	defer cancel()

	result, err := uc.venueClient.CreateBooking(callCtx, req.Token, session.Venue.ID, sub.start, sub.end)
	if err != nil {
		return nil, uc.handleFailure(callCtx, sub, err)
	}

	return uc.handleSuccess(callCtx, sub, result.ID)
}

func (uc *UseCase) handleSuccess(ctx context.Context, sub *submission, bookingID int64) (*Response, error) {
	venueID := sub.session.Venue.ID

	// Бронь существует в любом случае, поэтому снапшот дополняем даже для устаревшей отправки
	interval := domain.BookedInterval{Start: sub.start, End: sub.end, Kind: domain.IntervalBooking}
	if err := uc.snapshotService.Append(ctx, venueID, sub.session.SelectedDate, interval); err != nil {
		uc.logger.Warn("SubmitBooking: failed to append booking_id=%d to snapshot: %v", bookingID, err)
	}

	current := false
	updated, err := uc.sessionRepo.Update(ctx, sub.session.ID, func(s *domain.BookingSession) error {
		if s.IsCurrentSubmission(sub.token) {
			s.Confirm(bookingID)
			current = true
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("SubmitBooking: session=%s disappeared before confirmation of booking_id=%d: %v",
			sub.session.ID, bookingID, err)
		updated = sub.session
	}

	outcome := domain.AttemptConfirmed
	if current {
		uc.logger.Info("SubmitBooking: booking_id=%d confirmed for venue_id=%d at %s (session=%s)",
			bookingID, venueID, sub.start.Format(time.RFC3339), sub.session.ID)
	} else {
		outcome = domain.AttemptSuperseded
		uc.logger.Warn("SubmitBooking: booking_id=%d created for a superseded selection in session=%s",
			bookingID, sub.session.ID)
	}
	uc.record(ctx, sub, outcome, &bookingID, "")

	return &Response{
		Session:     updated,
		BookingID:   bookingID,
		PaymentPath: domain.PaymentPath(bookingID),
		Superseded:  !current,
	}, nil
}

func (uc *UseCase) handleFailure(ctx context.Context, sub *submission, callErr error) error {
	venueID := sub.session.Venue.ID

	message, rejected := venueClient.IsRejected(callErr)
	unauthorized := errors.Is(callErr, venueClient.ErrUnauthorized)

	// Отказ означает, что снапшот устарел: перезагружаем его
	if rejected {
		if _, err := uc.snapshotService.Refresh(ctx, venueID, sub.session.SelectedDate); err != nil {
			uc.logger.Warn("SubmitBooking: failed to refresh snapshot after rejection: %v", err)
		}
	}

	current := false
	_, err := uc.sessionRepo.Update(ctx, sub.session.ID, func(s *domain.BookingSession) error {
		if !s.IsCurrentSubmission(sub.token) {
			return nil
		}
		current = true

		switch {
		case rejected:
			s.Reject(message)
		case unauthorized:
			s.AbortSubmission("")
		default:
			s.AbortSubmission(msgBackendUnavailable)
		}
		return nil
	})
	if err != nil {
		uc.logger.Warn("SubmitBooking: failed to update session=%s after failure: %v", sub.session.ID, err)
	}

	switch {
	case rejected:
		uc.record(ctx, sub, domain.AttemptRejected, nil, message)
	default:
		uc.record(ctx, sub, domain.AttemptFailed, nil, callErr.Error())
	}

	if unauthorized {
		uc.logger.Warn("SubmitBooking: token rejected by backend for session=%s", sub.session.ID)
		return &AuthRequiredError{Redirect: domain.LoginRedirect(venueID)}
	}

	if !current {
		uc.logger.Warn("SubmitBooking: dropping failure of superseded submission in session=%s: %v",
			sub.session.ID, callErr)
		return ErrSuperseded
	}

	if rejected {
		uc.logger.Warn("SubmitBooking: backend rejected venue_id=%d at %s: %s",
			venueID, sub.start.Format(time.RFC3339), message)
		return &RejectedError{Message: message}
	}

	uc.logger.Error("SubmitBooking: booking failed for session=%s: %v", sub.session.ID, callErr)
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, callErr)
}

// record пишет отправку в журнал и метрики, ошибки журнала только логируются
func (uc *UseCase) record(
	ctx context.Context,
	sub *submission,
	outcome domain.AttemptOutcome,
	bookingID *int64,
	message string,
) {
	if uc.metrics != nil {
		uc.metrics.RecordBookingSubmission(string(outcome))
	}

	message = domain.TruncateMessage(message)

	_, err := uc.attemptRepo.Create(ctx, &domain.BookingAttempt{
		SessionID:       sub.session.ID,
		SubmissionToken: sub.token,
		VenueID:         sub.session.Venue.ID,
		StartTime:       sub.start,
		EndTime:         sub.end,
		Outcome:         outcome,
		BookingID:       bookingID,
		Message:         message,
	})
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to journal %s attempt for session=%s: %v", outcome, sub.session.ID, err)
	}
}

func (uc *UseCase) mapSessionError(sessionID string, err error) error {
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		uc.logger.Warn("SubmitBooking: session=%s not found", sessionID)
		return ErrSessionNotFound
	}
	uc.logger.Error("SubmitBooking: session=%s storage error: %v", sessionID, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
