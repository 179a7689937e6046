package select_time

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/session"
	"github.com/m04kA/SMC-SlotService/internal/service/snapshots"
	"github.com/m04kA/SMC-SlotService/internal/slotengine"
)

// UseCase use case для выбора времени слота в сессии
type UseCase struct {
	sessionRepo     SessionRepository
	snapshotService SnapshotService
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessionRepo SessionRepository, snapshotService SnapshotService, logger Logger) *UseCase {
	return &UseCase{
		sessionRepo:     sessionRepo,
		snapshotService: snapshotService,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выбирает время, только если слот можно выбрать по текущему снапшоту и часам
// Иначе возвращает ErrSlotNotSelectable и сессия не меняется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectTime: session=%s, time=%s", req.SessionID, req.StartTime)

	// 1. Валидация входных данных
	if err := req.StartTime.Validate(); err != nil {
		uc.logger.Warn("SelectTime: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	now := uc.timeProvider.Now()

	// 2. Получаем сессию
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, uc.mapSessionError(req.SessionID, err)
	}
	if session.IsSubmitting() {
		uc.logger.Warn("SelectTime: session=%s is submitting", req.SessionID)
		return nil, ErrSubmissionInFlight
	}

	// 3. Слот должен входить в сетку площадки
	if !slotengine.IsSlotOffered(session.Venue.Hours, req.StartTime) {
		uc.logger.Warn("SelectTime: time %s is not offered by venue id=%d", req.StartTime, session.Venue.ID)
		return nil, fmt.Errorf("%w: %s is outside the venue grid", ErrSlotNotSelectable, req.StartTime)
	}

	// 4. Проверяем доступность по снапшоту
	intervals, err := uc.snapshotService.Get(ctx, session.Venue.ID, session.SelectedDate)
	if err != nil {
		if errors.Is(err, snapshots.ErrBackendUnavailable) || errors.Is(err, snapshots.ErrVenueNotFound) {
			uc.logger.Error("SelectTime: backend unavailable for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("SelectTime: failed to load snapshot for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	loc := session.Venue.Loc()
	if !slotengine.IsSlotSelectable(session.SelectedDate, req.StartTime, intervals, now, loc) {
		uc.logger.Warn("SelectTime: slot %s on %s is booked or past for session=%s",
			req.StartTime, session.SelectedDate.Format(domain.DateFormat), req.SessionID)
		return nil, ErrSlotNotSelectable
	}

	// 5. Сохраняем выбор, если дата не сменилась за время проверки
	generation := session.Generation
	updated, err := uc.sessionRepo.Update(ctx, req.SessionID, func(s *domain.BookingSession) error {
		if s.IsSubmitting() {
			return ErrSubmissionInFlight
		}
		if s.Generation != generation {
			return ErrSelectionChanged
		}
		s.SelectTime(req.StartTime)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSubmissionInFlight) || errors.Is(err, ErrSelectionChanged) {
			uc.logger.Warn("SelectTime: session=%s changed concurrently: %v", req.SessionID, err)
			return nil, err
		}
		return nil, uc.mapSessionError(req.SessionID, err)
	}

	uc.logger.Info("SelectTime: session=%s selected %s on %s",
		updated.ID, req.StartTime, updated.SelectedDate.Format(domain.DateFormat))

	return &Response{
		Session: updated,
		Slots:   slotengine.Classify(updated.SelectedDate, &updated.Venue, intervals, now),
	}, nil
}

func (uc *UseCase) mapSessionError(sessionID string, err error) error {
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		uc.logger.Warn("SelectTime: session=%s not found", sessionID)
		return ErrSessionNotFound
	}
	uc.logger.Error("SelectTime: session=%s storage error: %v", sessionID, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
