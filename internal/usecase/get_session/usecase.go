package get_session

import (
	"context"
	"errors"
	"fmt"

	sessionRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/session"
	"github.com/m04kA/SMC-SlotService/internal/service/snapshots"
	"github.com/m04kA/SMC-SlotService/internal/slotengine"
)

// UseCase use case для получения текущего состояния сессии
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

// Execute возвращает сессию вместе с актуальной сеткой слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			uc.logger.Warn("GetSession: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetSession: failed to get session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrInternal, err)
	}

	intervals, err := uc.snapshotService.Get(ctx, session.Venue.ID, session.SelectedDate)
	if err != nil {
		if errors.Is(err, snapshots.ErrBackendUnavailable) {
			uc.logger.Error("GetSession: backend unavailable for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("GetSession: failed to load snapshot for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	return &Response{
		Session: session,
		Slots:   slotengine.Classify(session.SelectedDate, &session.Venue, intervals, uc.timeProvider.Now()),
	}, nil
}
