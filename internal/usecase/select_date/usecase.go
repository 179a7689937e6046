package select_date

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/session"
	"github.com/m04kA/SMC-SlotService/internal/service/snapshots"
	"github.com/m04kA/SMC-SlotService/internal/slotengine"
)

// UseCase use case для выбора даты в сессии
type UseCase struct {
	sessionRepo        SessionRepository
	snapshotService    SnapshotService
	advanceBookingDays int
	timeProvider       TimeProvider
	logger             Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	snapshotService SnapshotService,
	advanceBookingDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:        sessionRepo,
		snapshotService:    snapshotService,
		advanceBookingDays: advanceBookingDays,
		timeProvider:       &RealTimeProvider{},
		logger:             logger,
	}
}

// Execute выбирает дату и всегда сбрасывает выбранное время
// Отправка, начатая до смены даты, после этого считается устаревшей
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectDate: session=%s, date=%s", req.SessionID, req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("SelectDate: empty date for session=%s", req.SessionID)
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 1. Получаем сессию
	session, err := uc.sessionRepo.GetByID(ctx, req.SessionID)
	if err != nil {
		return nil, uc.mapSessionError(req.SessionID, err)
	}

	// 2. Приводим дату к календарю площадки и проверяем окно бронирования
	loc := session.Venue.Loc()
	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, loc)

	if err := validateDate(date, session.Venue.Today(now), uc.advanceBookingDays); err != nil {
		uc.logger.Warn("SelectDate: date validation failed for session=%s: %v", req.SessionID, err)
		return nil, err
	}

	// 3. Загружаем снапшот до изменения сессии: при ошибке выбор не меняется
	intervals, err := uc.snapshotService.Get(ctx, session.Venue.ID, date)
	if err != nil {
		if errors.Is(err, snapshots.ErrBackendUnavailable) || errors.Is(err, snapshots.ErrVenueNotFound) {
			uc.logger.Error("SelectDate: backend unavailable for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		}
		uc.logger.Error("SelectDate: failed to load snapshot for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	// 4. Меняем дату
	updated, err := uc.sessionRepo.Update(ctx, req.SessionID, func(s *domain.BookingSession) error {
		s.SelectDate(date)
		return nil
	})
	if err != nil {
		return nil, uc.mapSessionError(req.SessionID, err)
	}

	uc.logger.Info("SelectDate: session=%s moved to %s (generation=%d)",
		updated.ID, date.Format(domain.DateFormat), updated.Generation)

	return &Response{
		Session: updated,
		Slots:   slotengine.Classify(date, &updated.Venue, intervals, now),
	}, nil
}

func (uc *UseCase) mapSessionError(sessionID string, err error) error {
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		uc.logger.Warn("SelectDate: session=%s not found", sessionID)
		return ErrSessionNotFound
	}
	uc.logger.Error("SelectDate: session=%s storage error: %v", sessionID, err)
	return fmt.Errorf("%w: %v", ErrInternal, err)
}
