package start_session

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	venueClient "github.com/m04kA/SMC-SlotService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-SlotService/internal/service/snapshots"
	"github.com/m04kA/SMC-SlotService/internal/slotengine"
)

// UseCase use case для начала выбора слота на площадке
type UseCase struct {
	sessionRepo     SessionRepository
	venueClient     VenueServiceClient
	snapshotService SnapshotService
	dateOptionsDays int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessionRepo SessionRepository,
	venueClient VenueServiceClient,
	snapshotService SnapshotService,
	dateOptionsDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessionRepo:     sessionRepo,
		venueClient:     venueClient,
		snapshotService: snapshotService,
		dateOptionsDays: dateOptionsDays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создает сессию: дата - сегодня по календарю площадки, время не выбрано
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("StartSession: venue_id=%d", req.VenueID)

	// 1. Валидация входных данных
	if req.VenueID <= 0 {
		uc.logger.Warn("StartSession: invalid venue_id=%d", req.VenueID)
		return nil, fmt.Errorf("%w: venue_id must be positive", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 2. Получаем площадку
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		return nil, uc.mapError(req.VenueID, err)
	}
	today := venue.Today(now)

	// 3. Загружаем снапшот на сегодня
	intervals, err := uc.snapshotService.Get(ctx, venue.ID, today)
	if err != nil {
		return nil, uc.mapError(req.VenueID, err)
	}

	// 4. Сохраняем сессию
	session, err := uc.sessionRepo.Create(ctx, &domain.BookingSession{
		ID:           uuid.NewString(),
		Venue:        *venue,
		SelectedDate: today,
		State:        domain.SessionIdle,
	})
	if err != nil {
		uc.logger.Error("StartSession: failed to save session for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	uc.logger.Info("StartSession: session=%s created for venue_id=%d, date=%s",
		session.ID, venue.ID, today.Format(domain.DateFormat))

	return &Response{
		Session:     session,
		Slots:       slotengine.Classify(today, venue, intervals, now),
		DateOptions: slotengine.DateOptions(now, uc.dateOptionsDays, venue.Loc()),
	}, nil
}

func (uc *UseCase) mapError(venueID int64, err error) error {
	switch {
	case errors.Is(err, venueClient.ErrVenueNotFound), errors.Is(err, snapshots.ErrVenueNotFound):
		uc.logger.Warn("StartSession: venue id=%d not found", venueID)
		return ErrVenueNotFound
	case errors.Is(err, venueClient.ErrUnavailable),
		errors.Is(err, venueClient.ErrInvalidResponse),
		errors.Is(err, snapshots.ErrBackendUnavailable):
		uc.logger.Error("StartSession: backend unavailable for venue id=%d: %v", venueID, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		uc.logger.Error("StartSession: unexpected error for venue id=%d: %v", venueID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
