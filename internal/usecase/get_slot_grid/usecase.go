package get_slot_grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	venueClient "github.com/m04kA/SMC-SlotService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-SlotService/internal/service/snapshots"
	"github.com/m04kA/SMC-SlotService/internal/slotengine"
)

// UseCase use case для получения сетки слотов площадки на дату
// Используется страницей площадки игрока и расписанием владельца
type UseCase struct {
	venueClient     VenueServiceClient
	snapshotService SnapshotService
	dateOptionsDays int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	venueClient VenueServiceClient,
	snapshotService SnapshotService,
	dateOptionsDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		venueClient:     venueClient,
		snapshotService: snapshotService,
		dateOptionsDays: dateOptionsDays,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotGrid: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		venue     *domain.Venue
		intervals []domain.BookedInterval
		date      time.Time
	)

	if req.Date != nil {
		// 2a. Дата известна: площадку и снапшот загружаем параллельно
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			v, err := uc.venueClient.GetVenue(gctx, req.VenueID)
			if err != nil {
				return err
			}
			venue = v
			return nil
		})
		g.Go(func() error {
			snapshot, err := uc.snapshotService.Get(gctx, req.VenueID, *req.Date)
			if err != nil {
				return err
			}
			intervals = snapshot
			return nil
		})

		if err := g.Wait(); err != nil {
			return nil, uc.mapError(req.VenueID, err)
		}

		y, m, d := req.Date.Date()
		date = time.Date(y, m, d, 0, 0, 0, 0, venue.Loc())
	} else {
		// 2b. Сегодня определяется по календарю площадки, поэтому сначала площадка
		v, err := uc.venueClient.GetVenue(ctx, req.VenueID)
		if err != nil {
			return nil, uc.mapError(req.VenueID, err)
		}
		venue = v
		date = venue.Today(now)

		snapshot, err := uc.snapshotService.Get(ctx, req.VenueID, date)
		if err != nil {
			return nil, uc.mapError(req.VenueID, err)
		}
		intervals = snapshot
	}

	// 3. Классифицируем слоты
	slots := slotengine.Classify(date, venue, intervals, now)

	uc.logger.Info("GetSlotGrid: venue_id=%d, date=%s, slots=%d, booked_intervals=%d",
		req.VenueID, date.Format(domain.DateFormat), len(slots), len(intervals))

	return &Response{
		Venue:       venue,
		Date:        date,
		Slots:       slots,
		DateOptions: slotengine.DateOptions(now, uc.dateOptionsDays, venue.Loc()),
	}, nil
}

func (uc *UseCase) mapError(venueID int64, err error) error {
	switch {
	case errors.Is(err, venueClient.ErrVenueNotFound), errors.Is(err, snapshots.ErrVenueNotFound):
		uc.logger.Warn("GetSlotGrid: venue id=%d not found", venueID)
		return ErrVenueNotFound
	case errors.Is(err, venueClient.ErrUnavailable),
		errors.Is(err, venueClient.ErrInvalidResponse),
		errors.Is(err, snapshots.ErrBackendUnavailable):
		uc.logger.Error("GetSlotGrid: backend unavailable for venue id=%d: %v", venueID, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		uc.logger.Error("GetSlotGrid: failed to build grid for venue id=%d: %v", venueID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
