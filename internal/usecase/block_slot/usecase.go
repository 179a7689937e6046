package block_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	venueClient "github.com/m04kA/SMC-SlotService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-SlotService/internal/slotengine"
)

// UseCase use case для блокировки интервала владельцем площадки (обслуживание)
type UseCase struct {
	venueClient     VenueServiceClient
	snapshotService SnapshotService
	metrics         Metrics
	now             func() time.Time
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// metrics может быть nil, если метрики выключены
func NewUseCase(venueClient VenueServiceClient, snapshotService SnapshotService, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		venueClient:     venueClient,
		snapshotService: snapshotService,
		metrics:         metrics,
		now:             time.Now,
		logger:          logger,
	}
}

// Execute создает блокировку [start, end) на дату и обновляет снапшот даты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BlockSlot: venue_id=%d, date=%s, range=%s-%s",
		req.VenueID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BlockSlot: validation failed: %v", err)
		return nil, err
	}
	if req.Token == "" {
		uc.logger.Warn("BlockSlot: no owner token for venue_id=%d", req.VenueID)
		return nil, ErrUnauthenticated
	}

	// 2. Получаем площадку, чтобы перевести время в ее часовой пояс
	venue, err := uc.venueClient.GetVenue(ctx, req.VenueID)
	if err != nil {
		return nil, uc.mapError(req.VenueID, err)
	}

	loc := venue.Loc()
	y, m, d := req.Date.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, loc)
	start, _ := slotengine.SlotBounds(date, req.StartTime, loc)
	// "24:00" нормализуется в полночь следующего дня
	end := time.Date(y, m, d, req.EndTime.Hour(), 0, 0, 0, loc)

	// 3. Создаем блокировку
	result, err := uc.venueClient.CreateBlock(ctx, req.Token, venue.ID, start, end)
	if err != nil {
		return nil, uc.mapError(req.VenueID, err)
	}

	if uc.metrics != nil {
		uc.metrics.RecordBlockCreated()
	}

	uc.logger.Info("BlockSlot: block_id=%d created for venue_id=%d, %s - %s",
		result.ID, venue.ID, start.Format(time.RFC3339), end.Format(time.RFC3339))

	resp := &Response{
		BlockID:  result.ID,
		VenueID:  venue.ID,
		StartsAt: start,
		EndsAt:   end,
	}

	// 4. Снапшот даты устарел: перезагружаем
	intervals, ok := uc.loadIntervals(ctx, venue.ID, date, domain.BookedInterval{Start: start, End: end, Kind: domain.IntervalBlock})
	if ok {
		resp.Slots = slotengine.Classify(date, venue, intervals, uc.now())
	}

	return resp, nil
}

// loadIntervals возвращает занятые интервалы даты после блокировки
// Если снапшот получить не удалось, ok = false: сетку без занятых слотов не строим
func (uc *UseCase) loadIntervals(
	ctx context.Context,
	venueID int64,
	date time.Time,
	block domain.BookedInterval,
) ([]domain.BookedInterval, bool) {
	intervals, err := uc.snapshotService.Refresh(ctx, venueID, date)
	if err == nil {
		return intervals, true
	}
	uc.logger.Warn("BlockSlot: failed to refresh snapshot for venue_id=%d, date=%s: %v",
		venueID, date.Format(domain.DateFormat), err)

	intervals, err = uc.snapshotService.Get(ctx, venueID, date)
	if err != nil {
		uc.logger.Warn("BlockSlot: snapshot unavailable for venue_id=%d, date=%s, grid omitted: %v",
			venueID, date.Format(domain.DateFormat), err)
		return nil, false
	}

	for _, iv := range intervals {
		if iv.Start.Equal(block.Start) && iv.End.Equal(block.End) {
			return intervals, true
		}
	}
	return append(intervals, block), true
}

func (uc *UseCase) mapError(venueID int64, err error) error {
	if message, ok := venueClient.IsRejected(err); ok {
		uc.logger.Warn("BlockSlot: backend rejected block for venue_id=%d: %s", venueID, message)
		return &RejectedError{Message: message}
	}

	switch {
	case errors.Is(err, venueClient.ErrUnauthorized):
		uc.logger.Warn("BlockSlot: owner token rejected for venue_id=%d", venueID)
		return ErrUnauthenticated
	case errors.Is(err, venueClient.ErrVenueNotFound):
		uc.logger.Warn("BlockSlot: venue id=%d not found", venueID)
		return ErrVenueNotFound
	case errors.Is(err, venueClient.ErrUnavailable), errors.Is(err, venueClient.ErrInvalidResponse):
		uc.logger.Error("BlockSlot: backend unavailable for venue_id=%d: %v", venueID, err)
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	default:
		uc.logger.Error("BlockSlot: unexpected error for venue_id=%d: %v", venueID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
