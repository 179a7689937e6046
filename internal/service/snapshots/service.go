package snapshots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	snapshotCache "github.com/m04kA/SMC-SlotService/internal/infra/cache/snapshot"
	venueClient "github.com/m04kA/SMC-SlotService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-SlotService/pkg/metrics"
)

// loadTimeout ограничивает общую загрузку снапшота из бэкенда
const loadTimeout = 30 * time.Second

// Service снапшоты занятых интервалов площадки на дату
// Чтение через кеш, оптимистичное добавление после успешной брони и явное обновление
type Service struct {
	cache   Cache
	client  VenueServiceClient
	ttl     time.Duration
	metrics Metrics
	logger  Logger

	group singleflight.Group
}

// NewService создает сервис снапшотов
// metrics может быть nil, если метрики выключены
func NewService(cache Cache, client VenueServiceClient, ttl time.Duration, metrics Metrics, logger Logger) *Service {
	return &Service{
		cache:   cache,
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// Key ключ снапшота в кеше: slots:{venueID}:{YYYY-MM-DD}
// Дата берется по компонентам y/m/d
func Key(venueID int64, date time.Time) string {
	return fmt.Sprintf("slots:%d:%s", venueID, date.Format(domain.DateFormat))
}

// Get возвращает снапшот из кеша, при промахе загружает его из бэкенда
// Параллельные промахи по одному ключу схлопываются в один запрос
func (s *Service) Get(ctx context.Context, venueID int64, date time.Time) ([]domain.BookedInterval, error) {
	key := Key(venueID, date)

	intervals, err := s.cache.Get(ctx, key)
	if err == nil {
		s.recordLookup(metrics.LookupHit)
		return intervals, nil
	}
	if !errors.Is(err, snapshotCache.ErrCacheMiss) {
		s.logger.Warn("Snapshots: cache read failed for key=%s, falling back to backend: %v", key, err)
	}

	s.recordLookup(metrics.LookupMiss)
	return s.load(ctx, key, venueID, date)
}

// Append оптимистично добавляет интервал в снапшот после успешного бронирования
// Если снапшота нет в кеше, ничего не делает: следующий Get загрузит свежие данные
func (s *Service) Append(ctx context.Context, venueID int64, date time.Time, interval domain.BookedInterval) error {
	key := Key(venueID, date)

	appended, err := s.cache.Append(ctx, key, interval)
	if err != nil {
		return fmt.Errorf("%w: append to %s: %v", ErrInternal, key, err)
	}
	if !appended {
		s.logger.Info("Snapshots: no cached snapshot for key=%s, append skipped", key)
	}
	return nil
}

// Refresh сбрасывает снапшот и загружает его заново из бэкенда
func (s *Service) Refresh(ctx context.Context, venueID int64, date time.Time) ([]domain.BookedInterval, error) {
	key := Key(venueID, date)

	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("Snapshots: failed to drop key=%s: %v", key, err)
	}
	// Загрузка, начатая до сброса, могла вернуть устаревшие данные
	s.group.Forget(key)

	return s.load(ctx, key, venueID, date)
}

// load загружает снапшот из бэкенда, одна загрузка на ключ
// Общая загрузка не зависит от отмены контекста первого вызвавшего,
// каждый вызвавший ждет ее результат не дольше своего контекста
func (s *Service) load(ctx context.Context, key string, venueID int64, date time.Time) ([]domain.BookedInterval, error) {
	ch := s.group.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		intervals, err := s.client.GetBookedSlots(loadCtx, venueID, date)
		if err != nil {
			return nil, err
		}

		if err := s.cache.Set(loadCtx, key, intervals, s.ttl); err != nil {
			s.logger.Warn("Snapshots: failed to cache key=%s: %v", key, err)
		}
		return intervals, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		s.logger.Warn("Snapshots: caller gave up waiting for key=%s: %v", key, ctx.Err())
		return nil, fmt.Errorf("%w: %w", ErrBackendUnavailable, ctx.Err())
	case res = <-ch:
	}

	value, err, shared := res.Val, res.Err, res.Shared
	if err != nil {
		switch {
		case errors.Is(err, venueClient.ErrVenueNotFound):
			return nil, ErrVenueNotFound
		case errors.Is(err, venueClient.ErrUnavailable), errors.Is(err, venueClient.ErrInvalidResponse):
			s.logger.Error("Snapshots: backend failed for venue_id=%d, date=%s: %v", venueID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
		default:
			s.logger.Error("Snapshots: failed to load venue_id=%d, date=%s: %v", venueID, date.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	intervals := value.([]domain.BookedInterval)
	if shared {
		intervals = append([]domain.BookedInterval(nil), intervals...)
	}
	return intervals, nil
}

func (s *Service) recordLookup(result string) {
	if s.metrics != nil {
		s.metrics.RecordSnapshotLookup(result)
	}
}
