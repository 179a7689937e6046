package snapshots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// Cache хранилище снапшотов занятых интервалов
type Cache interface {
	Get(ctx context.Context, key string) ([]domain.BookedInterval, error)
	Set(ctx context.Context, key string, intervals []domain.BookedInterval, ttl time.Duration) error
	Append(ctx context.Context, key string, interval domain.BookedInterval) (bool, error)
	Delete(ctx context.Context, key string) error
}

// VenueServiceClient интерфейс клиента бэкенда бронирований
type VenueServiceClient interface {
	GetBookedSlots(ctx context.Context, venueID int64, date time.Time) ([]domain.BookedInterval, error)
}

// Metrics метрики обращений к кешу
type Metrics interface {
	RecordSnapshotLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
