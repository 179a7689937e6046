package block_slot

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/integrations/venueservice"
)

// VenueServiceClient интерфейс клиента бэкенда бронирований
type VenueServiceClient interface {
	GetVenue(ctx context.Context, venueID int64) (*domain.Venue, error)
	CreateBlock(ctx context.Context, token string, venueID int64, start, end time.Time) (*venueservice.BookingResult, error)
}

// SnapshotService интерфейс сервиса снапшотов занятых интервалов
type SnapshotService interface {
	Get(ctx context.Context, venueID int64, date time.Time) ([]domain.BookedInterval, error)
	Refresh(ctx context.Context, venueID int64, date time.Time) ([]domain.BookedInterval, error)
}

// Metrics метрики блокировок
type Metrics interface {
	RecordBlockCreated()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
