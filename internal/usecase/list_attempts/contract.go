package list_attempts

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// AttemptRepository интерфейс журнала отправок бронирования
type AttemptRepository interface {
	ListByVenue(ctx context.Context, venueID int64, limit int) ([]*domain.BookingAttempt, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
