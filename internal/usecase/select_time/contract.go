package select_time

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// SessionRepository интерфейс хранилища сессий бронирования
type SessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.BookingSession, error)
	Update(ctx context.Context, id string, fn func(session *domain.BookingSession) error) (*domain.BookingSession, error)
}

// SnapshotService интерфейс сервиса снапшотов занятых интервалов
type SnapshotService interface {
	Get(ctx context.Context, venueID int64, date time.Time) ([]domain.BookedInterval, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
