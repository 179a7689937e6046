package list_attempts

import (
	"context"
	"fmt"
)

// UseCase use case для просмотра журнала отправок бронирования площадки
type UseCase struct {
	attemptRepo AttemptRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(attemptRepo AttemptRepository, logger Logger) *UseCase {
	return &UseCase{
		attemptRepo: attemptRepo,
		logger:      logger,
	}
}

// Execute возвращает последние записи журнала, новые первыми
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venue_id must be positive", ErrInvalidInput)
	}

	limit, err := normalizeLimit(req.Limit)
	if err != nil {
		uc.logger.Warn("ListAttempts: invalid limit %d for venue_id=%d", req.Limit, req.VenueID)
		return nil, err
	}

	attempts, err := uc.attemptRepo.ListByVenue(ctx, req.VenueID, limit)
	if err != nil {
		uc.logger.Error("ListAttempts: failed to list attempts for venue_id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return &Response{Attempts: attempts}, nil
}
