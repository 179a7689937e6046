package list_attempts

import (
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// normalizeLimit проверяет и приводит лимит к допустимому диапазону
func normalizeLimit(limit int) (int, error) {
	switch {
	case limit < 0:
		return 0, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	case limit == 0:
		return domain.DefaultAttemptsLimit, nil
	case limit > domain.MaxAttemptsLimit:
		return domain.MaxAttemptsLimit, nil
	}
	return limit, nil
}
