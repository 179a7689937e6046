package select_date

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// validateDate проверяет, что дата не в прошлом и попадает в окно бронирования
// advanceDays = 0 снимает ограничение сверху
func validateDate(date, today time.Time, advanceDays int) error {
	if date.Before(today) {
		return fmt.Errorf("%w: %s is before %s", ErrDateInPast,
			date.Format(domain.DateFormat), today.Format(domain.DateFormat))
	}

	if advanceDays > 0 {
		last := today.AddDate(0, 0, advanceDays-1)
		if date.After(last) {
			return fmt.Errorf("%w: %s is after %s", ErrDateTooFarInFuture,
				date.Format(domain.DateFormat), last.Format(domain.DateFormat))
		}
	}

	return nil
}
