package submit_booking

import "github.com/m04kA/SMC-SlotService/internal/domain"

// validateSubmission проверяет сессию и запрос до любых сетевых вызовов
func validateSubmission(session *domain.BookingSession, req *Request) error {
	if session.SelectedTime == nil {
		return ErrNoTimeSelected
	}
	if !req.TermsAccepted {
		return ErrTermsNotAccepted
	}
	return nil
}
