package submit_booking

import (
	"github.com/m04kA/SMC-SlotService/internal/api/handlers"
	submitBooking "github.com/m04kA/SMC-SlotService/internal/usecase/submit_booking"
)

// SubmitBookingRequest HTTP request model
type SubmitBookingRequest struct {
	TermsAccepted bool `json:"termsAccepted"`
}

// SubmitBookingResponse HTTP response model
type SubmitBookingResponse struct {
	Session     *handlers.SessionView `json:"session"`
	BookingID   int64                 `json:"bookingId"`
	PaymentPath string                `json:"paymentPath"`
	Superseded  bool                  `json:"superseded,omitempty"`
}

func (r *SubmitBookingRequest) ToUseCaseRequest(sessionID, token string) *submitBooking.Request {
	return &submitBooking.Request{
		SessionID:     sessionID,
		Token:         token,
		TermsAccepted: r.TermsAccepted,
	}
}

func FromUseCaseResponse(resp *submitBooking.Response) *SubmitBookingResponse {
	return &SubmitBookingResponse{
		Session:     handlers.ToSessionView(resp.Session),
		BookingID:   resp.BookingID,
		PaymentPath: resp.PaymentPath,
		Superseded:  resp.Superseded,
	}
}
