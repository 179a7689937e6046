package handlers

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/ptr"
)

// SlotView слот в ответе API
type SlotView struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	StartsAt  string `json:"startsAt"`
	EndsAt    string `json:"endsAt"`
	State     string `json:"state"`
	Available bool   `json:"available"`
}

// SessionView сессия бронирования в ответе API
type SessionView struct {
	ID           string  `json:"id"`
	VenueID      int64   `json:"venueId"`
	VenueName    string  `json:"venueName"`
	SelectedDate string  `json:"selectedDate"`
	SelectedTime *string `json:"selectedTime,omitempty"`
	State        string  `json:"state"`
	Message      string  `json:"message,omitempty"`
	BookingID    *int64  `json:"bookingId,omitempty"`
	UpdatedAt    string  `json:"updatedAt"`
}

// VenueView площадка с часами работы
type VenueView struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	SportCategory string  `json:"sportCategory,omitempty"`
	Address       string  `json:"address,omitempty"`
	PricePerHour  float64 `json:"pricePerHour"`
	OpeningTime   string  `json:"openingTime"`
	ClosingTime   string  `json:"closingTime"`
	LunchStart    *string `json:"lunchStartTime,omitempty"`
	LunchEnd      *string `json:"lunchEndTime,omitempty"`
	Timezone      string  `json:"timezone"`
}

func ToSlotViews(slots []domain.Slot) []SlotView {
	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			StartsAt:  s.StartsAt.Format(time.RFC3339),
			EndsAt:    s.EndsAt.Format(time.RFC3339),
			State:     string(s.State),
			Available: s.IsAvailable(),
		}
	}
	return views
}

func ToSessionView(s *domain.BookingSession) *SessionView {
	view := &SessionView{
		ID:           s.ID,
		VenueID:      s.Venue.ID,
		VenueName:    s.Venue.Name,
		SelectedDate: s.SelectedDate.Format(domain.DateFormat),
		State:        string(s.State),
		Message:      s.LastMessage,
		BookingID:    s.BookingID,
		UpdatedAt:    s.UpdatedAt.Format(time.RFC3339),
	}
	if s.SelectedTime != nil {
		view.SelectedTime = ptr.Ptr(s.SelectedTime.String())
	}
	return view
}

func ToVenueView(v *domain.Venue) *VenueView {
	view := &VenueView{
		ID:            v.ID,
		Name:          v.Name,
		SportCategory: v.SportCategory,
		Address:       v.Address,
		PricePerHour:  v.PricePerHour,
		OpeningTime:   v.Hours.Opening.String(),
		ClosingTime:   v.Hours.Closing.String(),
		Timezone:      v.Loc().String(),
	}
	if v.Hours.HasLunch() {
		view.LunchStart = ptr.Ptr(v.Hours.LunchStart.String())
		view.LunchEnd = ptr.Ptr(v.Hours.LunchEnd.String())
	}
	return view
}

func ToDateStrings(dates []time.Time) []string {
	result := make([]string, len(dates))
	for i, d := range dates {
		result[i] = d.Format(domain.DateFormat)
	}
	return result
}
