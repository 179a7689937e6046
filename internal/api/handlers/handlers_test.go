package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

func TestRespondUnauthorized(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondUnauthorized(rec, "нужен вход", "/login?redirect=/venues/7")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "нужен вход", body.Error)
	assert.Equal(t, "/login?redirect=/venues/7", body.Redirect)
}

func TestDecodeJSON_UnknownField(t *testing.T) {
	var dst struct {
		Date string `json:"date"`
	}

	r := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"date":"2025-06-01","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"date":"2025-06-01"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "2025-06-01", dst.Date)
}

func TestValidateStruct(t *testing.T) {
	type request struct {
		VenueID   int64  `json:"venueId" validate:"gt=0"`
		Date      string `json:"date" validate:"required,date"`
		StartTime string `json:"startTime" validate:"required,hhmm"`
	}

	assert.NoError(t, ValidateStruct(&request{VenueID: 1, Date: "2025-06-01", StartTime: "10:00"}))

	err := ValidateStruct(&request{VenueID: 0, Date: "01.06.2025", StartTime: "10am"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VenueID")
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
	assert.Contains(t, err.Error(), "HH:MM")
}

func TestToSessionView(t *testing.T) {
	selected := types.TimeString("15:00")
	s := &domain.BookingSession{
		ID:           "abc",
		Venue:        domain.Venue{ID: 7, Name: "Court 1"},
		SelectedDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		SelectedTime: &selected,
		State:        domain.SessionTimeSelected,
	}

	view := ToSessionView(s)
	assert.Equal(t, "2025-06-01", view.SelectedDate)
	require.NotNil(t, view.SelectedTime)
	assert.Equal(t, "15:00", *view.SelectedTime)
	assert.Equal(t, "time_selected", view.State)
	assert.Nil(t, view.BookingID)
}
