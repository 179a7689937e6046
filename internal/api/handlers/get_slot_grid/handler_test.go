package get_slot_grid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	getSlotGrid "github.com/m04kA/SMC-SlotService/internal/usecase/get_slot_grid"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
)

type fakeUseCase struct {
	got *getSlotGrid.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getSlotGrid.Request) (*getSlotGrid.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return &getSlotGrid.Response{
		Venue: &domain.Venue{ID: req.VenueID, Name: "Court", Hours: domain.OperatingHours{Opening: "09:00", Closing: "11:00"}},
		Date:  date,
		Slots: []domain.Slot{
			{StartTime: "09:00", EndTime: "10:00", StartsAt: date.Add(9 * time.Hour), EndsAt: date.Add(10 * time.Hour), State: domain.SlotBooked},
			{StartTime: "10:00", EndTime: "11:00", StartsAt: date.Add(10 * time.Hour), EndsAt: date.Add(11 * time.Hour), State: domain.SlotAvailable},
		},
		DateOptions: []time.Time{date, date.AddDate(0, 0, 1)},
	}, nil
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/venues/{venueId}/slots", NewHandler(uc, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_SlotGrid(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/api/v1/venues/7/slots?date=2025-06-01")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.got.Date)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *uc.got.Date)

	var body SlotGridResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2025-06-01", body.Date)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "booked", body.Slots[0].State)
	assert.False(t, body.Slots[0].Available)
	assert.True(t, body.Slots[1].Available)
	assert.Equal(t, []string{"2025-06-01", "2025-06-02"}, body.DateOptions)
	assert.Equal(t, "UTC", body.Venue.Timezone)
}

func TestHandler_DefaultsToToday(t *testing.T) {
	uc := &fakeUseCase{}
	rec := serve(uc, "/api/v1/venues/7/slots")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, uc.got.Date)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "битый ID", target: "/api/v1/venues/abc/slots", status: http.StatusBadRequest},
		{name: "битая дата", target: "/api/v1/venues/7/slots?date=01.06.2025", status: http.StatusBadRequest},
		{name: "нет площадки", target: "/api/v1/venues/7/slots", err: getSlotGrid.ErrVenueNotFound, status: http.StatusNotFound},
		{name: "бэкенд недоступен", target: "/api/v1/venues/7/slots", err: getSlotGrid.ErrBackendUnavailable, status: http.StatusBadGateway},
		{name: "внутренняя", target: "/api/v1/venues/7/slots", err: getSlotGrid.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
