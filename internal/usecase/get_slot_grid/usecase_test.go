package get_slot_grid

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	venueClient "github.com/m04kA/SMC-SlotService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-SlotService/internal/service/snapshots"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
	"github.com/m04kA/SMC-SlotService/pkg/ptr"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeVenueClient struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenueClient) GetVenue(_ context.Context, _ int64) (*domain.Venue, error) {
	return f.venue, f.err
}

type fakeSnapshots struct {
	mu        sync.Mutex
	intervals []domain.BookedInterval
	err       error
	dates     []time.Time
}

func (f *fakeSnapshots) Get(_ context.Context, _ int64, date time.Time) ([]domain.BookedInterval, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dates = append(f.dates, date)
	return f.intervals, f.err
}

func testVenue(loc *time.Location) *domain.Venue {
	return &domain.Venue{
		ID: 7,
		Hours: domain.OperatingHours{
			Opening:    "06:00",
			Closing:    "23:00",
			LunchStart: ptr.Ptr(types.TimeString("13:00")),
			LunchEnd:   ptr.Ptr(types.TimeString("14:00")),
		},
		Location: loc,
	}
}

func newTestUseCase(client *fakeVenueClient, snaps *fakeSnapshots, now time.Time) *UseCase {
	uc := NewUseCase(client, snaps, 7, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestUseCase_TodayByDefault(t *testing.T) {
	now := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	snaps := &fakeSnapshots{}
	uc := newTestUseCase(&fakeVenueClient{venue: testVenue(time.UTC)}, snaps, now)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 7})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), resp.Date)
	assert.Len(t, resp.Slots, 16)
	assert.Len(t, resp.DateOptions, 7)

	states := map[types.TimeString]domain.SlotState{}
	for _, s := range resp.Slots {
		states[s.StartTime] = s.State
	}
	assert.Equal(t, domain.SlotPast, states["14:00"])
	assert.Equal(t, domain.SlotAvailable, states["15:00"])
	_, lunch := states["13:00"]
	assert.False(t, lunch)
}

func TestUseCase_ExplicitDateInVenueTimezone(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2025, 5, 30, 12, 0, 0, 0, time.UTC)

	// Бронь 10:00-11:00 IST
	snaps := &fakeSnapshots{intervals: []domain.BookedInterval{{
		Start: time.Date(2025, 6, 1, 4, 30, 0, 0, time.UTC),
		End:   time.Date(2025, 6, 1, 5, 30, 0, 0, time.UTC),
	}}}
	uc := newTestUseCase(&fakeVenueClient{venue: testVenue(ist)}, snaps, now)

	resp, err := uc.Execute(context.Background(), &Request{
		VenueID: 7,
		Date:    ptr.Ptr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, ist), resp.Date)
	for _, s := range resp.Slots {
		if s.StartTime == "10:00" {
			assert.Equal(t, domain.SlotBooked, s.State)
		} else {
			assert.Equal(t, domain.SlotAvailable, s.State, s.StartTime)
		}
	}
}

func TestUseCase_Errors(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		client   *fakeVenueClient
		snaps    *fakeSnapshots
		req      *Request
		expected error
	}{
		{
			name:     "некорректный id",
			client:   &fakeVenueClient{venue: testVenue(time.UTC)},
			snaps:    &fakeSnapshots{},
			req:      &Request{VenueID: 0},
			expected: ErrInvalidInput,
		},
		{
			name:     "площадка не найдена",
			client:   &fakeVenueClient{err: venueClient.ErrVenueNotFound},
			snaps:    &fakeSnapshots{},
			req:      &Request{VenueID: 7},
			expected: ErrVenueNotFound,
		},
		{
			name:     "снапшот недоступен",
			client:   &fakeVenueClient{venue: testVenue(time.UTC)},
			snaps:    &fakeSnapshots{err: snapshots.ErrBackendUnavailable},
			req:      &Request{VenueID: 7, Date: ptr.Ptr(now)},
			expected: ErrBackendUnavailable,
		},
		{
			name:     "неизвестная ошибка",
			client:   &fakeVenueClient{err: assert.AnError},
			snaps:    &fakeSnapshots{},
			req:      &Request{VenueID: 7},
			expected: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.client, tt.snaps, now)
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}
