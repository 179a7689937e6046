package select_time

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/session"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
	"github.com/m04kA/SMC-SlotService/pkg/ptr"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeSnapshots struct {
	intervals []domain.BookedInterval
}

func (f *fakeSnapshots) Get(_ context.Context, _ int64, _ time.Time) ([]domain.BookedInterval, error) {
	return f.intervals, nil
}

var today = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*UseCase, *sessionRepo.Repository) {
	t.Helper()

	repo := sessionRepo.NewRepository(time.Hour)
	_, err := repo.Create(context.Background(), &domain.BookingSession{
		ID: "s1",
		Venue: domain.Venue{ID: 7, Hours: domain.OperatingHours{
			Opening:    "06:00",
			Closing:    "23:00",
			LunchStart: ptr.Ptr(types.TimeString("13:00")),
			LunchEnd:   ptr.Ptr(types.TimeString("14:00")),
		}},
		SelectedDate: today,
		State:        domain.SessionDateSelected,
	})
	require.NoError(t, err)

	snaps := &fakeSnapshots{intervals: []domain.BookedInterval{{
		Start: today.Add(16 * time.Hour),
		End:   today.Add(17 * time.Hour),
	}}}

	uc := NewUseCase(repo, snaps, logger.NewNop())
	uc.timeProvider = fixedTime{now: today.Add(14*time.Hour + 30*time.Minute)}
	return uc, repo
}

func TestUseCase_SelectsAvailableSlot(t *testing.T) {
	uc, _ := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "s1", StartTime: "15:00"})
	require.NoError(t, err)

	require.NotNil(t, resp.Session.SelectedTime)
	assert.Equal(t, types.TimeString("15:00"), *resp.Session.SelectedTime)
	assert.Equal(t, domain.SessionTimeSelected, resp.Session.State)
}

func TestUseCase_RejectsUnselectableSlots(t *testing.T) {
	tests := []struct {
		name      string
		startTime types.TimeString
		expected  error
	}{
		{name: "прошедший", startTime: "14:00", expected: ErrSlotNotSelectable},
		{name: "занятый", startTime: "16:00", expected: ErrSlotNotSelectable},
		{name: "обед", startTime: "13:00", expected: ErrSlotNotSelectable},
		{name: "после закрытия", startTime: "23:00", expected: ErrSlotNotSelectable},
		{name: "не на границе часа", startTime: "15:30", expected: ErrSlotNotSelectable},
		{name: "некорректный формат", startTime: "3pm", expected: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, repo := setup(t)

			_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", StartTime: tt.startTime})
			assert.ErrorIs(t, err, tt.expected)

			stored, _ := repo.GetByID(context.Background(), "s1")
			assert.Nil(t, stored.SelectedTime, "сессия не меняется")
			assert.Equal(t, domain.SessionDateSelected, stored.State)
		})
	}
}

func TestUseCase_SubmissionInFlight(t *testing.T) {
	uc, repo := setup(t)

	_, err := repo.Update(context.Background(), "s1", func(s *domain.BookingSession) error {
		s.SelectTime("15:00")
		s.BeginSubmission("tok")
		return nil
	})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{SessionID: "s1", StartTime: "17:00"})
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
}

func TestUseCase_SessionNotFound(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "missing", StartTime: "15:00"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
