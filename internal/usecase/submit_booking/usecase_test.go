package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	snapshotCache "github.com/m04kA/SMC-SlotService/internal/infra/cache/snapshot"
	sessionRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/session"
	"github.com/m04kA/SMC-SlotService/internal/integrations/venueservice"
	"github.com/m04kA/SMC-SlotService/internal/service/snapshots"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

// fakeBackend бэкенд бронирований: отдает снапшоты и создает брони
type fakeBackend struct {
	mu            sync.Mutex
	booked        []domain.BookedInterval
	snapshotCalls int
	createCalls   int
	onCreate      func() (*venueservice.BookingResult, error)
}

func (b *fakeBackend) GetBookedSlots(_ context.Context, _ int64, _ time.Time) ([]domain.BookedInterval, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snapshotCalls++
	return append([]domain.BookedInterval(nil), b.booked...), nil
}

func (b *fakeBackend) CreateBooking(_ context.Context, _ string, _ int64, _, _ time.Time) (*venueservice.BookingResult, error) {
	b.mu.Lock()
	b.createCalls++
	onCreate := b.onCreate
	b.mu.Unlock()
	return onCreate()
}

type fakeAttempts struct {
	mu       sync.Mutex
	attempts []*domain.BookingAttempt
}

func (f *fakeAttempts) Create(_ context.Context, a *domain.BookingAttempt) (*domain.BookingAttempt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts = append(f.attempts, a)
	return a, nil
}

type fakeMetrics struct {
	outcomes []string
}

func (m *fakeMetrics) RecordBookingSubmission(outcome string) {
	m.outcomes = append(m.outcomes, outcome)
}

var (
	today = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	now   = today.Add(8 * time.Hour)
)

type fixture struct {
	uc        *UseCase
	repo      *sessionRepo.Repository
	backend   *fakeBackend
	snapshots *snapshots.Service
	attempts  *fakeAttempts
	metrics   *fakeMetrics
}

func setup(t *testing.T) *fixture {
	t.Helper()

	repo := sessionRepo.NewRepository(time.Hour)
	session := &domain.BookingSession{
		ID:           "s1",
		Venue:        domain.Venue{ID: 7, Hours: domain.OperatingHours{Opening: "06:00", Closing: "23:00"}},
		SelectedDate: today,
		State:        domain.SessionDateSelected,
	}
	session.SelectTime("15:00")
	_, err := repo.Create(context.Background(), session)
	require.NoError(t, err)

	backend := &fakeBackend{onCreate: func() (*venueservice.BookingResult, error) {
		return &venueservice.BookingResult{ID: 42}, nil
	}}
	snaps := snapshots.NewService(snapshotCache.NewMemoryCache(), backend, time.Minute, nil, logger.NewNop())
	attempts := &fakeAttempts{}
	m := &fakeMetrics{}

	uc := NewUseCase(repo, backend, snaps, attempts, m, 5*time.Second, logger.NewNop())
	uc.timeProvider = fixedTime{now: now}

	return &fixture{uc: uc, repo: repo, backend: backend, snapshots: snaps, attempts: attempts, metrics: m}
}

func submit(f *fixture) (*Response, error) {
	return f.uc.Execute(context.Background(), &Request{SessionID: "s1", Token: "user-token", TermsAccepted: true})
}

func isBooked(t *testing.T, f *fixture, slot types.TimeString) bool {
	t.Helper()
	intervals, err := f.snapshots.Get(context.Background(), 7, today)
	require.NoError(t, err)

	start := today.Add(time.Duration(slot.Hour()) * time.Hour)
	for _, iv := range intervals {
		if iv.Overlaps(start, start.Add(time.Hour)) {
			return true
		}
	}
	return false
}

func TestUseCase_SuccessAppendsWithoutRefetch(t *testing.T) {
	f := setup(t)

	resp, err := submit(f)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, "/bookings/42/pay", resp.PaymentPath)
	assert.False(t, resp.Superseded)
	assert.Equal(t, domain.SessionConfirmed, resp.Session.State)

	assert.True(t, isBooked(t, f, "15:00"), "слот отмечен занятым сразу")
	assert.Equal(t, 1, f.backend.snapshotCalls, "без повторной загрузки снапшота")

	require.Len(t, f.attempts.attempts, 1)
	assert.Equal(t, domain.AttemptConfirmed, f.attempts.attempts[0].Outcome)
	assert.Equal(t, today.Add(15*time.Hour), f.attempts.attempts[0].StartTime)
	assert.Equal(t, []string{"confirmed"}, f.metrics.outcomes)
}

func TestUseCase_RejectionRefetchesAndClearsSelection(t *testing.T) {
	f := setup(t)
	f.backend.onCreate = func() (*venueservice.BookingResult, error) {
		// Слот занял другой пользователь
		f.backend.mu.Lock()
		f.backend.booked = append(f.backend.booked, domain.BookedInterval{
			Start: today.Add(15 * time.Hour),
			End:   today.Add(16 * time.Hour),
		})
		f.backend.mu.Unlock()
		return nil, &venueservice.RejectedError{StatusCode: 409, Message: "Slot already booked"}
	}

	_, err := submit(f)
	require.ErrorIs(t, err, ErrBookingRejected)

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, "Slot already booked", rejected.Message)

	assert.Equal(t, 2, f.backend.snapshotCalls, "снапшот перезагружен")
	assert.True(t, isBooked(t, f, "15:00"))

	stored, _ := f.repo.GetByID(context.Background(), "s1")
	assert.Equal(t, domain.SessionRejected, stored.State)
	assert.Nil(t, stored.SelectedTime)
	assert.Equal(t, "Slot already booked", stored.LastMessage)

	require.Len(t, f.attempts.attempts, 1)
	assert.Equal(t, domain.AttemptRejected, f.attempts.attempts[0].Outcome)
}

func TestUseCase_ValidationBeforeNetwork(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1", Token: "t", TermsAccepted: false})
	assert.ErrorIs(t, err, ErrTermsNotAccepted)

	_, err = f.repo.Update(context.Background(), "s1", func(s *domain.BookingSession) error {
		s.SelectDate(today)
		return nil
	})
	require.NoError(t, err)

	_, err = submit(f)
	assert.ErrorIs(t, err, ErrNoTimeSelected)

	assert.Equal(t, 0, f.backend.createCalls)
	assert.Equal(t, 0, f.backend.snapshotCalls)
	assert.Empty(t, f.attempts.attempts)
}

func TestUseCase_NoTokenRedirectsToLogin(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1", TermsAccepted: true})
	require.ErrorIs(t, err, ErrUnauthenticated)

	var authErr *AuthRequiredError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, "/login?redirect=/venues/7", authErr.Redirect)
	assert.Equal(t, 0, f.backend.createCalls)
}

func TestUseCase_BackendUnauthorized(t *testing.T) {
	f := setup(t)
	f.backend.onCreate = func() (*venueservice.BookingResult, error) {
		return nil, venueservice.ErrUnauthorized
	}

	_, err := submit(f)
	var authErr *AuthRequiredError
	require.True(t, errors.As(err, &authErr))

	stored, _ := f.repo.GetByID(context.Background(), "s1")
	assert.Equal(t, domain.SessionTimeSelected, stored.State)
	require.NotNil(t, stored.SelectedTime)
}

func TestUseCase_NetworkFailureKeepsSelectionWithoutRetry(t *testing.T) {
	f := setup(t)
	f.backend.onCreate = func() (*venueservice.BookingResult, error) {
		return nil, venueservice.ErrUnavailable
	}

	_, err := submit(f)
	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, 1, f.backend.createCalls, "без повторов")

	stored, _ := f.repo.GetByID(context.Background(), "s1")
	assert.Equal(t, domain.SessionTimeSelected, stored.State)
	require.NotNil(t, stored.SelectedTime)
	assert.Equal(t, types.TimeString("15:00"), *stored.SelectedTime)
	assert.Empty(t, stored.SubmissionToken)

	require.Len(t, f.attempts.attempts, 1)
	assert.Equal(t, domain.AttemptFailed, f.attempts.attempts[0].Outcome)
}

func TestUseCase_JournalMessageStaysValidUTF8(t *testing.T) {
	f := setup(t)
	f.backend.onCreate = func() (*venueservice.BookingResult, error) {
		return nil, fmt.Errorf("%w: %s", venueservice.ErrUnavailable, "a"+strings.Repeat("я", 300))
	}

	_, err := submit(f)
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	require.Len(t, f.attempts.attempts, 1)
	message := f.attempts.attempts[0].Message
	assert.True(t, utf8.ValidString(message))
	assert.LessOrEqual(t, len(message), domain.MaxBackendMessageLength)
}

func TestUseCase_SlotTakenInSnapshot(t *testing.T) {
	f := setup(t)
	f.backend.booked = []domain.BookedInterval{{Start: today.Add(15 * time.Hour), End: today.Add(16 * time.Hour)}}

	_, err := submit(f)
	assert.ErrorIs(t, err, ErrSlotNotSelectable)
	assert.Equal(t, 0, f.backend.createCalls)
}

func TestUseCase_SubmissionInFlight(t *testing.T) {
	f := setup(t)
	_, err := f.repo.Update(context.Background(), "s1", func(s *domain.BookingSession) error {
		s.BeginSubmission("other")
		return nil
	})
	require.NoError(t, err)

	_, err = submit(f)
	assert.ErrorIs(t, err, ErrSubmissionInFlight)
}

func TestUseCase_StaleSuccessIsFlaggedSuperseded(t *testing.T) {
	f := setup(t)
	tomorrow := today.AddDate(0, 0, 1)

	f.backend.onCreate = func() (*venueservice.BookingResult, error) {
		// Пользователь сменил дату, пока запрос был в пути
		_, err := f.repo.Update(context.Background(), "s1", func(s *domain.BookingSession) error {
			s.SelectDate(tomorrow)
			return nil
		})
		require.NoError(t, err)
		return &venueservice.BookingResult{ID: 43}, nil
	}

	resp, err := submit(f)
	require.NoError(t, err)

	assert.True(t, resp.Superseded)
	assert.Equal(t, int64(43), resp.BookingID)
	assert.Equal(t, domain.SessionDateSelected, resp.Session.State)
	assert.Equal(t, tomorrow, resp.Session.SelectedDate)
	assert.Nil(t, resp.Session.BookingID)

	assert.True(t, isBooked(t, f, "15:00"), "бронь создана, снапшот дополнен")

	require.Len(t, f.attempts.attempts, 1)
	assert.Equal(t, domain.AttemptSuperseded, f.attempts.attempts[0].Outcome)
}

func TestUseCase_StaleFailureIsDropped(t *testing.T) {
	f := setup(t)
	tomorrow := today.AddDate(0, 0, 1)

	f.backend.onCreate = func() (*venueservice.BookingResult, error) {
		_, err := f.repo.Update(context.Background(), "s1", func(s *domain.BookingSession) error {
			s.SelectDate(tomorrow)
			s.SelectTime("10:00")
			return nil
		})
		require.NoError(t, err)
		return nil, &venueservice.RejectedError{StatusCode: 409, Message: "Slot already booked"}
	}

	_, err := submit(f)
	assert.ErrorIs(t, err, ErrSuperseded)

	stored, _ := f.repo.GetByID(context.Background(), "s1")
	assert.Equal(t, domain.SessionTimeSelected, stored.State)
	require.NotNil(t, stored.SelectedTime)
	assert.Equal(t, types.TimeString("10:00"), *stored.SelectedTime)
	assert.Empty(t, stored.LastMessage)
}

func TestUseCase_SessionNotFound(t *testing.T) {
	f := setup(t)

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "missing", Token: "t", TermsAccepted: true})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
