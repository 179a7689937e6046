package attempt

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/ptr"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO booking_attempts (session_id,submission_token,venue_id,start_time,end_time,outcome,booking_id,message) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, created_at")).
		WithArgs("s-1", "tok-1", int64(7), start, start.Add(time.Hour), "confirmed", int64(99), "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt))

	repo := NewRepository(db)
	got, err := repo.Create(context.Background(), &domain.BookingAttempt{
		SessionID:       "s-1",
		SubmissionToken: "tok-1",
		VenueID:         7,
		StartTime:       start,
		EndTime:         start.Add(time.Hour),
		Outcome:         domain.AttemptConfirmed,
		BookingID:       ptr.Ptr(int64(99)),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, createdAt, got.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO booking_attempts").WillReturnError(assert.AnError)

	_, err = NewRepository(db).Create(context.Background(), &domain.BookingAttempt{Outcome: domain.AttemptFailed})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestRepository_ListByVenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow(int64(2), "s-2", "tok-2", int64(7), start, start.Add(time.Hour), "rejected", nil, "Slot already booked", start).
		AddRow(int64(1), "s-1", "tok-1", int64(7), start, start.Add(time.Hour), "confirmed", int64(99), "", start)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, session_id, submission_token, venue_id, start_time, end_time, outcome, booking_id, message, created_at FROM booking_attempts WHERE venue_id = $1 ORDER BY created_at DESC, id DESC LIMIT 20")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := NewRepository(db).ListByVenue(context.Background(), 7, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, domain.AttemptRejected, got[0].Outcome)
	assert.Nil(t, got[0].BookingID)
	assert.Equal(t, "Slot already booked", got[0].Message)

	require.NotNil(t, got[1].BookingID)
	assert.Equal(t, int64(99), *got[1].BookingID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNopRepository(t *testing.T) {
	var repo NopRepository

	a := &domain.BookingAttempt{VenueID: 1}
	got, err := repo.Create(context.Background(), a)
	require.NoError(t, err)
	assert.Same(t, a, got)

	list, err := repo.ListByVenue(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Empty(t, list)
}
