package attempt

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/psqlbuilder"
)

const tableName = "booking_attempts"

var columns = []string{
	"id",
	"session_id",
	"submission_token",
	"venue_id",
	"start_time",
	"end_time",
	"outcome",
	"booking_id",
	"message",
	"created_at",
}

// Repository журнал отправок бронирования в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись об отправке бронирования
func (r *Repository) Create(ctx context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error) {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"session_id",
			"submission_token",
			"venue_id",
			"start_time",
			"end_time",
			"outcome",
			"booking_id",
			"message",
		).
		Values(
			attempt.SessionID,
			attempt.SubmissionToken,
			attempt.VenueID,
			attempt.StartTime.UTC(),
			attempt.EndTime.UTC(),
			string(attempt.Outcome),
			attempt.BookingID,
			attempt.Message,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&attempt.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	attempt.CreatedAt = createdAt.Time
	return attempt, nil
}

// ListByVenue возвращает последние записи журнала площадки, новые первыми
func (r *Repository) ListByVenue(ctx context.Context, venueID int64, limit int) ([]*domain.BookingAttempt, error) {
	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	attempts := make([]*domain.BookingAttempt, 0)
	for rows.Next() {
		var (
			a         domain.BookingAttempt
			outcome   string
			bookingID sql.NullInt64
			createdAt sql.NullTime
		)

		if err := rows.Scan(
			&a.ID,
			&a.SessionID,
			&a.SubmissionToken,
			&a.VenueID,
			&a.StartTime,
			&a.EndTime,
			&outcome,
			&bookingID,
			&a.Message,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListByVenue - scan attempt: %v", ErrScanRow, err)
		}

		a.Outcome = domain.AttemptOutcome(outcome)
		if bookingID.Valid {
			id := bookingID.Int64
			a.BookingID = &id
		}
		a.CreatedAt = createdAt.Time
		attempts = append(attempts, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByVenue - iterate rows: %v", ErrScanRow, err)
	}

	return attempts, nil
}

// NopRepository журнал-заглушка, когда база данных отключена
type NopRepository struct{}

func (NopRepository) Create(_ context.Context, attempt *domain.BookingAttempt) (*domain.BookingAttempt, error) {
	return attempt, nil
}

func (NopRepository) ListByVenue(_ context.Context, _ int64, _ int) ([]*domain.BookingAttempt, error) {
	return []*domain.BookingAttempt{}, nil
}
