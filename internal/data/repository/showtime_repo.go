package repository

import (
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/pkg/database"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ShowtimeFilter narrows FindAll/CountAll. Zero values mean "no filter".
type ShowtimeFilter struct {
	MovieID *uuid.UUID
	Date    *time.Time
}

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindAll(ctx context.Context, filter ShowtimeFilter, limit, offset int) ([]*entity.Showtime, error)
	CountAll(ctx context.Context, filter ShowtimeFilter) (int64, error)

	// CommitBooking appends booking.Seats to the showtime's booked seats and
	// inserts the booking in one transaction. It returns *SeatConflictError
	// when any seat was taken in the meantime and ErrNotFound when the
	// showtime is gone.
	CommitBooking(ctx context.Context, booking *entity.Booking) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

const showtimeSelect = `
	SELECT s.id, s.movie_id, s.show_date, to_char(s.show_time, 'HH24:MI'), s.screen,
	       s.seat_layout_id, s.booked_seats, s.created_at,
	       l.name, l.rows, l.seats_per_row, l.created_at
	FROM showtimes s
	LEFT JOIN seat_layouts l ON l.id = s.seat_layout_id
`

func scanShowtime(row pgx.Row) (*entity.Showtime, error) {
	var (
		showtime      entity.Showtime
		layoutName    *string
		layoutRows    *string
		layoutPerRow  *int
		layoutCreated *time.Time
	)

	err := row.Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.ShowDate,
		&showtime.ShowTime,
		&showtime.Screen,
		&showtime.SeatLayoutID,
		&showtime.BookedSeats,
		&showtime.CreatedAt,
		&layoutName,
		&layoutRows,
		&layoutPerRow,
		&layoutCreated,
	)
	if err != nil {
		return nil, err
	}

	if showtime.BookedSeats == nil {
		showtime.BookedSeats = []string{}
	}

	if showtime.SeatLayoutID != nil && layoutName != nil {
		showtime.SeatLayout = &entity.SeatLayout{
			BaseSimple:  entity.BaseSimple{ID: *showtime.SeatLayoutID, CreatedAt: *layoutCreated},
			Name:        *layoutName,
			Rows:        *layoutRows,
			SeatsPerRow: *layoutPerRow,
		}
	}

	return &showtime, nil
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, movie_id, show_date, show_time, screen, seat_layout_id, booked_seats, created_at)
		VALUES ($1, $2, $3, $4::text::time, $5, $6, $7, $8)
	`

	booked := showtime.BookedSeats
	if booked == nil {
		booked = []string{}
	}

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.ShowDate,
		showtime.ShowTime,
		showtime.Screen,
		showtime.SeatLayoutID,
		booked,
		showtime.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
		)
		return fmt.Errorf("failed to create showtime: %w", err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	showtime, err := scanShowtime(r.db.QueryRow(ctx, showtimeSelect+` WHERE s.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find showtime: %w", err)
	}

	return showtime, nil
}

func (f ShowtimeFilter) whereClause() (string, []any) {
	var conds []string
	var args []any

	if f.MovieID != nil {
		args = append(args, *f.MovieID)
		conds = append(conds, fmt.Sprintf("s.movie_id = $%d", len(args)))
	}
	if f.Date != nil {
		args = append(args, *f.Date)
		conds = append(conds, fmt.Sprintf("s.show_date = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *showtimeRepository) FindAll(ctx context.Context, filter ShowtimeFilter, limit, offset int) ([]*entity.Showtime, error) {
	where, args := filter.whereClause()
	query := showtimeSelect + where +
		fmt.Sprintf(" ORDER BY s.show_date, s.show_time, s.screen, s.id LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find showtimes",
			zap.Error(err),
			zap.Int("offset", offset),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("failed to find showtimes: %w", err)
	}
	defer rows.Close()

	showtimes := make([]*entity.Showtime, 0)
	for rows.Next() {
		showtime, err := scanShowtime(rows)
		if err != nil {
			r.log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan showtime: %w", err)
		}
		showtimes = append(showtimes, showtime)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return showtimes, nil
}

func (r *showtimeRepository) CountAll(ctx context.Context, filter ShowtimeFilter) (int64, error) {
	where, args := filter.whereClause()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM showtimes s`+where, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count showtimes", zap.Error(err))
		return 0, fmt.Errorf("failed to count showtimes: %w", err)
	}

	return total, nil
}

func (r *showtimeRepository) CommitBooking(ctx context.Context, booking *entity.Booking) error {
	err := database.RunInTx(ctx, r.db, func(tx pgx.Tx) error {
		// Row lock plus re-check: a concurrent writer that committed first
		// makes the overlap test fail here instead of double-booking.
		tag, err := tx.Exec(ctx, `
			UPDATE showtimes
			SET booked_seats = booked_seats || $2::text[]
			WHERE id = $1 AND NOT (booked_seats && $2::text[])
		`, booking.ShowtimeID, booking.Seats)
		if err != nil {
			return fmt.Errorf("reserve seats: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return r.explainRejectedReserve(ctx, tx, booking)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO bookings (id, reference, user_email, user_name, showtime_id, seats, booking_time, amount_paid)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8::text::numeric)
		`,
			booking.ID,
			booking.Reference,
			booking.UserEmail,
			booking.UserName,
			booking.ShowtimeID,
			booking.Seats,
			booking.BookingTime,
			booking.AmountPaid.StringFixed(2),
		)
		if err != nil {
			if pgErrorCode(err) == pgerrcode.UniqueViolation {
				return fmt.Errorf("reference %s: %w", booking.Reference, ErrDuplicateReference)
			}
			return fmt.Errorf("insert booking: %w", err)
		}

		return nil
	})

	var conflict *SeatConflictError
	switch {
	case err == nil:
		r.log.Info("Booking committed",
			zap.String("reference", booking.Reference),
			zap.String("showtime_id", booking.ShowtimeID.String()),
			zap.Strings("seats", booking.Seats),
		)
		return nil
	case errors.As(err, &conflict), errors.Is(err, ErrNotFound):
		return err
	default:
		r.log.Warn("Failed to commit booking",
			zap.Error(err),
			zap.String("showtime_id", booking.ShowtimeID.String()),
			zap.Bool("transient", IsTransient(err)),
		)
		return err
	}
}

// explainRejectedReserve turns a zero-row reserve into ErrNotFound or a SeatConflictError.
func (r *showtimeRepository) explainRejectedReserve(ctx context.Context, tx pgx.Tx, booking *entity.Booking) error {
	var booked []string
	err := tx.QueryRow(ctx, `SELECT booked_seats FROM showtimes WHERE id = $1`, booking.ShowtimeID).Scan(&booked)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("showtime %s: %w", booking.ShowtimeID, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("reload booked seats: %w", err)
	}

	current := entity.Showtime{BookedSeats: booked}
	conflicts := current.ConflictingSeats(booking.Seats)
	if len(conflicts) == 0 {
		// the overlap went away between the two statements; let the caller retry
		return fmt.Errorf("reserve seats: %w", ErrSeatsContended)
	}

	return &SeatConflictError{Seats: conflicts}
}
