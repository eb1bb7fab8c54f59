package repository

import (
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/pkg/database"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Bookings are written by ShowtimeRepository.CommitBooking; this side only reads.
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	FindByUserEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error)
	CountByUserEmail(ctx context.Context, email string) (int64, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, user_email, user_name, showtime_id, seats, booking_time, amount_paid::text`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var (
		booking entity.Booking
		amount  string
	)

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserEmail,
		&booking.UserName,
		&booking.ShowtimeID,
		&booking.Seats,
		&booking.BookingTime,
		&amount,
	)
	if err != nil {
		return nil, err
	}

	booking.AmountPaid, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("parse amount_paid %q: %w", amount, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE reference = $1`, reference))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByUserEmail(ctx context.Context, email string, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_email = $1
		ORDER BY booking_time DESC, id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, email, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user email",
			zap.Error(err),
			zap.String("user_email", email),
		)
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rows: %w", err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByUserEmail(ctx context.Context, email string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_email = $1`, email).Scan(&total)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err), zap.String("user_email", email))
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return total, nil
}
