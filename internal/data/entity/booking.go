package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Booking is immutable once committed.
type Booking struct {
	ID          uuid.UUID       `db:"id"`
	Reference   string          `db:"reference"`
	UserEmail   string          `db:"user_email"`
	UserName    string          `db:"user_name"`
	ShowtimeID  uuid.UUID       `db:"showtime_id"`
	Seats       []string        `db:"seats"`
	BookingTime time.Time       `db:"booking_time"`
	AmountPaid  decimal.Decimal `db:"amount_paid"`
}
