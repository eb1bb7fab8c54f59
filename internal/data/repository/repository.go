package repository

import (
	"cinema-ticketing/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Movie      MovieRepository
	SeatLayout SeatLayoutRepository
	Showtime   ShowtimeRepository
	Booking    BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Movie:      NewMovieRepository(db, log),
		SeatLayout: NewSeatLayoutRepository(db, log),
		Showtime:   NewShowtimeRepository(db, log),
		Booking:    NewBookingRepository(db, log),
	}
}
