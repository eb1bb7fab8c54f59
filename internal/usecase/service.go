package usecase

import (
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie      MovieService
	SeatLayout SeatLayoutService
	Showtime   ShowtimeService
	Booking    BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Movie:      NewMovieService(repo, log),
		SeatLayout: NewSeatLayoutService(repo, log),
		Showtime:   NewShowtimeService(repo, log),
		Booking:    NewBookingService(repo, config.Booking, log),
	}
}
