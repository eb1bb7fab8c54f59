package adaptor

import (
	"errors"
	"net/http"

	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie      *MovieHandler
	SeatLayout *SeatLayoutHandler
	Showtime   *ShowtimeHandler
	Booking    *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:      NewMovieHandler(service.Movie, log),
		SeatLayout: NewSeatLayoutHandler(service.SeatLayout, log),
		Showtime:   NewShowtimeHandler(service.Showtime, log),
		Booking:    NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps the usecase error taxonomy onto status codes.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		validationErr  *usecase.ValidationError
		unavailableErr *usecase.SeatUnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.As(err, &unavailableErr):
		log.Info(operation+" rejected - seats unavailable",
			zap.Strings("seats", unavailableErr.Seats),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, unavailableErr.Error(), map[string][]string{
			"unavailable_seats": unavailableErr.Seats,
		})

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, capitalize(err.Error()))

	case errors.Is(err, usecase.ErrInUse):
		log.Warn(operation+" failed - in use",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, capitalize(err.Error()), nil)

	default:
		log.Error(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// pagination reads page and per_page from the query string.
func pagination(r *http.Request) request.PaginatedRequest {
	query := r.URL.Query()
	return request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
	)
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
