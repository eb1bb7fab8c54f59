package wire

import (
	"net/http"

	"cinema-ticketing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShowtime(
	r chi.Router,
	showtimeHandler *adaptor.ShowtimeHandler,
	layoutHandler *adaptor.SeatLayoutHandler,
	adminOnly func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	// Never cached: booked seats change with every booking.
	r.Get("/api/showtimes", showtimeHandler.GetShowtimes)
	r.Get("/api/showtimes/{id}", showtimeHandler.GetShowtimeByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(adminOnly)

		r.Post("/showtimes", showtimeHandler.CreateShowtime)

		r.Get("/seat-layouts", layoutHandler.GetSeatLayouts)
		r.Post("/seat-layouts", layoutHandler.CreateSeatLayout)
	})
}
