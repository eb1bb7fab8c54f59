package wire

import (
	"cinema-ticketing/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// POST /api/bookings - Create a booking; the only writer of booked seats
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings?user_email= - Booking history for one email
	r.Get("/api/bookings", bookingHandler.GetBookings)
}
