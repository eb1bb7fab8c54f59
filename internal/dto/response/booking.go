package response

import (
	"cinema-ticketing/internal/data/entity"
	"time"
)

type BookingResponse struct {
	ID              string            `json:"id"`
	Reference       string            `json:"reference"`
	UserEmail       string            `json:"user_email"`
	UserName        string            `json:"user_name"`
	Showtime        string            `json:"showtime"`
	ShowtimeDetails *ShowtimeResponse `json:"showtime_details,omitempty"`
	Seats           []string          `json:"seats"`
	BookingTime     time.Time         `json:"booking_time"`
	AmountPaid      string            `json:"amount_paid"`
}

// BookingToResponse renders amount_paid with exactly two decimals, e.g. "380.00".
func BookingToResponse(booking *entity.Booking, showtime *ShowtimeResponse) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		Reference:       booking.Reference,
		UserEmail:       booking.UserEmail,
		UserName:        booking.UserName,
		Showtime:        booking.ShowtimeID.String(),
		ShowtimeDetails: showtime,
		Seats:           booking.Seats,
		BookingTime:     booking.BookingTime,
		AmountPaid:      booking.AmountPaid.StringFixed(2),
	}
}
