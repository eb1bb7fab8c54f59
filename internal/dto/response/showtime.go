package response

import (
	"cinema-ticketing/internal/data/entity"
)

type SeatLayoutResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Rows        string `json:"rows"`
	SeatsPerRow int    `json:"seats_per_row"`
	TotalSeats  int    `json:"total_seats"`
}

// ShowtimeResponse always carries both seat arrays; together they cover the layout.
type ShowtimeResponse struct {
	ID             string               `json:"id"`
	Movie          string               `json:"movie"`
	MovieDetails   *MovieDetailResponse `json:"movie_details,omitempty"`
	Date           string               `json:"date"`
	Time           string               `json:"time"`
	Screen         string               `json:"screen"`
	SeatLayout     *SeatLayoutResponse  `json:"seat_layout"`
	BookedSeats    []string             `json:"booked_seats"`
	AvailableSeats []string             `json:"available_seats"`
}

func SeatLayoutToResponse(layout *entity.SeatLayout) SeatLayoutResponse {
	return SeatLayoutResponse{
		ID:          layout.ID.String(),
		Name:        layout.Name,
		Rows:        layout.Rows,
		SeatsPerRow: layout.SeatsPerRow,
		TotalSeats:  len(layout.AllSeats()),
	}
}

// ShowtimeToResponse embeds movie details only when movie is non-nil.
func ShowtimeToResponse(showtime *entity.Showtime, movie *entity.Movie) ShowtimeResponse {
	resp := ShowtimeResponse{
		ID:             showtime.ID.String(),
		Movie:          showtime.MovieID.String(),
		Date:           showtime.ShowDate.Format(dateLayout),
		Time:           showtime.ShowTime,
		Screen:         showtime.Screen,
		BookedSeats:    showtime.BookedSeats,
		AvailableSeats: showtime.AvailableSeats(),
	}

	if resp.BookedSeats == nil {
		resp.BookedSeats = []string{}
	}

	if showtime.SeatLayout != nil {
		layout := SeatLayoutToResponse(showtime.SeatLayout)
		resp.SeatLayout = &layout
	}

	if movie != nil {
		details := MovieToDetailResponse(movie)
		resp.MovieDetails = &details
	}

	return resp
}
