package request

type ShowtimeRequest struct {
	Movie      string  `json:"movie" validate:"required,uuid"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string  `json:"time" validate:"required,datetime=15:04"`
	Screen     string  `json:"screen" validate:"required,max=50"`
	SeatLayout *string `json:"seat_layout,omitempty" validate:"omitempty,uuid"`
}

type ShowtimeListRequest struct {
	PaginatedRequest
	Movie        string `json:"movie" validate:"omitempty,uuid"`
	Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	MovieDetails bool   `json:"movie_details"`
}

type SeatLayoutRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Rows        string `json:"rows" validate:"required,max=255"`
	SeatsPerRow int    `json:"seats_per_row" validate:"required,gt=0,max=100"`
}
