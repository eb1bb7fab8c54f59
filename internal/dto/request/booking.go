package request

type CreateBookingRequest struct {
	UserEmail string   `json:"user_email" validate:"required,email,max=254"`
	UserName  string   `json:"user_name" validate:"required,max=100"`
	Showtime  string   `json:"showtime" validate:"required"`
	Seats     []string `json:"seats" validate:"required,min=1,max=50,dive,required"`
}

type BookingListRequest struct {
	PaginatedRequest
	UserEmail string `json:"user_email"`
}
