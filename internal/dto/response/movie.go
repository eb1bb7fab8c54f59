package response

import (
	"cinema-ticketing/internal/data/entity"
	"time"
)

const dateLayout = "2006-01-02"

type MovieResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"short_description"`
	Genre            string    `json:"genre"`
	Duration         int       `json:"duration"`
	ReleaseDate      *string   `json:"release_date"`
	PosterURL        *string   `json:"poster_url"`
	CreatedAt        time.Time `json:"created_at"`
}

type MovieDetailResponse struct {
	MovieResponse
	Language  string    `json:"language"`
	Country   string    `json:"country"`
	Director  string    `json:"director"`
	Cast      string    `json:"cast"`
	Writers   string    `json:"writers"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	var releaseDate *string
	if movie.ReleaseDate != nil {
		formatted := movie.ReleaseDate.Format(dateLayout)
		releaseDate = &formatted
	}

	return MovieResponse{
		ID:               movie.ID.String(),
		Title:            movie.Title,
		Description:      movie.Description,
		ShortDescription: movie.ShortDescription,
		Genre:            movie.Genre,
		Duration:         movie.Duration,
		ReleaseDate:      releaseDate,
		PosterURL:        movie.PosterURL,
		CreatedAt:        movie.CreatedAt,
	}
}

func MovieToDetailResponse(movie *entity.Movie) MovieDetailResponse {
	return MovieDetailResponse{
		MovieResponse: MovieToResponse(movie),
		Language:      movie.Language,
		Country:       movie.Country,
		Director:      movie.Director,
		Cast:          movie.Cast,
		Writers:       movie.Writers,
		UpdatedAt:     movie.UpdatedAt,
	}
}
