package request

type MovieRequest struct {
	Title            string  `json:"title" validate:"required,max=200"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"short_description" validate:"max=300"`
	Genre            string  `json:"genre" validate:"max=100"`
	Duration         int     `json:"duration" validate:"min=0,max=999"`
	ReleaseDate      string  `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Language         string  `json:"language" validate:"max=50"`
	Country          string  `json:"country" validate:"max=100"`
	Director         string  `json:"director" validate:"max=200"`
	Cast             string  `json:"cast"`
	Writers          string  `json:"writers"`
	PosterURL        *string `json:"poster_url,omitempty" validate:"omitempty,max=500"`
}

// MovieUpdateRequest is a partial update: nil fields are left untouched.
type MovieUpdateRequest struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description      *string `json:"description,omitempty"`
	ShortDescription *string `json:"short_description,omitempty" validate:"omitempty,max=300"`
	Genre            *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	Duration         *int    `json:"duration,omitempty" validate:"omitempty,min=0,max=999"`
	ReleaseDate      *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Language         *string `json:"language,omitempty" validate:"omitempty,max=50"`
	Country          *string `json:"country,omitempty" validate:"omitempty,max=100"`
	Director         *string `json:"director,omitempty" validate:"omitempty,max=200"`
	Cast             *string `json:"cast,omitempty"`
	Writers          *string `json:"writers,omitempty"`
	PosterURL        *string `json:"poster_url,omitempty" validate:"omitempty,max=500"`
}

type MovieListRequest struct {
	PaginatedRequest
	Search      string `json:"search"`
	Genre       string `json:"genre"`
	ReleaseDate string `json:"release_date" validate:"omitempty,datetime=2006-01-02"`
	Ordering    string `json:"ordering" validate:"omitempty,oneof=title -title release_date -release_date created_at -created_at"`
}
