package response

// PaginatedResponse keeps the flat envelope the web client reads: count + results.
type PaginatedResponse[T any] struct {
	Count      int64 `json:"count"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	Results    []T   `json:"results"`
}

func NewPaginatedResponse[T any](results []T, page, perPage int, total int64) *PaginatedResponse[T] {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((total + int64(perPage) - 1) / int64(perPage))
	}

	if results == nil {
		results = []T{}
	}

	return &PaginatedResponse[T]{
		Count:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		Results:    results,
	}
}
