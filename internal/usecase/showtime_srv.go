package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShowtimeService interface {
	GetShowtimes(ctx context.Context, req *request.ShowtimeListRequest) (*response.PaginatedResponse[response.ShowtimeResponse], error)
	GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)

	// Admin
	CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error)
}

type showtimeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, log *zap.Logger) ShowtimeService {
	return &showtimeService{
		repo: repo,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) GetShowtimes(ctx context.Context, req *request.ShowtimeListRequest) (*response.PaginatedResponse[response.ShowtimeResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	var filter repository.ShowtimeFilter
	if req.Movie != "" {
		movieID, err := uuid.Parse(req.Movie)
		if err != nil {
			return nil, newValidationError(map[string]string{"movie": "Must be a valid UUID"})
		}
		filter.MovieID = &movieID
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return nil, newValidationError(map[string]string{"date": "Must match format 2006-01-02"})
		}
		filter.Date = &date
	}

	page := request.NewPaginatedRequest(req.Page, req.PerPage)

	showtimes, err := s.repo.Showtime.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get showtimes", zap.Error(err))
		return nil, fmt.Errorf("get showtimes: %w", err)
	}

	total, err := s.repo.Showtime.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count showtimes: %w", err)
	}

	movies := map[uuid.UUID]*entity.Movie{}
	if req.MovieDetails {
		ids := make([]uuid.UUID, 0, len(showtimes))
		for _, st := range showtimes {
			ids = append(ids, st.MovieID)
		}
		if movies, err = s.repo.Movie.FindByIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("get showtime movies: %w", err)
		}
	}

	results := make([]response.ShowtimeResponse, len(showtimes))
	for i, st := range showtimes {
		results[i] = response.ShowtimeToResponse(st, movies[st.MovieID])
	}

	return response.NewPaginatedResponse(results, page.Page, page.Limit(), total), nil
}

func (s *showtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	id, err := parseID("showtime", showtimeID)
	if err != nil {
		return nil, err
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get showtime: %w", err)
	}
	if showtime == nil {
		return nil, notFound("showtime", id)
	}

	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		return nil, fmt.Errorf("get showtime movie: %w", err)
	}

	resp := response.ShowtimeToResponse(showtime, movie)
	return &resp, nil
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	movieID, err := uuid.Parse(req.Movie)
	if err != nil {
		return nil, newValidationError(map[string]string{"movie": "Must be a valid UUID"})
	}
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	if movie == nil {
		return nil, newValidationError(map[string]string{"movie": fmt.Sprintf("Movie %s does not exist", movieID)})
	}

	showDate, err := parseDate(req.Date)
	if err != nil {
		return nil, newValidationError(map[string]string{"date": "Must match format 2006-01-02"})
	}

	showtime := &entity.Showtime{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		MovieID:     movieID,
		ShowDate:    showDate,
		ShowTime:    req.Time,
		Screen:      req.Screen,
		BookedSeats: []string{},
	}

	if req.SeatLayout != nil {
		layoutID, err := uuid.Parse(*req.SeatLayout)
		if err != nil {
			return nil, newValidationError(map[string]string{"seat_layout": "Must be a valid UUID"})
		}
		layout, err := s.repo.SeatLayout.FindByID(ctx, layoutID)
		if err != nil {
			return nil, fmt.Errorf("get seat layout: %w", err)
		}
		if layout == nil {
			return nil, newValidationError(map[string]string{"seat_layout": fmt.Sprintf("Seat layout %s does not exist", layoutID)})
		}
		showtime.SeatLayoutID = &layout.ID
		showtime.SeatLayout = layout
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie_id", movieID.String()),
		zap.String("date", req.Date),
		zap.String("time", req.Time),
	)

	resp := response.ShowtimeToResponse(showtime, movie)
	return &resp, nil
}
