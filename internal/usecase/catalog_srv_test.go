package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/mocks"
	"cinema-ticketing/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMovieService_GetMoviesMapsFilters(t *testing.T) {
	movies := new(mocks.MockMovieRepo)
	svc := usecase.NewMovieService(&repository.Repository{Movie: movies}, zap.NewNop())

	release := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	filter := repository.MovieFilter{Search: "dune", Genre: "Sci-Fi", ReleaseDate: &release, Ordering: "-release_date"}

	movies.On("FindAll", mock.Anything, filter, 5, 5).Return([]*entity.Movie{
		{Base: entity.Base{ID: testMovieID}, Title: "Dune: Part Two", ReleaseDate: &release},
	}, nil).Once()
	movies.On("CountAll", mock.Anything, filter).Return(int64(6), nil).Once()

	resp, err := svc.GetMovies(context.Background(), &request.MovieListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 2, PerPage: 5},
		Search:           "dune",
		Genre:            "Sci-Fi",
		ReleaseDate:      "2024-03-01",
		Ordering:         "-release_date",
	})
	require.NoError(t, err)

	assert.EqualValues(t, 6, resp.Count)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 2, resp.TotalPages)
	require.Len(t, resp.Results, 1)
	require.NotNil(t, resp.Results[0].ReleaseDate)
	assert.Equal(t, "2024-03-01", *resp.Results[0].ReleaseDate)
	movies.AssertExpectations(t)
}

func TestMovieService_GetMoviesRejectsBadQuery(t *testing.T) {
	svc := usecase.NewMovieService(&repository.Repository{Movie: new(mocks.MockMovieRepo)}, zap.NewNop())

	tests := map[string]request.MovieListRequest{
		"ordering":     {Ordering: "rating"},
		"release_date": {ReleaseDate: "01/03/2024"},
	}

	for field, req := range tests {
		t.Run(field, func(t *testing.T) {
			_, err := svc.GetMovies(context.Background(), &req)

			var verr *usecase.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, field)
		})
	}
}

func TestMovieService_GetMovieByID(t *testing.T) {
	movies := new(mocks.MockMovieRepo)
	svc := usecase.NewMovieService(&repository.Repository{Movie: movies}, zap.NewNop())

	movies.On("FindByID", mock.Anything, testMovieID).Return(&entity.Movie{
		Base:     entity.Base{ID: testMovieID},
		Title:    "Dune: Part Two",
		Director: "Denis Villeneuve",
	}, nil).Once()
	missing := uuid.New()
	movies.On("FindByID", mock.Anything, missing).Return(nil, nil).Once()

	got, err := svc.GetMovieByID(context.Background(), testMovieID.String())
	require.NoError(t, err)
	assert.Equal(t, "Denis Villeneuve", got.Director)

	_, err = svc.GetMovieByID(context.Background(), missing.String())
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	_, err = svc.GetMovieByID(context.Background(), "42")
	assert.ErrorIs(t, err, usecase.ErrNotFound)

	movies.AssertExpectations(t)
}

func TestMovieService_DeleteMovie(t *testing.T) {
	movies := new(mocks.MockMovieRepo)
	svc := usecase.NewMovieService(&repository.Repository{Movie: movies}, zap.NewNop())

	inUse := uuid.New()
	gone := uuid.New()
	movies.On("Delete", mock.Anything, testMovieID).Return(nil).Once()
	movies.On("Delete", mock.Anything, inUse).Return(fmt.Errorf("wrapped: %w", repository.ErrInUse)).Once()
	movies.On("Delete", mock.Anything, gone).Return(repository.ErrNotFound).Once()

	assert.NoError(t, svc.DeleteMovie(context.Background(), testMovieID.String()))
	assert.ErrorIs(t, svc.DeleteMovie(context.Background(), inUse.String()), usecase.ErrInUse)
	assert.ErrorIs(t, svc.DeleteMovie(context.Background(), gone.String()), usecase.ErrNotFound)
	movies.AssertExpectations(t)
}

func TestMovieService_UpdateMovieIsPartial(t *testing.T) {
	movies := new(mocks.MockMovieRepo)
	svc := usecase.NewMovieService(&repository.Repository{Movie: movies}, zap.NewNop())

	movies.On("FindByID", mock.Anything, testMovieID).Return(&entity.Movie{
		Base:  entity.Base{ID: testMovieID},
		Title: "Dune",
		Genre: "Sci-Fi",
	}, nil).Once()
	movies.On("Update", mock.Anything, mock.MatchedBy(func(m *entity.Movie) bool {
		return m.Title == "Dune: Part Two" && m.Genre == "Sci-Fi"
	})).Return(nil).Once()

	title := "Dune: Part Two"
	got, err := svc.UpdateMovie(context.Background(), testMovieID.String(), &request.MovieUpdateRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Dune: Part Two", got.Title)
	assert.Equal(t, "Sci-Fi", got.Genre)
	movies.AssertExpectations(t)
}

func TestShowtimeService_GetShowtimeByID(t *testing.T) {
	showtimes := new(mocks.MockShowtimeRepo)
	movies := new(mocks.MockMovieRepo)
	svc := usecase.NewShowtimeService(&repository.Repository{Showtime: showtimes, Movie: movies}, zap.NewNop())

	showtimes.On("FindByID", mock.Anything, testShowtimeID).Return(showtime("A1"), nil).Once()
	movies.On("FindByID", mock.Anything, testMovieID).Return(&entity.Movie{Base: entity.Base{ID: testMovieID}, Title: "Dune"}, nil).Once()

	got, err := svc.GetShowtimeByID(context.Background(), testShowtimeID.String())
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", got.Date)
	assert.Equal(t, "14:30", got.Time)
	assert.Equal(t, []string{"A1"}, got.BookedSeats)
	assert.Equal(t, []string{"A2", "B1", "B2"}, got.AvailableSeats)
	require.NotNil(t, got.SeatLayout)
	assert.Equal(t, 4, got.SeatLayout.TotalSeats)
	require.NotNil(t, got.MovieDetails)
	assert.Equal(t, "Dune", got.MovieDetails.Title)

	missing := uuid.New()
	showtimes.On("FindByID", mock.Anything, missing).Return(nil, nil).Once()
	_, err = svc.GetShowtimeByID(context.Background(), missing.String())
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestShowtimeService_GetShowtimesEmbedsMoviesOnRequest(t *testing.T) {
	showtimes := new(mocks.MockShowtimeRepo)
	movies := new(mocks.MockMovieRepo)
	svc := usecase.NewShowtimeService(&repository.Repository{Showtime: showtimes, Movie: movies}, zap.NewNop())

	filter := repository.ShowtimeFilter{MovieID: &testMovieID}
	showtimes.On("FindAll", mock.Anything, filter, 10, 0).Return([]*entity.Showtime{showtime()}, nil).Twice()
	showtimes.On("CountAll", mock.Anything, filter).Return(int64(1), nil).Twice()
	movies.On("FindByIDs", mock.Anything, []uuid.UUID{testMovieID}).Return(map[uuid.UUID]*entity.Movie{
		testMovieID: {Base: entity.Base{ID: testMovieID}, Title: "Dune"},
	}, nil).Once()

	plain, err := svc.GetShowtimes(context.Background(), &request.ShowtimeListRequest{Movie: testMovieID.String()})
	require.NoError(t, err)
	require.Len(t, plain.Results, 1)
	assert.Nil(t, plain.Results[0].MovieDetails)

	detailed, err := svc.GetShowtimes(context.Background(), &request.ShowtimeListRequest{Movie: testMovieID.String(), MovieDetails: true})
	require.NoError(t, err)
	require.Len(t, detailed.Results, 1)
	require.NotNil(t, detailed.Results[0].MovieDetails)
	assert.Equal(t, "Dune", detailed.Results[0].MovieDetails.Title)

	showtimes.AssertExpectations(t)
	movies.AssertExpectations(t)
}

func TestShowtimeService_CreateShowtime(t *testing.T) {
	showtimes := new(mocks.MockShowtimeRepo)
	movies := new(mocks.MockMovieRepo)
	layouts := new(mocks.MockSeatLayoutRepo)
	svc := usecase.NewShowtimeService(&repository.Repository{Showtime: showtimes, Movie: movies, SeatLayout: layouts}, zap.NewNop())

	movies.On("FindByID", mock.Anything, testMovieID).Return(&entity.Movie{Base: entity.Base{ID: testMovieID}}, nil)
	layouts.On("FindByID", mock.Anything, testLayoutID).Return(&entity.SeatLayout{
		BaseSimple: entity.BaseSimple{ID: testLayoutID}, Rows: "A", SeatsPerRow: 3,
	}, nil).Once()
	showtimes.On("Create", mock.Anything, mock.MatchedBy(func(st *entity.Showtime) bool {
		return st.ShowTime == "19:45" && len(st.BookedSeats) == 0 && *st.SeatLayoutID == testLayoutID
	})).Return(nil).Once()

	layoutID := testLayoutID.String()
	got, err := svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		Movie:      testMovieID.String(),
		Date:       "2024-05-02",
		Time:       "19:45",
		Screen:     "2",
		SeatLayout: &layoutID,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2", "A3"}, got.AvailableSeats)
	assert.Empty(t, got.BookedSeats)

	unknown := uuid.New()
	movies.On("FindByID", mock.Anything, unknown).Return(nil, nil).Once()
	_, err = svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		Movie: unknown.String(), Date: "2024-05-02", Time: "19:45", Screen: "2",
	})
	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "movie")

	_, err = svc.CreateShowtime(context.Background(), &request.ShowtimeRequest{
		Movie: testMovieID.String(), Date: "2024-05-02", Time: "7pm", Screen: "2",
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "time")

	showtimes.AssertExpectations(t)
	layouts.AssertExpectations(t)
}

func TestSeatLayoutService_CreateSeatLayout(t *testing.T) {
	tests := []struct {
		name     string
		rows     string
		wantRows string
		wantErr  bool
	}{
		{name: "normalizes labels", rows: " A, B ,,C", wantRows: "A,B,C"},
		{name: "rejects duplicate rows", rows: "A,B,A", wantErr: true},
		{name: "rejects digits in labels", rows: "A,A1", wantErr: true},
		{name: "rejects blank rows", rows: " , ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layouts := new(mocks.MockSeatLayoutRepo)
			svc := usecase.NewSeatLayoutService(&repository.Repository{SeatLayout: layouts}, zap.NewNop())

			if !tt.wantErr {
				layouts.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.SeatLayout) bool {
					return l.Rows == tt.wantRows
				})).Return(nil).Once()
			}

			got, err := svc.CreateSeatLayout(context.Background(), &request.SeatLayoutRequest{
				Name: "Hall", Rows: tt.rows, SeatsPerRow: 10,
			})

			if tt.wantErr {
				var verr *usecase.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, "rows")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, got.Rows)
			assert.Equal(t, 30, got.TotalSeats)
			layouts.AssertExpectations(t)
		})
	}
}
