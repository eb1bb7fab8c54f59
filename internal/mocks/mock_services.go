package mocks

import (
	"context"

	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
	usecase.BookingService
}

func (m *MockBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.BookingResponse), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.BookingResponse]), args.Error(1)
}

type MockShowtimeService struct {
	mock.Mock
	usecase.ShowtimeService
}

func (m *MockShowtimeService) GetShowtimes(ctx context.Context, req *request.ShowtimeListRequest) (*response.PaginatedResponse[response.ShowtimeResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.ShowtimeResponse]), args.Error(1)
}

func (m *MockShowtimeService) GetShowtimeByID(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	args := m.Called(ctx, showtimeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ShowtimeResponse), args.Error(1)
}

func (m *MockShowtimeService) CreateShowtime(ctx context.Context, req *request.ShowtimeRequest) (*response.ShowtimeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ShowtimeResponse), args.Error(1)
}

type MockMovieService struct {
	mock.Mock
	usecase.MovieService
}

func (m *MockMovieService) GetMovies(ctx context.Context, req *request.MovieListRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.PaginatedResponse[response.MovieResponse]), args.Error(1)
}

func (m *MockMovieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieDetailResponse, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.MovieDetailResponse), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, movieID string) error {
	args := m.Called(ctx, movieID)
	return args.Error(0)
}
