package adaptor_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cinema-ticketing/internal/adaptor"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/internal/mocks"
	"cinema-ticketing/internal/usecase"
	"cinema-ticketing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const showtimeID = "7b0c7c43-58a4-4c5e-9d49-1f7f7f2b7a10"

func newRouter(booking usecase.BookingService, showtime usecase.ShowtimeService, movie usecase.MovieService) http.Handler {
	h := adaptor.NewHandler(&usecase.Service{
		Booking:  booking,
		Showtime: showtime,
		Movie:    movie,
	}, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/bookings", h.Booking.CreateBooking)
	r.Get("/api/bookings", h.Booking.GetBookings)
	r.Get("/api/showtimes", h.Showtime.GetShowtimes)
	r.Get("/api/showtimes/{id}", h.Showtime.GetShowtimeByID)
	r.Get("/api/movies/{id}", h.Movie.GetMovieByID)
	r.Delete("/api/admin/movies/{id}", h.Movie.DeleteMovie)
	return r
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorBody {
	t.Helper()
	var body utils.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	body := fmt.Sprintf(`{"user_email":"u@x.com","user_name":"U","showtime":%q,"seats":["A2","B1"]}`, showtimeID)
	wantReq := &request.CreateBookingRequest{
		UserEmail: "u@x.com",
		UserName:  "U",
		Showtime:  showtimeID,
		Seats:     []string{"A2", "B1"},
	}

	tests := []struct {
		name       string
		body       string
		result     *response.BookingResponse
		err        error
		wantStatus int
		check      func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "created",
			body: body,
			result: &response.BookingResponse{
				Reference:  "BOOK-20240501-143000-0001",
				Showtime:   showtimeID,
				Seats:      []string{"A2", "B1"},
				AmountPaid: "380.00",
				ShowtimeDetails: &response.ShowtimeResponse{
					ID:             showtimeID,
					BookedSeats:    []string{"A1", "A2", "B1"},
					AvailableSeats: []string{"B2"},
				},
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var got map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Equal(t, "380.00", got["amount_paid"])
				details := got["showtime_details"].(map[string]any)
				assert.Equal(t, []any{"B2"}, details["available_seats"])
			},
		},
		{
			name:       "seat unavailable",
			body:       body,
			err:        &usecase.SeatUnavailableError{Seats: []string{"A1"}},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeError(t, rec)
				assert.Contains(t, got.Message, "A1")
				assert.Equal(t, map[string]any{"unavailable_seats": []any{"A1"}}, got.Errors)
			},
		},
		{
			name:       "validation error",
			body:       body,
			err:        &usecase.ValidationError{Fields: map[string]string{"seats[0]": "Seat Z9 does not exist for this showtime"}},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				got := decodeError(t, rec)
				assert.Equal(t, map[string]any{"seats[0]": "Seat Z9 does not exist for this showtime"}, got.Errors)
			},
		},
		{
			name:       "showtime not found",
			body:       body,
			err:        fmt.Errorf("showtime %s %w", showtimeID, usecase.ErrNotFound),
			wantStatus: http.StatusNotFound,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "Showtime "+showtimeID+" not found", decodeError(t, rec).Message)
			},
		},
		{
			name:       "unexpected error is hidden",
			body:       body,
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "Internal server error", decodeError(t, rec).Message)
			},
		},
		{
			name:       "malformed json",
			body:       `{"seats":`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.MockBookingService)
			if tt.result != nil || tt.err != nil {
				svc.On("CreateBooking", mock.Anything, wantReq).Return(tt.result, tt.err).Once()
			}

			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			newRouter(svc, nil, nil).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			if tt.check != nil {
				tt.check(t, rec)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestBookingHandler_GetBookings(t *testing.T) {
	svc := new(mocks.MockBookingService)

	svc.On("ListBookings", mock.Anything, &request.BookingListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
	}).Return(response.NewPaginatedResponse([]response.BookingResponse{}, 1, 10, 0), nil).Once()

	svc.On("ListBookings", mock.Anything, &request.BookingListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 2, PerPage: 5},
		UserEmail:        "u@x.com",
	}).Return(response.NewPaginatedResponse([]response.BookingResponse{{Reference: "BOOK-1"}}, 2, 5, 6), nil).Once()

	router := newRouter(svc, nil, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":0,"page":1,"per_page":10,"total_pages":0,"results":[]}`, rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings?user_email=u@x.com&page=2&per_page=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var page response.PaginatedResponse[response.BookingResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.EqualValues(t, 6, page.Count)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "BOOK-1", page.Results[0].Reference)

	svc.AssertExpectations(t)
}

func TestShowtimeHandler(t *testing.T) {
	svc := new(mocks.MockShowtimeService)

	svc.On("GetShowtimeByID", mock.Anything, showtimeID).Return(&response.ShowtimeResponse{
		ID:             showtimeID,
		Date:           "2024-05-01",
		Time:           "14:30",
		BookedSeats:    []string{"A1"},
		AvailableSeats: []string{"A2", "B1", "B2"},
	}, nil).Once()
	svc.On("GetShowtimeByID", mock.Anything, "nope").Return(nil, fmt.Errorf("showtime nope %w", usecase.ErrNotFound)).Once()
	svc.On("GetShowtimes", mock.Anything, &request.ShowtimeListRequest{
		PaginatedRequest: request.PaginatedRequest{Page: 1, PerPage: 10},
		Date:             "2024-05-01",
		MovieDetails:     true,
	}).Return(response.NewPaginatedResponse([]response.ShowtimeResponse{}, 1, 10, 0), nil).Once()

	router := newRouter(nil, svc, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/showtimes/"+showtimeID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []any{"A1"}, got["booked_seats"])
	assert.Equal(t, []any{"A2", "B1", "B2"}, got["available_seats"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/showtimes/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// the web client spells the flag movieDetails
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/showtimes?date=2024-05-01&movieDetails=true", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	svc.AssertExpectations(t)
}

func TestMovieHandler_DeleteMovie(t *testing.T) {
	svc := new(mocks.MockMovieService)
	svc.On("DeleteMovie", mock.Anything, "m1").Return(nil).Once()
	svc.On("DeleteMovie", mock.Anything, "m2").Return(fmt.Errorf("movie m2 has showtimes: %w", usecase.ErrInUse)).Once()

	router := newRouter(nil, nil, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/movies/m1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/admin/movies/m2", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "has showtimes")

	svc.AssertExpectations(t)
}
