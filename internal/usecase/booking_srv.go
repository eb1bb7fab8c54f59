package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/internal/dto/request"
	"cinema-ticketing/internal/dto/response"
	"cinema-ticketing/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

type BookingService interface {
	// CreateBooking is the only path that adds seats to a showtime.
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error)
}

type bookingMetrics struct {
	created   metric.Int64Counter
	seats     metric.Int64Counter
	conflicts metric.Int64Counter
	retries   metric.Int64Counter
}

type bookingService struct {
	repo      *repository.Repository
	unitPrice decimal.Decimal
	attempts  int
	now       func() time.Time
	reference func(time.Time) string
	metrics   bookingMetrics
	log       *zap.Logger
}

func NewBookingService(repo *repository.Repository, config utils.BookingConfig, log *zap.Logger) BookingService {
	attempts := config.CommitRetries
	if attempts < 1 {
		attempts = 1
	}

	s := &bookingService{
		repo:      repo,
		unitPrice: config.UnitPrice,
		attempts:  attempts,
		now:       time.Now,
		reference: utils.GenerateBookingReference,
		log:       log.With(zap.String("service", "booking")),
	}
	s.metrics = newBookingMetrics(s.log)

	return s
}

func newBookingMetrics(log *zap.Logger) bookingMetrics {
	meter := otel.Meter("cinema-ticketing/usecase")

	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			log.Warn("Failed to create metric", zap.String("metric", name), zap.Error(err))
		}
		return c
	}

	return bookingMetrics{
		created:   counter("booking.created", "Bookings committed"),
		seats:     counter("booking.seats", "Seats sold"),
		conflicts: counter("booking.conflicts", "Bookings rejected because a seat was taken"),
		retries:   counter("booking.commit_retries", "Commit attempts retried after a transient failure"),
	}
}

func (m bookingMetrics) add(ctx context.Context, c metric.Int64Counter, n int64, attrs ...attribute.KeyValue) {
	if c != nil {
		c.Add(ctx, n, metric.WithAttributes(attrs...))
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	showtimeID, err := parseID("showtime", req.Showtime)
	if err != nil {
		return nil, err
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("find showtime: %w", err)
	}
	if showtime == nil {
		return nil, notFound("showtime", showtimeID)
	}

	if errs := validateSeats(showtime, req.Seats); len(errs) > 0 {
		s.log.Warn("Requested seats rejected",
			zap.String("showtime_id", showtimeID.String()),
			zap.Any("errors", errs),
		)
		return nil, newValidationError(errs)
	}

	// cheap rejection before opening a transaction; the commit re-checks
	if conflicts := showtime.ConflictingSeats(req.Seats); len(conflicts) > 0 {
		s.metrics.add(ctx, s.metrics.conflicts, 1, attribute.String("stage", "precheck"))
		return nil, &SeatUnavailableError{Seats: conflicts}
	}

	booking, err := s.commit(ctx, showtimeID, req)
	if err != nil {
		return nil, err
	}

	s.metrics.add(ctx, s.metrics.created, 1)
	s.metrics.add(ctx, s.metrics.seats, int64(len(booking.Seats)))

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.String("showtime_id", showtimeID.String()),
		zap.Strings("seats", booking.Seats),
		zap.String("amount_paid", booking.AmountPaid.StringFixed(2)),
	)

	detail := s.showtimeAfterCommit(ctx, showtime, booking)
	resp := response.BookingToResponse(booking, detail)
	return &resp, nil
}

// commit retries transient failures with a fresh id and reference each time.
func (s *bookingService) commit(ctx context.Context, showtimeID uuid.UUID, req *request.CreateBookingRequest) (*entity.Booking, error) {
	seats := append([]string(nil), req.Seats...)
	amount := s.unitPrice.Mul(decimal.NewFromInt(int64(len(seats))))

	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		now := s.now()
		booking := &entity.Booking{
			ID:          uuid.New(),
			Reference:   s.reference(now),
			UserEmail:   req.UserEmail,
			UserName:    req.UserName,
			ShowtimeID:  showtimeID,
			Seats:       seats,
			BookingTime: now,
			AmountPaid:  amount,
		}

		err := s.repo.Showtime.CommitBooking(ctx, booking)
		if err == nil {
			return booking, nil
		}

		var conflict *repository.SeatConflictError
		switch {
		case errors.As(err, &conflict):
			s.metrics.add(ctx, s.metrics.conflicts, 1, attribute.String("stage", "commit"))
			return nil, &SeatUnavailableError{Seats: conflict.Seats}
		case errors.Is(err, repository.ErrNotFound):
			return nil, notFound("showtime", showtimeID)
		case repository.IsTransient(err):
			lastErr = err
			s.metrics.add(ctx, s.metrics.retries, 1)
			s.log.Warn("Transient booking commit failure",
				zap.Error(err),
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", s.attempts),
			)
			continue
		default:
			s.log.Error("Failed to commit booking",
				zap.Error(err),
				zap.String("showtime_id", showtimeID.String()),
			)
			return nil, fmt.Errorf("commit booking: %w", err)
		}
	}

	s.log.Warn("Booking commit attempts exhausted",
		zap.Error(lastErr),
		zap.String("showtime_id", showtimeID.String()),
		zap.Strings("seats", seats),
	)
	return nil, &SeatUnavailableError{Seats: seats}
}

// showtimeAfterCommit reloads the showtime so the response reflects the new booked set.
func (s *bookingService) showtimeAfterCommit(ctx context.Context, before *entity.Showtime, booking *entity.Booking) *response.ShowtimeResponse {
	showtime, err := s.repo.Showtime.FindByID(ctx, before.ID)
	if err != nil || showtime == nil {
		s.log.Warn("Failed to reload showtime after booking", zap.Error(err))
		copied := *before
		copied.BookedSeats = append(append([]string{}, before.BookedSeats...), booking.Seats...)
		showtime = &copied
	}

	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		s.log.Warn("Failed to load movie for booking response", zap.Error(err))
	}

	detail := response.ShowtimeToResponse(showtime, movie)
	return &detail
}

// validateSeats rejects duplicates and ids outside the showtime's layout.
func validateSeats(showtime *entity.Showtime, seats []string) map[string]string {
	errs := make(map[string]string)
	if len(seats) == 0 {
		errs["seats"] = "Select at least one seat"
		return errs
	}

	seen := make(map[string]struct{}, len(seats))
	for i, seat := range seats {
		key := fmt.Sprintf("seats[%d]", i)
		if _, dup := seen[seat]; dup {
			errs[key] = fmt.Sprintf("Seat %s is selected more than once", seat)
			continue
		}
		seen[seat] = struct{}{}

		if !showtime.SeatLayout.Contains(seat) {
			errs[key] = fmt.Sprintf("Seat %s does not exist for this showtime", seat)
		}
	}

	return errs
}

func (s *bookingService) ListBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	page := request.NewPaginatedRequest(req.Page, req.PerPage)

	if req.UserEmail == "" {
		return response.NewPaginatedResponse([]response.BookingResponse{}, page.Page, page.Limit(), 0), nil
	}

	bookings, err := s.repo.Booking.FindByUserEmail(ctx, req.UserEmail, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("get bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserEmail(ctx, req.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	showtimes := make(map[uuid.UUID]*response.ShowtimeResponse)
	results := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		detail, ok := showtimes[booking.ShowtimeID]
		if !ok {
			detail = s.showtimeDetail(ctx, booking.ShowtimeID)
			showtimes[booking.ShowtimeID] = detail
		}
		results[i] = response.BookingToResponse(booking, detail)
	}

	s.log.Debug("Bookings retrieved",
		zap.String("user_email", req.UserEmail),
		zap.Int("count", len(results)),
		zap.Int64("total", total),
	)

	return response.NewPaginatedResponse(results, page.Page, page.Limit(), total), nil
}

func (s *bookingService) showtimeDetail(ctx context.Context, id uuid.UUID) *response.ShowtimeResponse {
	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil || showtime == nil {
		s.log.Warn("Failed to load showtime for booking",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil
	}

	movie, err := s.repo.Movie.FindByID(ctx, showtime.MovieID)
	if err != nil {
		s.log.Warn("Failed to load movie for booking", zap.Error(err))
	}

	detail := response.ShowtimeToResponse(showtime, movie)
	return &detail
}
