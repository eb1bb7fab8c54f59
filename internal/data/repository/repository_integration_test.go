package repository_test

import (
	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/migrations"
	"cinema-ticketing/pkg/database"
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"
)

const (
	dbName      = "cinema_test"
	dbUser      = "test_user"
	dbPassword  = "test_password"
	dbImageName = "postgres:17-alpine"
)

type RepositorySuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        database.PgxIface
	repo      *repository.Repository
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration tests in short mode")
	}
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx, dbImageName,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err, "failed to start postgres container")
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Require().NoError(database.Migrate(dsn, migrations.FS))

	db, err := database.Connect(ctx, dsn, 20)
	s.Require().NoError(err)
	s.db = db

	s.repo = repository.NewRepository(db, zap.NewNop())
}

func (s *RepositorySuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		if err := testcontainers.TerminateContainer(s.container); err != nil {
			s.T().Logf("failed to terminate container: %s", err)
		}
	}
}

func (s *RepositorySuite) SetupTest() {
	_, err := s.db.Exec(context.Background(), `TRUNCATE bookings, showtimes, seat_layouts, movies`)
	s.Require().NoError(err)
}

func (s *RepositorySuite) seedShowtime(rows string, perRow int, booked ...string) *entity.Showtime {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	release := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	movie := &entity.Movie{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Title:       "Dune: Part Two",
		Genre:       "Sci-Fi",
		Duration:    166,
		ReleaseDate: &release,
	}
	s.Require().NoError(s.repo.Movie.Create(ctx, movie))

	layout := &entity.SeatLayout{
		BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		Name:        "Screen 1",
		Rows:        rows,
		SeatsPerRow: perRow,
	}
	s.Require().NoError(s.repo.SeatLayout.Create(ctx, layout))

	showtime := &entity.Showtime{
		BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		MovieID:      movie.ID,
		ShowDate:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		ShowTime:     "14:30",
		Screen:       "1",
		SeatLayoutID: &layout.ID,
		BookedSeats:  booked,
	}
	s.Require().NoError(s.repo.Showtime.Create(ctx, showtime))

	return showtime
}

func newBooking(showtimeID uuid.UUID, email string, seats ...string) *entity.Booking {
	now := time.Now().UTC()
	return &entity.Booking{
		ID:          uuid.New(),
		Reference:   fmt.Sprintf("BOOK-%s", uuid.NewString()[:18]),
		UserEmail:   email,
		UserName:    "Test User",
		ShowtimeID:  showtimeID,
		Seats:       seats,
		BookingTime: now,
		AmountPaid:  decimal.RequireFromString("190.00").Mul(decimal.NewFromInt(int64(len(seats)))),
	}
}

func (s *RepositorySuite) TestShowtime_FindByIDLoadsLayout() {
	showtime := s.seedShowtime("A,B", 2, "A1")

	got, err := s.repo.Showtime.FindByID(context.Background(), showtime.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal("14:30", got.ShowTime)
	s.Equal([]string{"A1"}, got.BookedSeats)
	s.Require().NotNil(got.SeatLayout)
	s.Equal([]string{"A2", "B1", "B2"}, got.AvailableSeats())

	missing, err := s.repo.Showtime.FindByID(context.Background(), uuid.New())
	s.NoError(err)
	s.Nil(missing)
}

func (s *RepositorySuite) TestCommitBooking_Success() {
	ctx := context.Background()
	showtime := s.seedShowtime("A,B", 2, "A1")

	booking := newBooking(showtime.ID, "u@x.com", "A2", "B1")
	s.Require().NoError(s.repo.Showtime.CommitBooking(ctx, booking))

	got, err := s.repo.Showtime.FindByID(ctx, showtime.ID)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"A1", "A2", "B1"}, got.BookedSeats)

	stored, err := s.repo.Booking.FindByReference(ctx, booking.Reference)
	s.Require().NoError(err)
	s.Require().NotNil(stored)
	s.Equal("380.00", stored.AmountPaid.StringFixed(2))
	s.Equal([]string{"A2", "B1"}, stored.Seats)
}

func (s *RepositorySuite) TestCommitBooking_Conflict() {
	ctx := context.Background()
	showtime := s.seedShowtime("A,B", 2, "A1")

	err := s.repo.Showtime.CommitBooking(ctx, newBooking(showtime.ID, "u@x.com", "B2", "A1"))

	var conflict *repository.SeatConflictError
	s.Require().ErrorAs(err, &conflict)
	s.Equal([]string{"A1"}, conflict.Seats)

	got, err := s.repo.Showtime.FindByID(ctx, showtime.ID)
	s.Require().NoError(err)
	s.Equal([]string{"A1"}, got.BookedSeats, "a rejected booking must not change booked seats")

	total, err := s.repo.Booking.CountByUserEmail(ctx, "u@x.com")
	s.Require().NoError(err)
	s.Zero(total)
}

func (s *RepositorySuite) TestCommitBooking_UnknownShowtime() {
	err := s.repo.Showtime.CommitBooking(context.Background(), newBooking(uuid.New(), "u@x.com", "A1"))
	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *RepositorySuite) TestCommitBooking_DuplicateReferenceRollsBack() {
	ctx := context.Background()
	showtime := s.seedShowtime("A", 4)

	first := newBooking(showtime.ID, "u@x.com", "A1")
	s.Require().NoError(s.repo.Showtime.CommitBooking(ctx, first))

	second := newBooking(showtime.ID, "u@x.com", "A2")
	second.Reference = first.Reference
	err := s.repo.Showtime.CommitBooking(ctx, second)
	s.Require().ErrorIs(err, repository.ErrDuplicateReference)
	s.True(repository.IsTransient(err))

	got, err := s.repo.Showtime.FindByID(ctx, showtime.ID)
	s.Require().NoError(err)
	s.Equal([]string{"A1"}, got.BookedSeats)
}

// Many clients race for the same seat: exactly one wins.
func (s *RepositorySuite) TestCommitBooking_ConcurrentSameSeat() {
	ctx := context.Background()
	showtime := s.seedShowtime("A,B", 2)

	const clients = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)

	start := make(chan struct{})
	for i := range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			err := s.repo.Showtime.CommitBooking(ctx, newBooking(showtime.ID, fmt.Sprintf("u%d@x.com", i), "A1", "B2"))

			mu.Lock()
			defer mu.Unlock()
			var conflict *repository.SeatConflictError
			switch {
			case err == nil:
				successes++
			case assert.ErrorAs(s.T(), err, &conflict):
				conflicts++
			}
		}()
	}
	close(start)
	wg.Wait()

	s.Equal(1, successes)
	s.Equal(clients-1, conflicts)

	got, err := s.repo.Showtime.FindByID(ctx, showtime.ID)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"A1", "B2"}, got.BookedSeats)
}

// Clients booking disjoint seats all succeed and nothing is lost.
func (s *RepositorySuite) TestCommitBooking_ConcurrentDisjointSeats() {
	ctx := context.Background()
	showtime := s.seedShowtime("A,B,C,D", 5)

	layout := entity.SeatLayout{Rows: "A,B,C,D", SeatsPerRow: 5}
	all := layout.AllSeats()

	var wg sync.WaitGroup
	errs := make(chan error, len(all))
	for _, seat := range all {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.repo.Showtime.CommitBooking(ctx, newBooking(showtime.ID, "crowd@x.com", seat))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	got, err := s.repo.Showtime.FindByID(ctx, showtime.ID)
	s.Require().NoError(err)

	booked := append([]string(nil), got.BookedSeats...)
	sort.Strings(booked)
	want := append([]string(nil), all...)
	sort.Strings(want)
	s.Equal(want, booked)
	s.Empty(got.AvailableSeats())

	total, err := s.repo.Booking.CountByUserEmail(ctx, "crowd@x.com")
	s.Require().NoError(err)
	s.EqualValues(len(all), total)
}

func (s *RepositorySuite) TestMovie_FindAllFilters() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	d1 := time.Date(2023, 7, 21, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	movies := []*entity.Movie{
		{Base: entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}, Title: "Oppenheimer", Genre: "Drama", Description: "The story of the atomic bomb", ReleaseDate: &d1},
		{Base: entity.Base{ID: uuid.New(), CreatedAt: now.Add(time.Second), UpdatedAt: now}, Title: "Barbie", Genre: "Comedy", ReleaseDate: &d1},
		{Base: entity.Base{ID: uuid.New(), CreatedAt: now.Add(2 * time.Second), UpdatedAt: now}, Title: "Dune: Part Two", Genre: "Sci-Fi", ReleaseDate: &d2},
	}
	for _, m := range movies {
		s.Require().NoError(s.repo.Movie.Create(ctx, m))
	}

	tests := []struct {
		name   string
		filter repository.MovieFilter
		want   []string
	}{
		{"default newest first", repository.MovieFilter{}, []string{"Dune: Part Two", "Barbie", "Oppenheimer"}},
		{"by title", repository.MovieFilter{Ordering: "title"}, []string{"Barbie", "Dune: Part Two", "Oppenheimer"}},
		{"search matches description", repository.MovieFilter{Search: "atomic"}, []string{"Oppenheimer"}},
		{"genre is case-insensitive", repository.MovieFilter{Genre: "sci-fi"}, []string{"Dune: Part Two"}},
		{"release date", repository.MovieFilter{ReleaseDate: &d1, Ordering: "title"}, []string{"Barbie", "Oppenheimer"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.repo.Movie.FindAll(ctx, tt.filter, 10, 0)
			s.Require().NoError(err)

			titles := make([]string, 0, len(got))
			for _, m := range got {
				titles = append(titles, m.Title)
			}
			s.Equal(tt.want, titles)

			total, err := s.repo.Movie.CountAll(ctx, tt.filter)
			s.Require().NoError(err)
			s.EqualValues(len(tt.want), total)
		})
	}
}

func (s *RepositorySuite) TestMovie_DeleteWithShowtimesIsBlocked() {
	ctx := context.Background()
	showtime := s.seedShowtime("A", 1)

	err := s.repo.Movie.Delete(ctx, showtime.MovieID)
	s.ErrorIs(err, repository.ErrInUse)

	err = s.repo.Movie.Delete(ctx, uuid.New())
	s.ErrorIs(err, repository.ErrNotFound)
}
