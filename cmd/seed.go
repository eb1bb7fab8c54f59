package cmd

import (
	"context"
	"fmt"
	"time"

	"cinema-ticketing/internal/data/entity"
	"cinema-ticketing/internal/data/repository"
	"cinema-ticketing/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	seedTitles = []string{
		"The Last Adventure", "Midnight Express", "Eternal Sunshine",
		"Lost in Translation", "The Grand Journey", "Starlight Chronicles",
		"Urban Legends", "Whispers in the Dark", "Ocean's Symphony",
		"Desert Mirage", "Mountain Peak", "Frozen Time",
		"Digital Dreams", "Neon Nights", "Echoes of Yesterday",
		"Future Perfect", "Hidden Valley", "The Secret Code",
		"Silent Witness", "Golden Horizon",
	}

	seedDescriptions = []struct {
		genre string
		text  string
	}{
		{"Adventure", "A thrilling adventure that takes you to the edge of your seat."},
		{"Romance", "A heartwarming story about love and redemption."},
		{"Sci-Fi", "An epic journey through time and space."},
		{"Thriller", "A mysterious tale of intrigue and suspense."},
		{"Comedy", "A comedy that will leave you in stitches."},
		{"Drama", "A dramatic portrayal of life's greatest challenges."},
		{"Sci-Fi", "A sci-fi adventure in a distant galaxy."},
		{"Fantasy", "A fantasy world where magic and reality collide."},
		{"Documentary", "A documentary exploring the wonders of nature."},
		{"Romance", "A romantic story about finding love in unexpected places."},
	}

	seedLayouts = []struct {
		name        string
		rows        string
		seatsPerRow int
	}{
		{"Standard Hall", "A,B,C,D,E,F,G,H", 12},
		{"Studio", "A,B,C,D,E", 8},
	}

	seedScreens   = []string{"Screen 1", "Screen 2", "Screen 3"}
	seedShowTimes = []string{"10:00", "13:30", "17:00", "20:30"}
)

const seedDays = 7

// Seed creates sample layouts, movies and a week of showtimes starting today.
// With reset it first empties every table, bookings included.
func Seed(ctx context.Context, db database.PgxIface, repo *repository.Repository, reset bool, log *zap.Logger) error {
	if reset {
		if _, err := db.Exec(ctx, `TRUNCATE bookings, showtimes, movies, seat_layouts`); err != nil {
			return fmt.Errorf("reset tables: %w", err)
		}
		log.Info("Existing data removed")
	}

	now := time.Now()

	layouts := make([]*entity.SeatLayout, 0, len(seedLayouts))
	for _, l := range seedLayouts {
		layout := &entity.SeatLayout{
			BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
			Name:        l.name,
			Rows:        l.rows,
			SeatsPerRow: l.seatsPerRow,
		}
		if err := repo.SeatLayout.Create(ctx, layout); err != nil {
			return fmt.Errorf("seed seat layout %s: %w", l.name, err)
		}
		layouts = append(layouts, layout)
	}

	movies := make([]*entity.Movie, 0, len(seedTitles))
	for i, title := range seedTitles {
		desc := seedDescriptions[i%len(seedDescriptions)]
		release := now.AddDate(0, -i, 0).Truncate(24 * time.Hour)

		movie := &entity.Movie{
			Base:             entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Title:            title,
			Description:      desc.text,
			ShortDescription: desc.text,
			Genre:            desc.genre,
			Duration:         90 + (i*7)%60,
			ReleaseDate:      &release,
			Language:         "English",
		}
		if err := repo.Movie.Create(ctx, movie); err != nil {
			return fmt.Errorf("seed movie %s: %w", title, err)
		}
		movies = append(movies, movie)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	showtimes := 0
	for day := range seedDays {
		date := today.AddDate(0, 0, day)
		for screenIdx, screen := range seedScreens {
			layout := layouts[screenIdx%len(layouts)]
			for slot, at := range seedShowTimes {
				movie := movies[(day*len(seedScreens)*len(seedShowTimes)+screenIdx*len(seedShowTimes)+slot)%len(movies)]
				layoutID := layout.ID

				showtime := &entity.Showtime{
					BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
					MovieID:      movie.ID,
					ShowDate:     date,
					ShowTime:     at,
					Screen:       screen,
					SeatLayoutID: &layoutID,
				}
				if err := repo.Showtime.Create(ctx, showtime); err != nil {
					return fmt.Errorf("seed showtime %s %s: %w", date.Format("2006-01-02"), at, err)
				}
				showtimes++
			}
		}
	}

	log.Info("Sample data created",
		zap.Int("seat_layouts", len(layouts)),
		zap.Int("movies", len(movies)),
		zap.Int("showtimes", showtimes),
	)
	return nil
}
