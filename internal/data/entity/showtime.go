package entity

import (
	"time"

	"github.com/google/uuid"
)

type Showtime struct {
	BaseSimple
	MovieID      uuid.UUID  `db:"movie_id"`
	ShowDate     time.Time  `db:"show_date"`
	ShowTime     string     `db:"show_time"` // HH:MM
	Screen       string     `db:"screen"`
	SeatLayoutID *uuid.UUID `db:"seat_layout_id"`
	BookedSeats  []string   `db:"booked_seats"`

	// SeatLayout is loaded alongside the row when SeatLayoutID is set.
	SeatLayout *SeatLayout `db:"-"`
}

// AvailableSeats is the layout's seats minus BookedSeats, in layout order.
// A showtime without a layout has no available seats.
func (s *Showtime) AvailableSeats() []string {
	if s.SeatLayout == nil {
		return []string{}
	}

	booked := s.bookedSet()
	all := s.SeatLayout.AllSeats()
	available := make([]string, 0, len(all))
	for _, seat := range all {
		if _, ok := booked[seat]; !ok {
			available = append(available, seat)
		}
	}
	return available
}

// ConflictingSeats returns the requested seats that are already booked,
// preserving request order.
func (s *Showtime) ConflictingSeats(requested []string) []string {
	booked := s.bookedSet()
	conflicts := make([]string, 0)
	for _, seat := range requested {
		if _, ok := booked[seat]; ok {
			conflicts = append(conflicts, seat)
		}
	}
	return conflicts
}

func (s *Showtime) bookedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.BookedSeats))
	for _, seat := range s.BookedSeats {
		set[seat] = struct{}{}
	}
	return set
}
