package entity

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShowtime_AvailableSeats(t *testing.T) {
	layout := &SeatLayout{Rows: "A,B", SeatsPerRow: 2}

	t.Run("booked seats are excluded in layout order", func(t *testing.T) {
		st := &Showtime{SeatLayout: layout, BookedSeats: []string{"A1"}}
		assert.Equal(t, []string{"A2", "B1", "B2"}, st.AvailableSeats())
	})

	t.Run("no layout means nothing is available", func(t *testing.T) {
		st := &Showtime{BookedSeats: []string{}}
		assert.Empty(t, st.AvailableSeats())
		assert.NotNil(t, st.AvailableSeats())
	})

	t.Run("available and booked partition the layout", func(t *testing.T) {
		st := &Showtime{SeatLayout: layout, BookedSeats: []string{"B2", "A1"}}

		available := st.AvailableSeats()
		union := append(append([]string{}, available...), st.BookedSeats...)
		sort.Strings(union)
		assert.Equal(t, layout.AllSeats(), union)

		for _, seat := range available {
			assert.NotContains(t, st.BookedSeats, seat)
		}
	})
}

func TestShowtime_ConflictingSeats(t *testing.T) {
	st := &Showtime{BookedSeats: []string{"A1", "B2"}}

	assert.Equal(t, []string{"B2", "A1"}, st.ConflictingSeats([]string{"B2", "A2", "A1"}))
	assert.Empty(t, st.ConflictingSeats([]string{"A2", "B1"}))
}
