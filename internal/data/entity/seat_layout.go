package entity

import (
	"strconv"
	"strings"
)

// SeatLayout describes the addressable seats of a screen.
type SeatLayout struct {
	BaseSimple
	Name        string `db:"name"`
	Rows        string `db:"rows"` // comma-delimited row labels, e.g. "A,B,C"
	SeatsPerRow int    `db:"seats_per_row"`
}

// RowLabels splits Rows, trimming blanks and dropping empty labels.
func (l *SeatLayout) RowLabels() []string {
	parts := strings.Split(l.Rows, ",")
	labels := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			labels = append(labels, p)
		}
	}
	return labels
}

// AllSeats lists every seat id row by row: A1, A2, ..., B1, ...
func (l *SeatLayout) AllSeats() []string {
	if l == nil || l.SeatsPerRow <= 0 {
		return []string{}
	}

	rows := l.RowLabels()
	seats := make([]string, 0, len(rows)*l.SeatsPerRow)
	for _, row := range rows {
		for n := 1; n <= l.SeatsPerRow; n++ {
			seats = append(seats, row+strconv.Itoa(n))
		}
	}
	return seats
}

// Contains reports whether seatID is one of AllSeats.
func (l *SeatLayout) Contains(seatID string) bool {
	if l == nil || l.SeatsPerRow <= 0 {
		return false
	}

	for _, row := range l.RowLabels() {
		rest, ok := strings.CutPrefix(seatID, row)
		if !ok || rest == "" || rest[0] == '0' {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err == nil && n >= 1 && n <= l.SeatsPerRow {
			return true
		}
	}
	return false
}
