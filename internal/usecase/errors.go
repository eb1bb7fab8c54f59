package usecase

import (
	"errors"
	"fmt"
	"strings"

	"cinema-ticketing/pkg/utils"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is wrapped as "<resource> <id> not found".
	ErrNotFound = errors.New("not found")
	// ErrInUse rejects deleting a record that others still reference.
	ErrInUse = errors.New("still in use")
)

// ValidationError maps request fields (or "seats[i]") to a message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

// SeatUnavailableError names the requested seats that are already booked.
type SeatUnavailableError struct {
	Seats []string
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("Seat(s) %s already booked", strings.Join(e.Seats, ", "))
}

func notFound(resource string, id any) error {
	return fmt.Errorf("%s %v %w", resource, id, ErrNotFound)
}

// parseID treats a malformed id like an unknown one.
func parseID(resource, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, notFound(resource, raw)
	}
	return id, nil
}
