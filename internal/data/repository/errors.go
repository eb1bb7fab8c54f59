package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned by writes whose target row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrInUse is returned when a delete is blocked by referencing rows.
	ErrInUse = errors.New("record is still referenced")
	// ErrDuplicateReference means the generated booking reference already exists.
	ErrDuplicateReference = errors.New("booking reference already exists")
	// ErrSeatsContended means a reserve was rejected but no conflict was visible on reload.
	ErrSeatsContended = errors.New("seats contended")
)

// SeatConflictError lists the requested seats that another booking already holds.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat(s) %s already booked", strings.Join(e.Seats, ", "))
}

// IsTransient reports whether a failed commit may succeed when retried as is.
func IsTransient(err error) bool {
	if errors.Is(err, ErrDuplicateReference) || errors.Is(err, ErrSeatsContended) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected, pgerrcode.LockNotAvailable:
		return true
	}
	return false
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
