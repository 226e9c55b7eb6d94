package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrScreeningNotFound   = errors.New("screening not found")
	ErrDuplicateScreening  = errors.New("a screening with this id already exists")
	ErrNoSeatsSelected     = errors.New("at least one seat must be selected")
	ErrInvalidGeometry     = errors.New("rows and cols must define a valid seat map")
	ErrMissingCustomerInfo = errors.New("customer name and phone are required")

	// ErrNotDurable marks an operation whose in-memory effect succeeded but whose
	// catalog flush did not. The mutation stands; callers must treat the state as
	// committed but not yet durable.
	ErrNotDurable = errors.New("catalog flush failed, changes are not durable yet")
)

// SeatConflictError reports the subset of requested seats that were already booked.
type SeatConflictError struct {
	Seats []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seat(s) already booked: %s", strings.Join(e.Seats, ", "))
}

// InvalidSeatError reports requested identifiers outside the screening's geometry.
type InvalidSeatError struct {
	Seats []string
}

func (e *InvalidSeatError) Error() string {
	return fmt.Sprintf("invalid seat identifier(s): %s", strings.Join(e.Seats, ", "))
}
