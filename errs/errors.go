// Package errs defines the error kinds shared by the hotel domain.
// Every engine failure wraps one of these sentinels so callers can
// classify with errors.Is and map to a transport status.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks lookups of guests, rooms or bookings whose id
	// is not present in the relevant collection.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks date-range overlaps and already-occupied rooms.
	ErrConflict = errors.New("conflict")

	// ErrInvalidOperation marks malformed input, bad date ordering and
	// illegal status transitions.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrStorage marks persistence read/write failures, distinct from
	// domain errors.
	ErrStorage = errors.New("storage error")
)

func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidOperation)...)
}

func Storage(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrStorage)...)
}
