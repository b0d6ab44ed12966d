package models

import "fmt"

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	StatusBooked     BookingStatus = "booked"
	StatusCheckedIn  BookingStatus = "checked_in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"
)

// validTransitions defines the state machine for booking lifecycle changes.
// checked_out and cancelled are terminal.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusBooked:     {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut, StatusCancelled},
	StatusCheckedOut: {},
	StatusCancelled:  {},
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range validTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// IsActive returns true for bookings that still hold their room dates.
func (s BookingStatus) IsActive() bool {
	return s == StatusBooked || s == StatusCheckedIn
}

func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts a string to a BookingStatus, returning an error if invalid.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	s := BookingStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid booking status: %q", raw)
	}
	return s, nil
}
