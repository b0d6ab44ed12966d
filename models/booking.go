package models

import (
	"strings"
	"time"

	"hotel-reservation/errs"
)

// Booking links one guest to one room over a date interval. Guest and
// room are referenced by key so that all room mutation is routed
// through the hotel aggregate. The interval is half-open:
// [CheckIn, CheckOut), with day granularity.
type Booking struct {
	BookingID  string        `json:"booking_id"`
	GuestID    string        `json:"guest_id"`
	RoomNumber int           `json:"room_number"`
	CheckIn    time.Time     `json:"check_in"`
	CheckOut   time.Time     `json:"check_out"`
	Status     BookingStatus `json:"status"`
}

// NewBooking validates the field invariants and returns a booking in
// status booked.
func NewBooking(bookingID, guestID string, roomNumber int, checkIn, checkOut time.Time) (*Booking, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, errs.Invalid("booking id is required")
	}
	if strings.TrimSpace(guestID) == "" {
		return nil, errs.Invalid("guest id is required")
	}
	if roomNumber <= 0 {
		return nil, errs.Invalid("room number must be positive, got %d", roomNumber)
	}
	if !checkOut.After(checkIn) {
		return nil, errs.Invalid("check_out must be after check_in")
	}
	return &Booking{
		BookingID:  bookingID,
		GuestID:    guestID,
		RoomNumber: roomNumber,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     StatusBooked,
	}, nil
}

// Nights returns the integer day count of the stay. The constructor
// invariant guarantees at least one night.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn) / (24 * time.Hour))
}

// Overlaps reports whether the booking's interval intersects
// [checkIn, checkOut). Interval abutment is not an overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(b.CheckOut) && b.CheckIn.Before(checkOut)
}
