// services/availability.go
package services

import (
	"time"

	"hotel-reservation/models"
)

// roomIsAvailable reports whether the room is free over the half-open
// interval [checkIn, checkOut). Only bookings on the same room count,
// and cancelled or checked-out bookings no longer hold their dates.
// Pure read over current state; callers that intend to book must hold
// the service write lock so the check and the insert stay atomic.
func roomIsAvailable(hotel *models.Hotel, roomNumber int, checkIn, checkOut time.Time) bool {
	for _, booking := range hotel.Bookings() {
		if booking.RoomNumber != roomNumber {
			continue
		}
		if booking.Status == models.StatusCancelled || booking.Status == models.StatusCheckedOut {
			continue
		}
		if booking.Overlaps(checkIn, checkOut) {
			return false
		}
	}
	return true
}
