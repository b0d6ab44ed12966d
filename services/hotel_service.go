// services/hotel_service.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"hotel-reservation/errs"
	"hotel-reservation/logger"
	"hotel-reservation/models"
)

// HotelService is the booking engine: the single entry point for every
// command and query against the hotel aggregate. Handlers run on
// concurrent goroutines, so the service serializes access with a
// read-write mutex; in particular the availability check and the
// booking insert in CreateBooking form one critical section.
type HotelService struct {
	mu    sync.RWMutex
	hotel *models.Hotel
}

func NewHotelService(hotel *models.Hotel) *HotelService {
	return &HotelService{hotel: hotel}
}

// OccupancyReport summarizes room occupancy. Occupancy is room state
// set by check-in/check-out, independent of future reservations.
type OccupancyReport struct {
	TotalRooms     int `json:"total_rooms"`
	OccupiedRooms  int `json:"occupied_rooms"`
	AvailableRooms int `json:"available_rooms"`
}

// ===== Rooms =====

// AddRoom adds a room to the hotel. The number must be unused and the
// entity invariants must hold.
func (s *HotelService) AddRoom(number int, roomType string, pricePerNight float64) (*models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.hotel.AddRoom(number, roomType, pricePerNight)
	if err != nil {
		return nil, err
	}
	logger.Info("room added", "room", number, "type", roomType, "price", pricePerNight)
	return room, nil
}

// RemoveRoom deletes a room unless it is occupied.
func (s *HotelService) RemoveRoom(number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.hotel.RemoveRoom(number); err != nil {
		return err
	}
	logger.Info("room removed", "room", number)
	return nil
}

// GetRoom returns a single room by number.
func (s *HotelService) GetRoom(number int) (*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotel.GetRoom(number)
}

// ListRooms returns all rooms in insertion order.
func (s *HotelService) ListRooms() []*models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotel.Rooms()
}

// GetAvailableRooms returns the rooms free over [checkIn, checkOut),
// optionally filtered by room type. The result is advisory: a create
// attempted later may still conflict with an interleaved booking.
func (s *HotelService) GetAvailableRooms(checkIn, checkOut time.Time, roomType string) ([]*models.Room, error) {
	if !checkOut.After(checkIn) {
		return nil, errs.Invalid("check_out must be after check_in")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	available := []*models.Room{}
	for _, room := range s.hotel.Rooms() {
		if roomType != "" && room.RoomType != roomType {
			continue
		}
		if roomIsAvailable(s.hotel, room.Number, checkIn, checkOut) {
			available = append(available, room)
		}
	}
	return available, nil
}

// ===== Guests =====

// RegisterGuest registers a guest under a freshly generated id.
func (s *HotelService) RegisterGuest(name, contact string) (*models.Guest, error) {
	guest, err := models.NewGuest(uuid.NewString(), name, contact)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.hotel.AddGuest(guest)
	logger.Info("guest registered", "guest_id", guest.GuestID, "name", guest.Name)
	return guest, nil
}

// GetGuest returns a single guest by id.
func (s *HotelService) GetGuest(guestID string) (*models.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotel.GetGuest(guestID)
}

// ListGuests returns all guests in registration order.
func (s *HotelService) ListGuests() []*models.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotel.Guests()
}

// ===== Bookings =====

// CreateBooking books a room for a guest over [checkIn, checkOut).
// Guest and room must exist and the room must be free over the
// interval; the new booking starts in status booked.
func (s *HotelService) CreateBooking(guestID string, roomNumber int, checkIn, checkOut time.Time) (*models.Booking, error) {
	if !checkOut.After(checkIn) {
		return nil, errs.Invalid("check_out must be after check_in")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	guest, err := s.hotel.GetGuest(guestID)
	if err != nil {
		return nil, err
	}
	room, err := s.hotel.GetRoom(roomNumber)
	if err != nil {
		return nil, err
	}

	if !roomIsAvailable(s.hotel, room.Number, checkIn, checkOut) {
		return nil, errs.Conflict("room %d is not available from %s to %s",
			room.Number, checkIn.Format(time.DateOnly), checkOut.Format(time.DateOnly))
	}

	booking, err := models.NewBooking(uuid.NewString(), guest.GuestID, room.Number, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	s.hotel.AddBooking(booking)

	logger.Info("booking created",
		"booking_id", booking.BookingID,
		"guest_id", guest.GuestID,
		"room", room.Number,
		"check_in", checkIn.Format(time.DateOnly),
		"check_out", checkOut.Format(time.DateOnly))
	return booking, nil
}

// GetBooking returns a single booking by id.
func (s *HotelService) GetBooking(bookingID string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotel.GetBooking(bookingID)
}

// GetGuestBookings returns every booking for the guest, any status.
// The guest must exist.
func (s *HotelService) GetGuestBookings(guestID string) ([]*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.hotel.GetGuest(guestID); err != nil {
		return nil, err
	}
	out := []*models.Booking{}
	for _, b := range s.hotel.Bookings() {
		if b.GuestID == guestID {
			out = append(out, b)
		}
	}
	return out, nil
}

// ListBookings returns all bookings in creation order.
func (s *HotelService) ListBookings() []*models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hotel.Bookings()
}

// GetActiveBookings returns bookings in status booked or checked_in.
func (s *HotelService) GetActiveBookings() []*models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*models.Booking{}
	for _, b := range s.hotel.Bookings() {
		if b.Status.IsActive() {
			out = append(out, b)
		}
	}
	return out
}

// CancelBooking cancels a booking. Cancelling an already-cancelled
// booking is a no-op; a checked-out booking cannot be cancelled.
func (s *HotelService) CancelBooking(bookingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.hotel.GetBooking(bookingID)
	if err != nil {
		return err
	}
	switch booking.Status {
	case models.StatusCancelled:
		return nil
	case models.StatusCheckedOut:
		return errs.Invalid("cannot cancel checked-out booking %s", bookingID)
	}

	booking.Status = models.StatusCancelled
	logger.Info("booking cancelled", "booking_id", bookingID)
	return nil
}

// CheckIn transitions a booked booking to checked_in and marks the room
// occupied. currentDate must equal the booking's check-in date. The
// occupied-flag check is a second guard past the date-overlap
// guarantee: another overlapping booking may already be checked in.
func (s *HotelService) CheckIn(bookingID string, currentDate time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.hotel.GetBooking(bookingID)
	if err != nil {
		return err
	}
	if booking.Status != models.StatusBooked {
		return errs.Invalid("cannot check-in: booking status is %s", booking.Status)
	}
	if !sameDate(currentDate, booking.CheckIn) {
		return errs.Invalid("check-in date mismatch: expected %s, got %s",
			booking.CheckIn.Format(time.DateOnly), currentDate.Format(time.DateOnly))
	}
	room, err := s.hotel.GetRoom(booking.RoomNumber)
	if err != nil {
		return err
	}
	if room.IsOccupied {
		return errs.Conflict("room %d is already occupied", room.Number)
	}

	booking.Status = models.StatusCheckedIn
	room.IsOccupied = true
	logger.Info("checked in", "booking_id", bookingID, "room", room.Number)
	return nil
}

// CheckOut transitions a checked-in booking to checked_out, frees the
// room and returns the total price (nights x nightly rate). currentDate
// must equal the booking's check-out date.
func (s *HotelService) CheckOut(bookingID string, currentDate time.Time) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.hotel.GetBooking(bookingID)
	if err != nil {
		return 0, err
	}
	if booking.Status != models.StatusCheckedIn {
		return 0, errs.Invalid("cannot check-out: booking status is %s", booking.Status)
	}
	if !sameDate(currentDate, booking.CheckOut) {
		return 0, errs.Invalid("check-out date mismatch: expected %s, got %s",
			booking.CheckOut.Format(time.DateOnly), currentDate.Format(time.DateOnly))
	}
	room, err := s.hotel.GetRoom(booking.RoomNumber)
	if err != nil {
		return 0, err
	}

	booking.Status = models.StatusCheckedOut
	room.IsOccupied = false

	total := float64(booking.Nights()) * room.PricePerNight
	logger.Info("checked out", "booking_id", bookingID, "room", room.Number, "total", total)
	return total, nil
}

// ===== Reports =====

// GetOccupancyReport counts rooms by their occupied flag. It scans room
// state, not bookings: a room with a future reservation still counts as
// available until its guest checks in.
func (s *HotelService) GetOccupancyReport() OccupancyReport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	report := OccupancyReport{}
	for _, room := range s.hotel.Rooms() {
		report.TotalRooms++
		if room.IsOccupied {
			report.OccupiedRooms++
		} else {
			report.AvailableRooms++
		}
	}
	return report
}

// CalculateTotalRevenue sums nights x nightly rate over checked-out
// bookings only.
func (s *HotelService) CalculateTotalRevenue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, b := range s.hotel.Bookings() {
		if b.Status != models.StatusCheckedOut {
			continue
		}
		room, err := s.hotel.GetRoom(b.RoomNumber)
		if err != nil {
			// Room removed after checkout; its history cannot be priced.
			continue
		}
		total += float64(b.Nights()) * room.PricePerNight
	}
	return total
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
