package models

import (
	"strings"

	"hotel-reservation/errs"
)

// Hotel owns the authoritative collections of rooms, guests and
// bookings. Lookups are keyed; insertion order is preserved for
// listing. Hotel itself does no locking — HotelService serializes
// access for concurrent callers.
type Hotel struct {
	Name string

	rooms    map[int]*Room
	guests   map[string]*Guest
	bookings map[string]*Booking

	roomOrder    []int
	guestOrder   []string
	bookingOrder []string
}

// NewHotel creates an empty hotel. The name is required.
func NewHotel(name string) (*Hotel, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.Invalid("hotel name is required")
	}
	return &Hotel{
		Name:     name,
		rooms:    make(map[int]*Room),
		guests:   make(map[string]*Guest),
		bookings: make(map[string]*Booking),
	}, nil
}

// AddRoom inserts a validated room. A duplicate number is rejected.
func (h *Hotel) AddRoom(number int, roomType string, pricePerNight float64) (*Room, error) {
	if _, exists := h.rooms[number]; exists {
		return nil, errs.Invalid("room %d already exists", number)
	}
	room, err := NewRoom(number, roomType, pricePerNight)
	if err != nil {
		return nil, err
	}
	h.rooms[number] = room
	h.roomOrder = append(h.roomOrder, number)
	return room, nil
}

// RemoveRoom deletes a room. Occupied rooms cannot be removed.
func (h *Hotel) RemoveRoom(number int) error {
	room, exists := h.rooms[number]
	if !exists {
		return errs.NotFound("room %d does not exist", number)
	}
	if room.IsOccupied {
		return errs.Invalid("cannot remove occupied room %d", number)
	}
	delete(h.rooms, number)
	for i, n := range h.roomOrder {
		if n == number {
			h.roomOrder = append(h.roomOrder[:i], h.roomOrder[i+1:]...)
			break
		}
	}
	return nil
}

// GetRoom returns the room with the given number.
func (h *Hotel) GetRoom(number int) (*Room, error) {
	room, exists := h.rooms[number]
	if !exists {
		return nil, errs.NotFound("room %d does not exist", number)
	}
	return room, nil
}

// Rooms lists all rooms in insertion order.
func (h *Hotel) Rooms() []*Room {
	out := make([]*Room, 0, len(h.roomOrder))
	for _, n := range h.roomOrder {
		out = append(out, h.rooms[n])
	}
	return out
}

// AddGuest inserts an already-constructed guest.
func (h *Hotel) AddGuest(guest *Guest) {
	if _, exists := h.guests[guest.GuestID]; !exists {
		h.guestOrder = append(h.guestOrder, guest.GuestID)
	}
	h.guests[guest.GuestID] = guest
}

// GetGuest returns the guest with the given id.
func (h *Hotel) GetGuest(guestID string) (*Guest, error) {
	guest, exists := h.guests[guestID]
	if !exists {
		return nil, errs.NotFound("guest %s does not exist", guestID)
	}
	return guest, nil
}

// Guests lists all guests in registration order.
func (h *Hotel) Guests() []*Guest {
	out := make([]*Guest, 0, len(h.guestOrder))
	for _, id := range h.guestOrder {
		out = append(out, h.guests[id])
	}
	return out
}

// AddBooking inserts an already-constructed booking.
func (h *Hotel) AddBooking(booking *Booking) {
	if _, exists := h.bookings[booking.BookingID]; !exists {
		h.bookingOrder = append(h.bookingOrder, booking.BookingID)
	}
	h.bookings[booking.BookingID] = booking
}

// GetBooking returns the booking with the given id.
func (h *Hotel) GetBooking(bookingID string) (*Booking, error) {
	booking, exists := h.bookings[bookingID]
	if !exists {
		return nil, errs.NotFound("booking %s does not exist", bookingID)
	}
	return booking, nil
}

// Bookings lists all bookings in creation order. Bookings are never
// deleted, only transitioned; the history backs revenue reporting.
func (h *Hotel) Bookings() []*Booking {
	out := make([]*Booking, 0, len(h.bookingOrder))
	for _, id := range h.bookingOrder {
		out = append(out, h.bookings[id])
	}
	return out
}
