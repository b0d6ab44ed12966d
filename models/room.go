package models

import (
	"strings"

	"hotel-reservation/errs"
)

// Room is a bookable unit identified by its positive number, which is
// unique within the hotel. IsOccupied tracks physical presence only:
// it is flipped by check-in/check-out, never by booking creation.
type Room struct {
	Number        int     `json:"number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	IsOccupied    bool    `json:"is_occupied"`
}

// NewRoom validates the field invariants and returns the room.
func NewRoom(number int, roomType string, pricePerNight float64) (*Room, error) {
	if number <= 0 {
		return nil, errs.Invalid("room number must be positive, got %d", number)
	}
	if pricePerNight <= 0 {
		return nil, errs.Invalid("room price must be positive, got %v", pricePerNight)
	}
	if strings.TrimSpace(roomType) == "" {
		return nil, errs.Invalid("room type is required")
	}
	return &Room{
		Number:        number,
		RoomType:      roomType,
		PricePerNight: pricePerNight,
	}, nil
}
