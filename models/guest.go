package models

import (
	"strings"

	"hotel-reservation/errs"
)

// Guest is immutable after registration; there is no update or delete
// operation in the current scope.
type Guest struct {
	GuestID string `json:"guest_id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// NewGuest validates the required fields and returns the guest.
func NewGuest(guestID, name, contact string) (*Guest, error) {
	if strings.TrimSpace(guestID) == "" {
		return nil, errs.Invalid("guest id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errs.Invalid("guest name is required")
	}
	if strings.TrimSpace(contact) == "" {
		return nil, errs.Invalid("guest contact is required")
	}
	return &Guest{GuestID: guestID, Name: name, Contact: contact}, nil
}
