package models

import "testing"

func TestBookingStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to BookingStatus
		allowed  bool
	}{
		{StatusBooked, StatusCheckedIn, true},
		{StatusBooked, StatusCancelled, true},
		{StatusBooked, StatusCheckedOut, false},
		{StatusCheckedIn, StatusCheckedOut, true},
		{StatusCheckedIn, StatusCancelled, true},
		{StatusCheckedOut, StatusCancelled, false},
		{StatusCheckedOut, StatusCheckedIn, false},
		{StatusCancelled, StatusBooked, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.allowed {
			t.Errorf("%s -> %s: got %v, want %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	if StatusBooked.IsTerminal() || StatusCheckedIn.IsTerminal() {
		t.Error("booked and checked_in must not be terminal")
	}
	if !StatusCheckedOut.IsTerminal() || !StatusCancelled.IsTerminal() {
		t.Error("checked_out and cancelled must be terminal")
	}
}

func TestBookingStatusActive(t *testing.T) {
	if !StatusBooked.IsActive() || !StatusCheckedIn.IsActive() {
		t.Error("booked and checked_in must be active")
	}
	if StatusCheckedOut.IsActive() || StatusCancelled.IsActive() {
		t.Error("checked_out and cancelled must not be active")
	}
}

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"booked", "checked_in", "checked_out", "cancelled"} {
		if _, err := ParseBookingStatus(valid); err != nil {
			t.Errorf("ParseBookingStatus(%q) returned error: %v", valid, err)
		}
	}
	if _, err := ParseBookingStatus("pending"); err == nil {
		t.Error("ParseBookingStatus accepted an unknown status")
	}
}
