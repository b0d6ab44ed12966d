// Package payments computes stay totals and renders receipts. It is a
// read-only collaborator of the booking engine: callers should invoke
// it after check-out, and nothing here mutates hotel state.
package payments

import (
	"fmt"
	"strings"
	"time"

	"hotel-reservation/models"
)

// DefaultTaxRate is applied when the caller does not supply one.
const DefaultTaxRate = 0.10

// Invoice snapshots the booking, its room and its guest at render time.
type Invoice struct {
	Booking *models.Booking
	Room    *models.Room
	Guest   *models.Guest
}

func NewInvoice(booking *models.Booking, room *models.Room, guest *models.Guest) *Invoice {
	return &Invoice{Booking: booking, Room: room, Guest: guest}
}

// BaseCost is nights x nightly rate, before tax.
func (inv *Invoice) BaseCost() float64 {
	return float64(inv.Booking.Nights()) * inv.Room.PricePerNight
}

// Tax returns the tax amount for the given rate.
func (inv *Invoice) Tax(taxRate float64) float64 {
	return inv.BaseCost() * taxRate
}

// TotalWithTax returns base cost plus tax.
func (inv *Invoice) TotalWithTax(taxRate float64) float64 {
	return inv.BaseCost() + inv.Tax(taxRate)
}

// Text renders the receipt as plain text.
func (inv *Invoice) Text(taxRate float64) string {
	base := inv.BaseCost()
	tax := inv.Tax(taxRate)
	total := base + tax
	rule := strings.Repeat("=", 50)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "INVOICE\n")
	fmt.Fprintf(&b, "%s\n", rule)
	fmt.Fprintf(&b, "Guest: %s\n", inv.Guest.Name)
	fmt.Fprintf(&b, "Contact: %s\n\n", inv.Guest.Contact)
	fmt.Fprintf(&b, "Room: %d (%s)\n", inv.Room.Number, inv.Room.RoomType)
	fmt.Fprintf(&b, "Check-in: %s\n", inv.Booking.CheckIn.Format(time.DateOnly))
	fmt.Fprintf(&b, "Check-out: %s\n", inv.Booking.CheckOut.Format(time.DateOnly))
	fmt.Fprintf(&b, "Nights: %d\n\n", inv.Booking.Nights())
	fmt.Fprintf(&b, "Rate per night: $%.2f\n", inv.Room.PricePerNight)
	fmt.Fprintf(&b, "Base cost: $%.2f\n", base)
	fmt.Fprintf(&b, "Tax (%d%%): $%.2f\n", int(taxRate*100), tax)
	fmt.Fprintf(&b, "---\n")
	fmt.Fprintf(&b, "TOTAL: $%.2f\n", total)
	fmt.Fprintf(&b, "%s\n", rule)
	return b.String()
}
