package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-reservation/models"
	"hotel-reservation/payments"
	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type BookingController struct {
	service *services.HotelService
	taxRate float64
}

func NewBookingController(service *services.HotelService, taxRate float64) *BookingController {
	return &BookingController{service: service, taxRate: taxRate}
}

type createBookingRequest struct {
	GuestID    string `json:"guest_id" binding:"required"`
	RoomNumber int    `json:"room_number" binding:"required"`
	CheckIn    string `json:"check_in" binding:"required"`
	CheckOut   string `json:"check_out" binding:"required"`
}

// dateRequest carries the operation date for check-in and check-out.
type dateRequest struct {
	Date string `json:"date" binding:"required"`
}

// bookingResponse keeps the wire dates day-granular.
type bookingResponse struct {
	BookingID  string `json:"booking_id"`
	GuestID    string `json:"guest_id"`
	RoomNumber int    `json:"room_number"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	Status     string `json:"status"`
}

func toBookingResponse(b *models.Booking) bookingResponse {
	return bookingResponse{
		BookingID:  b.BookingID,
		GuestID:    b.GuestID,
		RoomNumber: b.RoomNumber,
		CheckIn:    b.CheckIn.Format(time.DateOnly),
		CheckOut:   b.CheckOut.Format(time.DateOnly),
		Nights:     b.Nights(),
		Status:     b.Status.String(),
	}
}

func toBookingResponses(bookings []*models.Booking) []bookingResponse {
	out := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResponse(b))
	}
	return out
}

// GetBookings handles GET /api/bookings
func (bc *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, toBookingResponses(bc.service.ListBookings()))
}

// GetActiveBookings handles GET /api/bookings/active
func (bc *BookingController) GetActiveBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, toBookingResponses(bc.service.GetActiveBookings()))
}

// CreateBooking handles POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	booking, err := bc.service.CreateBooking(req.GuestID, req.RoomNumber, checkIn, checkOut)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, toBookingResponse(booking))
}

// GetBookingByID handles GET /api/bookings/:id
func (bc *BookingController) GetBookingByID(c *gin.Context) {
	booking, err := bc.service.GetBooking(c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponse(booking))
}

// CancelBooking handles POST /api/bookings/:id/cancel
func (bc *BookingController) CancelBooking(c *gin.Context) {
	if err := bc.service.CancelBooking(c.Param("id")); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"cancelled": c.Param("id")})
}

// CheckIn handles POST /api/bookings/:id/checkin
func (bc *BookingController) CheckIn(c *gin.Context) {
	var req dateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	if err := bc.service.CheckIn(c.Param("id"), date); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"checked_in": c.Param("id")})
}

// CheckOut handles POST /api/bookings/:id/checkout
func (bc *BookingController) CheckOut(c *gin.Context) {
	var req dateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	total, err := bc.service.CheckOut(c.Param("id"), date)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"checked_out": c.Param("id"), "total": total})
}

// GetInvoice handles GET /api/bookings/:id/invoice?tax_rate=
func (bc *BookingController) GetInvoice(c *gin.Context) {
	booking, err := bc.service.GetBooking(c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	room, err := bc.service.GetRoom(booking.RoomNumber)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	guest, err := bc.service.GetGuest(booking.GuestID)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	taxRate := bc.taxRate
	if raw := c.Query("tax_rate"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "tax_rate must be a non-negative number")
			return
		}
		taxRate = parsed
	}

	inv := payments.NewInvoice(booking, room, guest)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"booking_id": booking.BookingID,
		"base_cost":  inv.BaseCost(),
		"tax_rate":   taxRate,
		"tax":        inv.Tax(taxRate),
		"total":      inv.TotalWithTax(taxRate),
		"text":       inv.Text(taxRate),
	})
}
