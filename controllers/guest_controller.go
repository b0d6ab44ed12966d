package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type GuestController struct {
	service *services.HotelService
}

func NewGuestController(service *services.HotelService) *GuestController {
	return &GuestController{service: service}
}

type registerGuestRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact" binding:"required"`
}

// GetGuests handles GET /api/guests
func (gc *GuestController) GetGuests(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gc.service.ListGuests())
}

// RegisterGuest handles POST /api/guests
func (gc *GuestController) RegisterGuest(c *gin.Context) {
	var req registerGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	guest, err := gc.service.RegisterGuest(req.Name, req.Contact)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, guest)
}

// GetGuestByID handles GET /api/guests/:id
func (gc *GuestController) GetGuestByID(c *gin.Context) {
	guest, err := gc.service.GetGuest(c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, guest)
}

// GetGuestBookings handles GET /api/guests/:id/bookings
func (gc *GuestController) GetGuestBookings(c *gin.Context) {
	bookings, err := gc.service.GetGuestBookings(c.Param("id"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, toBookingResponses(bookings))
}
