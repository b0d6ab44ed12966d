package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type RoomController struct {
	service *services.HotelService
}

func NewRoomController(service *services.HotelService) *RoomController {
	return &RoomController{service: service}
}

type createRoomRequest struct {
	Number        int     `json:"number" binding:"required"`
	RoomType      string  `json:"room_type" binding:"required"`
	PricePerNight float64 `json:"price_per_night" binding:"required"`
}

// GetRooms handles GET /api/rooms
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.service.ListRooms())
}

// CreateRoom handles POST /api/rooms
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := rc.service.AddRoom(req.Number, req.RoomType, req.PricePerNight)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// GetRoomByNumber handles GET /api/rooms/:number
func (rc *RoomController) GetRoomByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room number must be an integer")
		return
	}

	room, err := rc.service.GetRoom(number)
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /api/rooms/:number
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room number must be an integer")
		return
	}

	if err := rc.service.RemoveRoom(number); err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"removed": number})
}

// GetAvailableRooms handles GET /api/rooms/available?check_in=&check_out=&room_type=
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}

	rooms, err := rc.service.GetAvailableRooms(checkIn, checkOut, c.Query("room_type"))
	if err != nil {
		utils.JSONDomainError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
