package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservation/controllers"
	"hotel-reservation/middleware"
)

// SetupRouter wires the controller instances into the gin engine.
func SetupRouter(
	rc *controllers.RoomController,
	gc *controllers.GuestController,
	bc *controllers.BookingController,
	rpc *controllers.ReportController,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	allowCredentials := true
	for _, origin := range corsOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)

			// static route must stay ahead of /:number
			rooms.GET("/available", rc.GetAvailableRooms)

			rooms.GET("/:number", rc.GetRoomByNumber)
			rooms.DELETE("/:number", rc.DeleteRoom)
		}

		guests := api.Group("/guests")
		{
			guests.GET("", gc.GetGuests)
			guests.POST("", gc.RegisterGuest)
			guests.GET("/:id", gc.GetGuestByID)
			guests.GET("/:id/bookings", gc.GetGuestBookings)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/active", bc.GetActiveBookings)
			bookings.GET("/:id", bc.GetBookingByID)
			bookings.POST("/:id/cancel", bc.CancelBooking)
			bookings.POST("/:id/checkin", bc.CheckIn)
			bookings.POST("/:id/checkout", bc.CheckOut)
			bookings.GET("/:id/invoice", bc.GetInvoice)
		}

		reports := api.Group("/reports")
		{
			reports.GET("/occupancy", rpc.GetOccupancy)
			reports.GET("/revenue", rpc.GetRevenue)
		}
	}

	return r
}
