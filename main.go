package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-reservation/config"
	"hotel-reservation/controllers"
	"hotel-reservation/logger"
	"hotel-reservation/models"
	"hotel-reservation/routes"
	"hotel-reservation/services"
	"hotel-reservation/storage"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		logger.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	logger.Setup(cfg.LogLevel)

	hotel, err := models.NewHotel(cfg.Hotel.Name)
	if err != nil {
		logger.Error("invalid hotel configuration", "err", err)
		os.Exit(1)
	}

	store := storage.NewJSONStore(cfg.Storage.RoomsFile, cfg.Storage.GuestsFile)
	if err := storage.SeedFiles(store); err != nil {
		logger.Error("failed to seed data files", "err", err)
		os.Exit(1)
	}

	// Load persisted snapshot. Only rooms and guests survive a
	// restart; bookings live in memory for the session.
	rooms, err := store.LoadRooms()
	if err != nil {
		logger.Error("failed to load rooms", "err", err)
		os.Exit(1)
	}
	guests, err := store.LoadGuests()
	if err != nil {
		logger.Error("failed to load guests", "err", err)
		os.Exit(1)
	}
	for _, room := range rooms {
		if _, err := hotel.AddRoom(room.Number, room.RoomType, room.PricePerNight); err != nil {
			logger.Error("failed to restore room", "room", room.Number, "err", err)
			os.Exit(1)
		}
		restored, _ := hotel.GetRoom(room.Number)
		restored.IsOccupied = room.IsOccupied
	}
	for _, guest := range guests {
		hotel.AddGuest(guest)
	}
	logger.Info("snapshot loaded", "rooms", len(rooms), "guests", len(guests))

	// Initialize service and controllers
	hotelService := services.NewHotelService(hotel)
	roomController := controllers.NewRoomController(hotelService)
	guestController := controllers.NewGuestController(hotelService)
	bookingController := controllers.NewBookingController(hotelService, cfg.Hotel.TaxRate)
	reportController := controllers.NewReportController(hotelService)

	router := routes.SetupRouter(roomController, guestController, bookingController, reportController, cfg.Server.CORSOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "hotel", hotel.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen and serve failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "err", err)
	}

	// Persist the final rooms/guests snapshot on exit.
	if err := store.SaveRooms(hotelService.ListRooms()); err != nil {
		logger.Error("failed to save rooms snapshot", "err", err)
	}
	if err := store.SaveGuests(hotelService.ListGuests()); err != nil {
		logger.Error("failed to save guests snapshot", "err", err)
	}

	logger.Info("server stopped")
}
