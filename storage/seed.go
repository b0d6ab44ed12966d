package storage

import (
	"errors"
	"os"

	"hotel-reservation/errs"
	"hotel-reservation/logger"
	"hotel-reservation/models"
)

// SeedFiles writes an initial dataset to any snapshot file that does
// not exist yet. Existing files are left alone, so re-running at every
// startup is safe.
func SeedFiles(store *JSONStore) error {
	exists, err := fileExists(store.roomsPath)
	if err != nil {
		return errs.Storage("failed to stat rooms file: %v", err)
	}
	if !exists {
		rooms := []*models.Room{
			{Number: 101, RoomType: "single", PricePerNight: 100.0},
			{Number: 102, RoomType: "double", PricePerNight: 150.0},
			{Number: 103, RoomType: "suite", PricePerNight: 250.0},
		}
		if err := store.SaveRooms(rooms); err != nil {
			return err
		}
		logger.Info("seeded rooms file", "path", store.roomsPath)
	}

	exists, err = fileExists(store.guestsPath)
	if err != nil {
		return errs.Storage("failed to stat guests file: %v", err)
	}
	if !exists {
		guests := []*models.Guest{
			{GuestID: "guest-001", Name: "John Doe", Contact: "john@example.com"},
			{GuestID: "guest-002", Name: "Jane Smith", Contact: "jane@example.com"},
		}
		if err := store.SaveGuests(guests); err != nil {
			return err
		}
		logger.Info("seeded guests file", "path", store.guestsPath)
	}

	return nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}
