// Package storage persists rooms and guests as full-snapshot JSON
// files. Bookings are deliberately not persisted: only rooms and
// guests survive a restart.
package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"hotel-reservation/errs"
	"hotel-reservation/models"
)

// Store is the persistence contract consumed by the process wiring.
// Load returns an empty slice when no prior data exists; malformed or
// unreadable data is a storage error.
type Store interface {
	LoadRooms() ([]*models.Room, error)
	SaveRooms(rooms []*models.Room) error
	LoadGuests() ([]*models.Guest, error)
	SaveGuests(guests []*models.Guest) error
}

// roomRecord is the wire shape of a serialized room. IsOccupied
// defaults to false when absent.
type roomRecord struct {
	Number        int     `json:"number"`
	RoomType      string  `json:"room_type"`
	PricePerNight float64 `json:"price_per_night"`
	IsOccupied    bool    `json:"is_occupied"`
}

type guestRecord struct {
	GuestID string `json:"guest_id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// JSONStore reads and writes one file per collection. A mutex guards
// concurrent snapshot writes against each other.
type JSONStore struct {
	mu         sync.RWMutex
	roomsPath  string
	guestsPath string
}

func NewJSONStore(roomsPath, guestsPath string) *JSONStore {
	return &JSONStore{roomsPath: roomsPath, guestsPath: guestsPath}
}

func (s *JSONStore) LoadRooms() ([]*models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []roomRecord
	if err := readJSON(s.roomsPath, &records); err != nil {
		return nil, errs.Storage("failed to load rooms: %v", err)
	}

	rooms := make([]*models.Room, 0, len(records))
	for _, rec := range records {
		room, err := models.NewRoom(rec.Number, rec.RoomType, rec.PricePerNight)
		if err != nil {
			return nil, errs.Storage("invalid room data: %v", err)
		}
		room.IsOccupied = rec.IsOccupied
		rooms = append(rooms, room)
	}
	return rooms, nil
}

func (s *JSONStore) SaveRooms(rooms []*models.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]roomRecord, 0, len(rooms))
	for _, r := range rooms {
		records = append(records, roomRecord{
			Number:        r.Number,
			RoomType:      r.RoomType,
			PricePerNight: r.PricePerNight,
			IsOccupied:    r.IsOccupied,
		})
	}
	if err := writeJSON(s.roomsPath, records); err != nil {
		return errs.Storage("failed to save rooms: %v", err)
	}
	return nil
}

func (s *JSONStore) LoadGuests() ([]*models.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []guestRecord
	if err := readJSON(s.guestsPath, &records); err != nil {
		return nil, errs.Storage("failed to load guests: %v", err)
	}

	guests := make([]*models.Guest, 0, len(records))
	for _, rec := range records {
		guest, err := models.NewGuest(rec.GuestID, rec.Name, rec.Contact)
		if err != nil {
			return nil, errs.Storage("invalid guest data: %v", err)
		}
		guests = append(guests, guest)
	}
	return guests, nil
}

func (s *JSONStore) SaveGuests(guests []*models.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]guestRecord, 0, len(guests))
	for _, g := range guests {
		records = append(records, guestRecord{
			GuestID: g.GuestID,
			Name:    g.Name,
			Contact: g.Contact,
		})
	}
	if err := writeJSON(s.guestsPath, records); err != nil {
		return errs.Storage("failed to save guests: %v", err)
	}
	return nil
}

// readJSON decodes path into out. A missing file leaves out untouched:
// the bootstrap path, not an error.
func readJSON(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// writeJSON overwrites path with an indented full snapshot.
func writeJSON(path string, v interface{}) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
