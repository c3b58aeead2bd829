package inventory

import (
	"github.com/avstrong/hotelier/internal/hotel"
	"github.com/avstrong/hotelier/internal/logger"
)

// Up loads the starting room list into the hotel. The rooms are a fixed
// sample set until inventory comes from a real back office.
func Up(l *logger.Logger, h *hotel.Hotel) error {
	rooms := []*hotel.Room{
		hotel.NewRoom(101, "standard", 100.0, 2),
		hotel.NewRoom(102, "luxury", 200.0, 3),
		hotel.NewRoom(103, "standard", 120.0, 2),
		hotel.NewRoom(104, "suite", 300.0, 4),
	}

	for _, room := range rooms {
		h.AddRoom(room)
	}

	l.LogInfo("Seeded %d rooms into hotel %v", len(rooms), h.Name())

	return nil
}
