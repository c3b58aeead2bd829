package hotel

import (
	"fmt"
	"sync"
	"time"

	"github.com/avstrong/hotelier/internal/logger"
)

// Hotel is the aggregate root: it owns the canonical booking index and the
// room list, and every cross-entity mutation goes through it. Rooms and
// bookings never mutate each other on their own.
//
// A single mutex guards the whole instance. The update protocol briefly
// detaches a booking from its room, and that intermediate state must never
// be visible to a concurrent reader.
type Hotel struct {
	mu sync.RWMutex

	name     string
	rooms    []*Room
	bookings map[int]*Booking

	l *logger.Logger
}

func New(l *logger.Logger, name string, rooms []*Room) *Hotel {
	return &Hotel{
		name:     name,
		rooms:    rooms,
		bookings: make(map[int]*Booking),
		l:        l,
	}
}

func (h *Hotel) Name() string {
	return h.name
}

// AddRoom appends a room to the inventory. There is no room removal.
func (h *Hotel) AddRoom(r *Room) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.rooms = append(h.rooms, r)
}

func (h *Hotel) roomByNumber(number int) *Room {
	for _, r := range h.rooms {
		if r.Number == number {
			return r
		}
	}

	return nil
}

// generateBookingID derives the next id from the current live booking count,
// not from a monotonic counter. Ids freed by cancellations are therefore
// reused. The scheme is externally observable and kept on purpose.
func (h *Hotel) generateBookingID() int {
	return len(h.bookings) + 1
}

// BookRoom validates the request against the room's current bookings and,
// only if every check passes, commits the new booking to both the room and
// the index. A failed check leaves no trace.
func (h *Hotel) BookRoom(roomNumber int, guestName string, start, end time.Time) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room := h.roomByNumber(roomNumber)
	if room == nil {
		return 0, &RoomNotFoundError{Number: roomNumber}
	}

	if !start.Before(end) {
		return 0, &InvalidDateRangeError{Start: start, End: end}
	}

	if !room.IsAvailableFor(start, end) {
		return 0, &RoomUnavailableError{Number: roomNumber, Start: start, End: end}
	}

	bookingID := h.generateBookingID()
	booking := NewBooking(bookingID, room, guestName, start, end)

	room.AddBooking(booking)
	h.bookings[bookingID] = booking

	h.l.LogInfo(
		"Booked room %d for %v from %v to %v, booking id %d",
		roomNumber,
		guestName,
		start.Format(DateLayout),
		end.Format(DateLayout),
		bookingID,
	)

	return bookingID, nil
}

// CancelBooking removes a booking from the index and from its room. Both
// removals happen together; dropping only one side would break the
// bidirectional consistency between the index and the room lists.
func (h *Hotel) CancelBooking(bookingID int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	booking, ok := h.bookings[bookingID]
	if !ok {
		return &BookingNotFoundError{ID: bookingID}
	}

	delete(h.bookings, bookingID)
	booking.Room.removeBooking(booking)

	h.l.LogInfo("Cancelled booking %d on room %d", bookingID, booking.Room.Number)

	return nil
}

// UpdateBooking moves a booking to a new date range. The booking's own dates
// occupy its room's taken set, so it is detached first, the new range is
// checked against the booking-free set, and the booking is re-attached on
// every path out, success or failure. An update rejected for any reason
// leaves dates, price and room membership exactly as they were.
func (h *Hotel) UpdateBooking(bookingID int, newStart, newEnd time.Time) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	booking, ok := h.bookings[bookingID]
	if !ok {
		return &BookingNotFoundError{ID: bookingID}
	}

	room := booking.Room

	room.removeBooking(booking)
	defer room.AddBooking(booking)

	if !room.IsAvailableFor(newStart, newEnd) {
		return &RoomUnavailableForUpdateError{
			Number:    room.Number,
			BookingID: bookingID,
			Start:     newStart,
			End:       newEnd,
		}
	}

	if err := booking.UpdateDates(newStart, newEnd); err != nil {
		return err
	}

	h.l.LogInfo(
		"Updated booking %d on room %d to %v - %v",
		bookingID,
		room.Number,
		newStart.Format(DateLayout),
		newEnd.Format(DateLayout),
	)

	return nil
}

// AvailableRooms returns, in inventory order, the numbers of rooms free for
// the given range. The range itself is not validated; an inverted range is
// trivially disjoint from everything and returns every room.
func (h *Hotel) AvailableRooms(start, end time.Time) []int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var numbers []int

	for _, r := range h.rooms {
		if r.IsAvailableFor(start, end) {
			numbers = append(numbers, r.Number)
		}
	}

	return numbers
}

// TotalIncome sums the price of every live booking. Cancelled bookings left
// the index on cancellation, so they are excluded by construction.
func (h *Hotel) TotalIncome() float64 {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var total float64

	for _, b := range h.bookings {
		total += b.TotalPrice
	}

	return total
}

// BookingDetails is a read-only snapshot of one booking.
type BookingDetails struct {
	ID         int
	RoomNumber int
	GuestName  string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
}

func (h *Hotel) Booking(bookingID int) (BookingDetails, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	b, ok := h.bookings[bookingID]
	if !ok {
		return BookingDetails{}, &BookingNotFoundError{ID: bookingID}
	}

	return BookingDetails{
		ID:         b.ID,
		RoomNumber: b.Room.Number,
		GuestName:  b.GuestName,
		StartDate:  b.StartDate,
		EndDate:    b.EndDate,
		TotalPrice: b.TotalPrice,
	}, nil
}

// BookingInfo renders one booking as a human-readable line.
func (h *Hotel) BookingInfo(bookingID int) (string, error) {
	details, err := h.Booking(bookingID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(
		"Booking %d for room %d by %s from %s to %s for %.2f",
		details.ID,
		details.RoomNumber,
		details.GuestName,
		details.StartDate.Format(DateLayout),
		details.EndDate.Format(DateLayout),
		details.TotalPrice,
	), nil
}

// Report returns the live booking count per room. Every room appears, with
// zero for rooms that have no bookings.
func (h *Hotel) Report() map[int]int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	counts := make(map[int]int, len(h.rooms))

	for _, r := range h.rooms {
		counts[r.Number] = r.bookingCount()
	}

	return counts
}
