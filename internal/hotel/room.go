package hotel

import "time"

// DateLayout is the wire and log format for booking dates. Dates are stored
// as UTC midnight instants; a range is half-open, [start, end).
const DateLayout = "2006-01-02"

// Date builds a UTC midnight instant, the canonical form for all booking
// dates in this package.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Room is a unit of inventory. Pricing, type and capacity are fixed at
// construction; only the set of bookings assigned to it changes.
type Room struct {
	Number      int
	RoomType    string
	PricePerDay float64
	Capacity    int

	bookings []*Booking
}

func NewRoom(number int, roomType string, pricePerDay float64, capacity int) *Room {
	return &Room{
		Number:      number,
		RoomType:    roomType,
		PricePerDay: pricePerDay,
		Capacity:    capacity,
		bookings:    nil,
	}
}

// IsAvailableFor reports whether the half-open range [start, end) is free of
// conflicts with the room's current bookings. Two ranges conflict iff they
// are not disjoint, so a range that ends exactly where another begins is
// allowed. The caller is responsible for start < end.
func (r *Room) IsAvailableFor(start, end time.Time) bool {
	for _, b := range r.bookings {
		if end.After(b.StartDate) && start.Before(b.EndDate) {
			return false
		}
	}

	return true
}

// AddBooking appends a booking without any validation. Availability must
// already have been confirmed by the hotel; keeping the check-then-commit
// protocol in one place is what makes it atomic.
func (r *Room) AddBooking(b *Booking) {
	r.bookings = append(r.bookings, b)
}

func (r *Room) removeBooking(b *Booking) {
	for i, existing := range r.bookings {
		if existing == b {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)

			return
		}
	}
}

func (r *Room) bookingCount() int {
	return len(r.bookings)
}
