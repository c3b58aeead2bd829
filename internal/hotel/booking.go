package hotel

import "time"

// Stays strictly longer than discountThresholdDays get a flat 10% off.
// Both values are fixed constants of the domain.
const (
	discountThresholdDays = 5
	discountFactor        = 0.9
)

// Booking is a reservation record tied to exactly one room. TotalPrice is
// derived from the dates and the room's rate and is recomputed whenever the
// dates change.
type Booking struct {
	ID         int
	Room       *Room
	GuestName  string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
}

// NewBooking builds a booking and derives its price. It does not check the
// room's availability; that is the hotel's job before committing.
func NewBooking(id int, room *Room, guestName string, start, end time.Time) *Booking {
	b := &Booking{
		ID:         id,
		Room:       room,
		GuestName:  guestName,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: 0,
	}
	b.TotalPrice = b.calculateTotalPrice()

	return b
}

func (b *Booking) calculateTotalPrice() float64 {
	numDays := int(b.EndDate.Sub(b.StartDate) / (24 * time.Hour))

	price := float64(numDays) * b.Room.PricePerDay
	if numDays > discountThresholdDays {
		price *= discountFactor
	}

	return price
}

// UpdateDates moves the booking to a new range and recomputes the price.
// Equal start and end dates are rejected along with inverted ones.
// Availability against the room is not checked here; the hotel re-validates
// before calling.
func (b *Booking) UpdateDates(newStart, newEnd time.Time) error {
	if !newStart.Before(newEnd) {
		return &InvalidDateRangeError{Start: newStart, End: newEnd}
	}

	b.StartDate = newStart
	b.EndDate = newEnd
	b.TotalPrice = b.calculateTotalPrice()

	return nil
}
