package hotel_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstrong/hotelier/internal/hotel"
)

func TestBookingTotalPrice(t *testing.T) {
	tests := []struct {
		name  string
		rate  float64
		days  int
		price float64
	}{
		{name: "single day", rate: 100.0, days: 1, price: 100.0},
		{name: "five days gets no discount", rate: 100.0, days: 5, price: 500.0},
		{name: "six days gets 10 percent off", rate: 100.0, days: 6, price: 540.0},
		{name: "seven days at 200", rate: 200.0, days: 7, price: 1260.0},
		{name: "ten days at 100", rate: 100.0, days: 10, price: 900.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := hotel.NewRoom(101, "standard", tt.rate, 2)
			start := hotel.Date(2025, time.January, 1)
			end := start.AddDate(0, 0, tt.days)

			b := hotel.NewBooking(1, room, "Alice", start, end)

			assert.InDelta(t, tt.price, b.TotalPrice, 0.01)
		})
	}
}

func TestBookingUpdateDates(t *testing.T) {
	room := hotel.NewRoom(105, "luxury", 300.0, 2)
	b := hotel.NewBooking(1, room, "Grace", hotel.Date(2025, time.May, 1), hotel.Date(2025, time.May, 5))

	require.InDelta(t, 1200.0, b.TotalPrice, 0.01)

	// Growing the stay past the threshold recomputes the discounted price.
	err := b.UpdateDates(hotel.Date(2025, time.May, 1), hotel.Date(2025, time.May, 8))
	require.NoError(t, err)
	assert.InDelta(t, 7*300.0*0.9, b.TotalPrice, 0.01)
}

func TestBookingUpdateDatesInvalidRange(t *testing.T) {
	room := hotel.NewRoom(105, "luxury", 300.0, 2)
	start := hotel.Date(2025, time.May, 1)
	end := hotel.Date(2025, time.May, 5)
	b := hotel.NewBooking(1, room, "Grace", start, end)

	tests := []struct {
		name     string
		newStart time.Time
		newEnd   time.Time
	}{
		{
			name:     "inverted range",
			newStart: hotel.Date(2025, time.May, 10),
			newEnd:   hotel.Date(2025, time.May, 8),
		},
		{
			name:     "equal dates",
			newStart: hotel.Date(2025, time.May, 10),
			newEnd:   hotel.Date(2025, time.May, 10),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.UpdateDates(tt.newStart, tt.newEnd)

			require.Error(t, err)
			assert.NotNil(t, hotel.IsInvalidDateRange(err))

			assert.True(t, b.StartDate.Equal(start))
			assert.True(t, b.EndDate.Equal(end))
			assert.InDelta(t, 1200.0, b.TotalPrice, 0.01)
		})
	}
}
