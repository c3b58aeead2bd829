package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/avstrong/hotelier/internal/hotel"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type bookRoomRequest struct {
	RoomNumber int    `json:"room_number" validate:"required"`
	GuestName  string `json:"guest_name"  validate:"required,max=100"`
	StartDate  string `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date"    validate:"required,datetime=2006-01-02"`
}

type updateBookingRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

type bookingResponse struct {
	BookingID  int     `json:"booking_id"`
	RoomNumber int     `json:"room_number"`
	GuestName  string  `json:"guest_name"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	TotalPrice float64 `json:"total_price"`
	Summary    string  `json:"summary,omitempty"`
}

type availableRoomsResponse struct {
	Rooms []int `json:"rooms"`
}

type incomeResponse struct {
	TotalIncome float64 `json:"total_income"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newBookingResponse(d hotel.BookingDetails, summary string) bookingResponse {
	return bookingResponse{
		BookingID:  d.ID,
		RoomNumber: d.RoomNumber,
		GuestName:  d.GuestName,
		StartDate:  d.StartDate.Format(hotel.DateLayout),
		EndDate:    d.EndDate.Format(hotel.DateLayout),
		TotalPrice: d.TotalPrice,
		Summary:    summary,
	}
}

func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}

	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("validate request body: %w", err)
	}

	return nil
}

// parseDate assumes the value already passed the datetime validation tag and
// only guards against callers that skipped it, e.g. query parameters.
func parseDate(value string) (time.Time, error) {
	d, err := time.Parse(hotel.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return d, nil
}
