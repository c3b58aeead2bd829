package hotel

import (
	"errors"
	"fmt"
	"time"
)

// RoomNotFoundError reports an operation against a room number the hotel
// does not have.
type RoomNotFoundError struct {
	Number int
}

func (e *RoomNotFoundError) Error() string {
	return fmt.Sprintf("room %d not found", e.Number)
}

func IsRoomNotFound(err error) *RoomNotFoundError {
	var roomErr *RoomNotFoundError

	if errors.As(err, &roomErr) {
		return roomErr
	}

	return nil
}

// BookingNotFoundError reports an operation against a booking id absent from
// the hotel's index.
type BookingNotFoundError struct {
	ID int
}

func (e *BookingNotFoundError) Error() string {
	return fmt.Sprintf("booking %d not found", e.ID)
}

func IsBookingNotFound(err error) *BookingNotFoundError {
	var bookingErr *BookingNotFoundError

	if errors.As(err, &bookingErr) {
		return bookingErr
	}

	return nil
}

// InvalidDateRangeError reports a range whose start is not strictly before
// its end.
type InvalidDateRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidDateRangeError) Error() string {
	return fmt.Sprintf(
		"invalid date range: %s is not before %s",
		e.Start.Format(DateLayout),
		e.End.Format(DateLayout),
	)
}

func IsInvalidDateRange(err error) *InvalidDateRangeError {
	var rangeErr *InvalidDateRangeError

	if errors.As(err, &rangeErr) {
		return rangeErr
	}

	return nil
}

// RoomUnavailableError reports a booking attempt that conflicts with an
// existing booking on the room.
type RoomUnavailableError struct {
	Number int
	Start  time.Time
	End    time.Time
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf(
		"room %d is not available from %s to %s",
		e.Number,
		e.Start.Format(DateLayout),
		e.End.Format(DateLayout),
	)
}

func IsRoomUnavailable(err error) *RoomUnavailableError {
	var unavailableErr *RoomUnavailableError

	if errors.As(err, &unavailableErr) {
		return unavailableErr
	}

	return nil
}

// RoomUnavailableForUpdateError reports an update that would move a booking
// into a range conflicting with another booking on the same room. It is kept
// distinct from RoomUnavailableError so callers can tell the two paths apart.
type RoomUnavailableForUpdateError struct {
	Number    int
	BookingID int
	Start     time.Time
	End       time.Time
}

func (e *RoomUnavailableForUpdateError) Error() string {
	return fmt.Sprintf(
		"room %d is not available from %s to %s for booking %d",
		e.Number,
		e.Start.Format(DateLayout),
		e.End.Format(DateLayout),
		e.BookingID,
	)
}

func IsRoomUnavailableForUpdate(err error) *RoomUnavailableForUpdateError {
	var updateErr *RoomUnavailableForUpdateError

	if errors.As(err, &updateErr) {
		return updateErr
	}

	return nil
}
