package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/avstrong/hotelier/internal/hotel"
)

func (s *Server) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError

	switch {
	case hotel.IsRoomNotFound(err) != nil || hotel.IsBookingNotFound(err) != nil:
		code = http.StatusNotFound
	case hotel.IsInvalidDateRange(err) != nil:
		code = http.StatusBadRequest
	case hotel.IsRoomUnavailable(err) != nil || hotel.IsRoomUnavailableForUpdate(err) != nil:
		code = http.StatusConflict
	default:
		s.l.LogErrorf("Unexpected error: %v", err.Error())
	}

	s.writeJSON(w, code, errorResponse{Error: err.Error()})
}

func (s *Server) bookingIDFromPath(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "booking id must be an integer"})

		return 0, false
	}

	return id, true
}

func (s *Server) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req bookRoomRequest

	if err := decodeAndValidate(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

		return
	}

	start, _ := parseDate(req.StartDate)
	end, _ := parseDate(req.EndDate)

	id, err := s.hotel.BookRoom(req.RoomNumber, req.GuestName, start, end)
	if err != nil {
		s.writeDomainError(w, err)

		return
	}

	details, err := s.hotel.Booking(id)
	if err != nil {
		s.writeDomainError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, newBookingResponse(details, ""))
}

func (s *Server) getBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := s.bookingIDFromPath(w, r)
	if !ok {
		return
	}

	details, err := s.hotel.Booking(id)
	if err != nil {
		s.writeDomainError(w, err)

		return
	}

	summary, err := s.hotel.BookingInfo(id)
	if err != nil {
		s.writeDomainError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, newBookingResponse(details, summary))
}

func (s *Server) updateBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := s.bookingIDFromPath(w, r)
	if !ok {
		return
	}

	var req updateBookingRequest

	if err := decodeAndValidate(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

		return
	}

	start, _ := parseDate(req.StartDate)
	end, _ := parseDate(req.EndDate)

	if err := s.hotel.UpdateBooking(id, start, end); err != nil {
		s.writeDomainError(w, err)

		return
	}

	details, err := s.hotel.Booking(id)
	if err != nil {
		s.writeDomainError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, newBookingResponse(details, ""))
}

func (s *Server) cancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := s.bookingIDFromPath(w, r)
	if !ok {
		return
	}

	if err := s.hotel.CancelBooking(id); err != nil {
		s.writeDomainError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) availableRoomsHandler(w http.ResponseWriter, r *http.Request) {
	from, err := parseDate(r.URL.Query().Get("from"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "provide 'from' as YYYY-MM-DD"})

		return
	}

	to, err := parseDate(r.URL.Query().Get("to"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "provide 'to' as YYYY-MM-DD"})

		return
	}

	rooms := s.hotel.AvailableRooms(from, to)
	if rooms == nil {
		rooms = []int{}
	}

	s.writeJSON(w, http.StatusOK, availableRoomsResponse{Rooms: rooms})
}

func (s *Server) incomeHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, incomeResponse{TotalIncome: s.hotel.TotalIncome()})
}

func (s *Server) occupancyHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.hotel.Report())
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) endpoint(h http.HandlerFunc) http.Handler {
	return s.applyMiddlewares(h, s.loggerMiddleware(), s.recoverMiddleware())
}

func (s *Server) addRoutes(r *http.ServeMux) {
	r.Handle("POST /api/bookings/v1", s.endpoint(s.createBookingHandler))
	r.Handle("GET /api/bookings/v1/{id}", s.endpoint(s.getBookingHandler))
	r.Handle("PUT /api/bookings/v1/{id}", s.endpoint(s.updateBookingHandler))
	r.Handle("DELETE /api/bookings/v1/{id}", s.endpoint(s.cancelBookingHandler))
	r.Handle("GET /api/rooms/v1/available", s.endpoint(s.availableRoomsHandler))
	r.Handle("GET /api/reports/v1/income", s.endpoint(s.incomeHandler))
	r.Handle("GET /api/reports/v1/occupancy", s.endpoint(s.occupancyHandler))
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.LivenessEndpoint),
		s.endpoint(s.livenessHandler),
	)
}
