package http

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Quote returns an itemized price preview without persisting anything.
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req service.QuoteRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.VehicleID == 0 || req.TripStartDate == "" {
		writeBadRequest(w, "vehicleId and tripStartDate are required")
		return
	}

	q, err := h.bookings.GetQuote(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "quote": q})
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	var req service.BookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.VehicleID == 0 || req.TripStartDate == "" {
		writeBadRequest(w, "vehicleId and tripStartDate are required")
		return
	}

	booking, err := h.bookings.CreateBooking(r.Context(), claims.DriverID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"success": true, "booking": booking})
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	reference := mux.Vars(r)["reference"]

	booking, err := h.bookings.GetBooking(r.Context(), reference)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "booking": booking})
}

// ListByMobile returns a driver's bookings, optionally filtered by a
// comma-separated status list.
func (h *BookingHandler) ListByMobile(w http.ResponseWriter, r *http.Request) {
	mobile := mux.Vars(r)["mobile"]

	var statuses []string
	if raw := r.URL.Query().Get("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}

	bookings, err := h.bookings.ListBookings(r.Context(), mobile, statuses)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "bookings": bookings})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)
	reference := mux.Vars(r)["reference"]

	booking, err := h.bookings.CancelBooking(r.Context(), claims.DriverID, reference)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "booking": booking})
}
