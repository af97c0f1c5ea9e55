package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type VehicleHandler struct {
	vehicles service.VehicleService
}

func NewVehicleHandler(vehicles service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// List returns active vehicles, optionally filtered by city.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	status := r.URL.Query().Get("status")

	var limit int32
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			writeBadRequest(w, "invalid limit")
			return
		}
		limit = int32(n)
	}

	vehicles, err := h.vehicles.ListVehicles(r.Context(), city, status, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if vehicles == nil {
		vehicles = []domain.Vehicle{}
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "vehicles": vehicles})
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeBadRequest(w, "invalid vehicle id")
		return
	}

	vehicle, err := h.vehicles.GetVehicle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "vehicle": vehicle})
}
