package http

import (
	"net/http"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/service"
)

type CityHandler struct {
	cities service.CityService
}

func NewCityHandler(cities service.CityService) *CityHandler {
	return &CityHandler{cities: cities}
}

func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("isActive") == "true"

	cities, err := h.cities.ListCities(r.Context(), activeOnly)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if cities == nil {
		cities = []domain.City{}
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "cities": cities})
}
