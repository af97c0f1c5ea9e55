package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/quote"
	"car-rental-backend/internal/service"
)

// envelope is the common response shape: success plus endpoint-specific keys.
type envelope map[string]interface{}

func writeJSON(w http.ResponseWriter, status int, payload envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP statuses. Anything unmapped is a
// 500 with a generic message; the underlying error goes to the log only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var blocked *service.RegistrationBlockedError
	if errors.As(err, &blocked) {
		writeJSON(w, http.StatusUnprocessableEntity, envelope{
			"success": false,
			"message": blocked.Error(),
			"step":    blocked.Step,
			"errors":  blocked.Errors,
		})
		return
	}

	var invalid *service.ValidationError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusBadRequest, envelope{
			"success": false,
			"message": invalid.Message,
			"field":   invalid.Field,
		})
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, sql.ErrNoRows):
		status, message = http.StatusNotFound, "not found"
	case errors.Is(err, quote.ErrInvalidDateRange),
		errors.Is(err, quote.ErrMalformedDate),
		errors.Is(err, quote.ErrCouponNotFound):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrNotBookingOwner):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrDriverExists),
		errors.Is(err, service.ErrStaleQuote),
		errors.Is(err, service.ErrVehicleUnavailable),
		errors.Is(err, service.ErrCannotCancel):
		status, message = http.StatusConflict, err.Error()
	}

	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}

	writeJSON(w, status, envelope{"success": false, "message": message})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, envelope{"success": false, "message": message})
}

func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
