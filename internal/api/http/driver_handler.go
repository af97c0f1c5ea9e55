package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/registration"
	"car-rental-backend/internal/service"
)

type DriverHandler struct {
	drivers service.DriverService
}

func NewDriverHandler(drivers service.DriverService) *DriverHandler {
	return &DriverHandler{drivers: drivers}
}

type signupRequest struct {
	Username string `json:"username"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

type loginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

func (h *DriverHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Mobile == "" || req.Password == "" {
		writeBadRequest(w, "mobile and password are required")
		return
	}

	driver, token, err := h.drivers.Signup(r.Context(), req.Username, req.Mobile, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{"success": true, "token": token, "driver": driver})
}

func (h *DriverHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	driver, token, err := h.drivers.Login(r.Context(), req.Mobile, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "token": token, "driver": driver})
}

func (h *DriverHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.drivers.Logout(r.Context(), tokenFrom(r)); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true})
}

func (h *DriverHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	driver, form, err := h.drivers.GetProfile(r.Context(), claims.DriverID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	resp := envelope{"success": true, "driver": driver}
	if form != nil {
		resp["registration"] = form
	}
	writeJSON(w, http.StatusOK, resp)
}

// ValidateField runs a single field validator, mirroring the inline checks
// the registration form performs as the user types.
func (h *DriverHandler) ValidateField(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Field == "" {
		writeBadRequest(w, "field is required")
		return
	}

	res := registration.ValidateField(req.Field, req.Value)
	writeJSON(w, http.StatusOK, envelope{"success": true, "result": res})
}

// SaveRegistrationStep runs one wizard step's gate and persists the form when
// it passes. A blocked step returns 200 with allowed=false and the per-field
// errors, matching the client's inline display.
func (h *DriverHandler) SaveRegistrationStep(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	step, err := strconv.Atoi(mux.Vars(r)["step"])
	if err != nil || step < registration.StepPersonal || step > registration.StepReview {
		writeBadRequest(w, "invalid step")
		return
	}

	var form registration.Form
	if err := decodeBody(r, &form); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	res, err := h.drivers.SaveRegistrationStep(r.Context(), claims.DriverID, step, form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true, "result": res})
}

// CompleteRegistration re-validates the whole wizard before marking the
// account registered. The path carries the driver id for parity with the
// mobile client, but only the authenticated driver may complete their own
// registration.
func (h *DriverHandler) CompleteRegistration(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	driverID, err := strconv.ParseInt(mux.Vars(r)["driverId"], 10, 64)
	if err != nil {
		writeBadRequest(w, "invalid driver id")
		return
	}
	if driverID != claims.DriverID {
		writeJSON(w, http.StatusForbidden, envelope{"success": false, "message": "cannot complete another driver's registration"})
		return
	}

	if err := h.drivers.CompleteRegistration(r.Context(), driverID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true})
}
