package http

import (
	"net/http"

	"car-rental-backend/internal/service"
)

type NotificationHandler struct {
	notifications service.NotificationService
}

func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

type registerDeviceRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

func (h *NotificationHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	var req registerDeviceRequest
	if err := decodeBody(r, &req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}
	if req.Token == "" {
		writeBadRequest(w, "token is required")
		return
	}

	if err := h.notifications.RegisterDevice(r.Context(), claims.DriverID, req.Token, req.Platform); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelope{"success": true})
}
