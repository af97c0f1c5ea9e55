// Package http exposes the REST API: vehicle catalog, city list, quotes,
// bookings, driver auth with the registration wizard, and device
// registration for push notifications.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"car-rental-backend/internal/security"
	"car-rental-backend/internal/service"
	"car-rental-backend/internal/session"
)

// Services bundles everything the router needs.
type Services struct {
	Vehicles      service.VehicleService
	Cities        service.CityService
	Bookings      service.BookingService
	Drivers       service.DriverService
	Notifications service.NotificationService
	Tokens        security.TokenManager
	Sessions      session.Store
}

// NewRouter builds the full route table. Reads of public catalog data are
// unauthenticated; everything that acts on behalf of a driver requires a
// bearer token with a live session.
func NewRouter(s Services) *mux.Router {
	r := mux.NewRouter()
	r.Use(LoggingMiddleware)

	auth := NewAuthMiddleware(s.Tokens, s.Sessions)

	vehicleHandler := NewVehicleHandler(s.Vehicles)
	cityHandler := NewCityHandler(s.Cities)
	bookingHandler := NewBookingHandler(s.Bookings)
	driverHandler := NewDriverHandler(s.Drivers)
	notificationHandler := NewNotificationHandler(s.Notifications)

	api := r.PathPrefix("/api").Subrouter()

	// Public catalog and quoting
	api.HandleFunc("/vehicles", vehicleHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", vehicleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/cities", cityHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/quotes", bookingHandler.Quote).Methods(http.MethodPost)

	// Driver auth
	api.HandleFunc("/driver-auth/signup", driverHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/driver-auth/login", driverHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/driver-auth/validate-field", driverHandler.ValidateField).Methods(http.MethodPost)

	// Authenticated surface
	protected := api.NewRoute().Subrouter()
	protected.Use(auth.Require)
	protected.HandleFunc("/driver-auth/logout", driverHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/driver-auth/profile", driverHandler.Profile).Methods(http.MethodGet)
	protected.HandleFunc("/driver-auth/registration/{step:[1-5]}", driverHandler.SaveRegistrationStep).Methods(http.MethodPut)
	protected.HandleFunc("/driver-auth/complete-registration/{driverId:[0-9]+}", driverHandler.CompleteRegistration).Methods(http.MethodPut)
	protected.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/by-mobile/{mobile}", bookingHandler.ListByMobile).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{reference}", bookingHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{reference}/cancel", bookingHandler.Cancel).Methods(http.MethodPut)
	protected.HandleFunc("/notifications/register-device", notificationHandler.RegisterDevice).Methods(http.MethodPost)

	return r
}
