package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/quote"
	"car-rental-backend/internal/registration"
)

// QuoteRequest carries the client-side booking inputs that feed the quote
// calculator. Dates are yyyy-mm-dd.
type QuoteRequest struct {
	VehicleID        int64  `json:"vehicleId"`
	TripStartDate    string `json:"tripStartDate"`
	TripEndDate      string `json:"tripEndDate"`
	DeliveryRequired bool   `json:"deliveryRequired"`
	CouponCode       string `json:"couponCode,omitempty"`
}

// BookingRequest is a QuoteRequest plus the trip details needed to persist a
// booking. ExpectedFinalAmount is the total the client showed the user; a
// non-zero value that disagrees with the server's own quote rejects the
// booking instead of silently charging something else.
type BookingRequest struct {
	QuoteRequest
	PickupLocation      string `json:"pickupLocation"`
	DropoffLocation     string `json:"dropoffLocation"`
	PaymentMethod       string `json:"paymentMethod"`
	ExpectedFinalAmount int64  `json:"finalAmount,omitempty"`
}

type VehicleService interface {
	AddVehicle(ctx context.Context, v *domain.Vehicle) error
	GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context, city, status string, limit int32) ([]domain.Vehicle, error)
	SetVehicleStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
}

type BookingService interface {
	GetQuote(ctx context.Context, req QuoteRequest) (*quote.Quote, error)
	CreateBooking(ctx context.Context, driverID int64, req BookingRequest) (*domain.Booking, error)
	GetBooking(ctx context.Context, reference string) (*domain.Booking, error)
	ListBookings(ctx context.Context, mobile string, statuses []string) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, driverID int64, reference string) (*domain.Booking, error)
}

type DriverService interface {
	Signup(ctx context.Context, username, mobile, email, password string) (*domain.Driver, string, error)
	Login(ctx context.Context, mobile, password string) (*domain.Driver, string, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, driverID int64) (*domain.Driver, *registration.Form, error)
	SaveRegistrationStep(ctx context.Context, driverID int64, step int, form registration.Form) (registration.StepResult, error)
	CompleteRegistration(ctx context.Context, driverID int64) error
}

type CityService interface {
	ListCities(ctx context.Context, activeOnly bool) ([]domain.City, error)
}

type NotificationService interface {
	RegisterDevice(ctx context.Context, driverID int64, token, platform string) error
	SendBookingConfirmation(ctx context.Context, b *domain.Booking) error
	SendTripReminder(ctx context.Context, b *domain.Booking) error
}

// EmailService delivers transactional mail. Implementations are best-effort;
// callers treat failures as non-fatal.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, toEmail, toName string, b *domain.Booking) error
	SendTripReminder(ctx context.Context, toEmail, toName string, b *domain.Booking) error
}

// PushService delivers push notifications to device tokens.
type PushService interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) error
}
