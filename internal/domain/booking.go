package domain

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusOngoing   BookingStatus = "ongoing"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Booking is a confirmed rental.
// Price breakdown fields are a snapshot of the quote computed at booking
// time; later vehicle price changes never touch an existing booking.
type Booking struct {
	ID              int64         `json:"id"`
	Reference       string        `json:"_id"`
	VehicleID       int64         `json:"vehicleId"`
	DriverID        int64         `json:"driverId"`
	DriverMobile    string        `json:"driverMobile"`
	City            string        `json:"city"`
	PickupLocation  string        `json:"pickupLocation"`
	DropoffLocation string        `json:"dropoffLocation"`
	TripStartDate   string        `json:"tripStartDate"`
	TripEndDate     string        `json:"tripEndDate"`
	NumberOfDays    int64         `json:"numberOfDays"`
	TotalAmount     int64         `json:"totalAmount"`
	SecurityDeposit int64         `json:"securityDeposit"`
	DeliveryCharge  int64         `json:"deliveryCharges"`
	TaxAmount       int64         `json:"taxes"`
	Discount        int64         `json:"discount"`
	FinalAmount     int64         `json:"finalAmount"`
	CouponCode      string        `json:"couponCode,omitempty"`
	PaymentMethod   string        `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	Status          BookingStatus `json:"status"`
	CreatedOn       string        `json:"created_on"`
	UpdatedOn       string        `json:"updated_on"`
}
