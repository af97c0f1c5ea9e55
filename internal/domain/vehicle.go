package domain

type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
	VehicleStatusInactive    VehicleStatus = "inactive"
)

// Vehicle is a rentable car. Money fields are whole rupees.
type Vehicle struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Brand           string        `json:"brand"`
	Model           string        `json:"model"`
	Year            int           `json:"year"`
	City            string        `json:"city"`
	Transmission    string        `json:"transmission"`
	FuelType        string        `json:"fuelType"`
	SeatingCapacity int           `json:"seatingCapacity"`
	PricePerDay     int64         `json:"pricePerDay"`
	SecurityDeposit int64         `json:"securityDeposit"`
	CarFullPhoto    string        `json:"carFullPhoto,omitempty"`
	Status          VehicleStatus `json:"status"`
	CreatedOn       string        `json:"created_on"`
	UpdatedOn       string        `json:"updated_on"`
}
