package domain

// DeviceToken is a push-notification registration for a driver's device.
type DeviceToken struct {
	ID        int64  `json:"id"`
	DriverID  int64  `json:"driverId"`
	Token     string `json:"token"`
	Platform  string `json:"platform"`
	CreatedOn string `json:"created_on"`
}
