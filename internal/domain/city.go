package domain

// City is a serviceable location offered on the search page.
type City struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	State     string  `json:"state"`
	IsActive  bool    `json:"isActive"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}
