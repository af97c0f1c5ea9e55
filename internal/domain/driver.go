package domain

// Driver is a registered account. Profile details collected by the
// registration wizard live in a separate registration record keyed by the
// driver id.
type Driver struct {
	ID                    int64  `json:"id"`
	Username              string `json:"username"`
	Mobile                string `json:"mobile"`
	Email                 string `json:"email,omitempty"`
	PasswordHash          string `json:"-"`
	RegistrationCompleted bool   `json:"registrationCompleted"`
	CreatedOn             string `json:"created_on"`
	UpdatedOn             string `json:"updated_on"`
}
