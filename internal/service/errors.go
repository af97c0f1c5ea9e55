package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("invalid mobile number or password")
	ErrDriverExists       = errors.New("an account with this mobile number already exists")
	ErrVehicleUnavailable = errors.New("vehicle is not available for booking")
	ErrStaleQuote         = errors.New("price has changed, please review the updated quote")
	ErrNotBookingOwner    = errors.New("booking belongs to a different driver")
	ErrCannotCancel       = errors.New("booking can no longer be cancelled")
)

// ValidationError reports a single field that failed its format rule. It is
// user-facing: the message is shown inline, never treated as a server fault.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RegistrationBlockedError reports the first wizard step whose gate failed
// during final submission, with every offending field.
type RegistrationBlockedError struct {
	Step   int               `json:"step"`
	Errors map[string]string `json:"errors"`
}

func (e *RegistrationBlockedError) Error() string {
	return fmt.Sprintf("registration blocked at step %d: %d field error(s)", e.Step, len(e.Errors))
}
