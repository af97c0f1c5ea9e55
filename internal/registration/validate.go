package registration

import (
	"regexp"
	"strings"
	"time"
)

// Field names, matching the wire names the registration form submits.
const (
	FieldName              = "name"
	FieldEmail             = "email"
	FieldPhone             = "phone"
	FieldDateOfBirth       = "dateOfBirth"
	FieldAddress           = "address"
	FieldEmergencyPhone    = "emergencyPhone"
	FieldLicenseNumber     = "licenseNumber"
	FieldLicenseExpiryDate = "licenseExpiryDate"
	FieldAadharNumber      = "aadharNumber"
	FieldPanNumber         = "panNumber"
	FieldExperience        = "experience"
	FieldBankName          = "bankName"
	FieldAccountNumber     = "accountNumber"
	FieldIfscCode          = "ifscCode"
	FieldAccountHolderName = "accountHolderName"
	FieldAccountBranchName = "accountBranchName"
)

const (
	minDriverAge = 18
	maxDriverAge = 65
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern  = regexp.MustCompile(`^[6-9]\d{9}$`)
	aadharPattern = regexp.MustCompile(`^\d{12}$`)
	panPattern    = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	ifscPattern   = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	nonDigits     = regexp.MustCompile(`\D`)
)

// FieldResult is the outcome of a single field validation.
type FieldResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func ok() FieldResult             { return FieldResult{Valid: true} }
func fail(msg string) FieldResult { return FieldResult{Valid: false, Message: msg} }

// ValidateField checks a single field value against its format rule. Empty
// optional values pass here; required-ness is enforced by the step gate.
// Validators are pure and idempotent: the same input always yields the same
// result.
func ValidateField(field, value string) FieldResult {
	switch field {
	case FieldName:
		if strings.TrimSpace(value) == "" {
			return fail("Name is required")
		}
	case FieldEmail:
		if strings.TrimSpace(value) == "" {
			return fail("Email is required")
		}
		if !emailPattern.MatchString(value) {
			return fail("Invalid email")
		}
	case FieldPhone, FieldEmergencyPhone:
		if value != "" && !phonePattern.MatchString(nonDigits.ReplaceAllString(value, "")) {
			return fail("Invalid phone number")
		}
	case FieldDateOfBirth:
		if value != "" {
			return validateDateOfBirth(value, time.Now())
		}
	case FieldAadharNumber:
		if value != "" && !aadharPattern.MatchString(nonDigits.ReplaceAllString(value, "")) {
			return fail("Aadhar must be 12 digits")
		}
	case FieldPanNumber:
		if value != "" && !panPattern.MatchString(strings.ToUpper(value)) {
			return fail("Invalid PAN format")
		}
	case FieldIfscCode:
		if value != "" && !ifscPattern.MatchString(strings.ToUpper(value)) {
			return fail("Invalid IFSC code")
		}
	}
	return ok()
}

// validateDateOfBirth checks the driver age window against a reference time,
// split out so tests can pin the clock.
func validateDateOfBirth(value string, now time.Time) FieldResult {
	dob, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fail("Invalid date of birth")
	}
	age := ageInYears(dob, now)
	if age < minDriverAge {
		return fail("Must be at least 18 years old")
	}
	if age > maxDriverAge {
		return fail("Age cannot exceed 65")
	}
	return ok()
}

// ageInYears computes age in whole calendar years.
func ageInYears(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
