// Package registration holds the driver-registration wizard: the per-field
// validation rules, the per-step admission gate, and the linear five-step
// state machine. All of it is pure; persistence belongs to the caller.
package registration

// Form is the full set of fields collected by the five-step wizard. It is a
// fixed schema rather than an open key-value bag so every validator has a
// typed field to point at. Document fields carry storage references, not the
// file bytes themselves.
type Form struct {
	// Step 1: personal info
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	DateOfBirth       string `json:"dateOfBirth"`
	Address           string `json:"address"`
	City              string `json:"city"`
	State             string `json:"state"`
	Pincode           string `json:"pincode"`
	Latitude          string `json:"latitude"`
	Longitude         string `json:"longitude"`
	EmergencyContact  string `json:"emergencyContact"`
	EmergencyRelation string `json:"emergencyRelation"`
	EmergencyPhone    string `json:"emergencyPhone"`

	// Step 2: documents and license
	LicenseNumber     string `json:"licenseNumber"`
	LicenseExpiryDate string `json:"licenseExpiryDate"`
	LicenseClass      string `json:"licenseClass"`
	AadharNumber      string `json:"aadharNumber"`
	PanNumber         string `json:"panNumber"`
	ElectricBillNo    string `json:"electricBillNo"`

	// Step 3: professional
	Experience         string `json:"experience"`
	PreviousEmployment string `json:"previousEmployment"`
	PlanType           string `json:"planType"`
	VehiclePreference  string `json:"vehiclePreference"`

	// Step 4: banking
	BankName          string `json:"bankName"`
	AccountNumber     string `json:"accountNumber"`
	IfscCode          string `json:"ifscCode"`
	AccountHolderName string `json:"accountHolderName"`
	AccountBranchName string `json:"accountBranchName"`

	// Uploaded document references
	ProfilePhoto         string `json:"profilePhoto,omitempty"`
	LicenseDocument      string `json:"licenseDocument,omitempty"`
	AadharDocument       string `json:"aadharDocument,omitempty"`
	AadharDocumentBack   string `json:"aadharDocumentBack,omitempty"`
	PanDocument          string `json:"panDocument,omitempty"`
	BankDocument         string `json:"bankDocument,omitempty"`
	ElectricBillDocument string `json:"electricBillDocument,omitempty"`
}

// fieldValue returns the form value for a known field name, used by the step
// gate to run validators generically.
func (f Form) fieldValue(field string) string {
	switch field {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldPhone:
		return f.Phone
	case FieldDateOfBirth:
		return f.DateOfBirth
	case FieldAddress:
		return f.Address
	case FieldEmergencyPhone:
		return f.EmergencyPhone
	case FieldLicenseNumber:
		return f.LicenseNumber
	case FieldLicenseExpiryDate:
		return f.LicenseExpiryDate
	case FieldAadharNumber:
		return f.AadharNumber
	case FieldPanNumber:
		return f.PanNumber
	case FieldExperience:
		return f.Experience
	case FieldBankName:
		return f.BankName
	case FieldAccountNumber:
		return f.AccountNumber
	case FieldIfscCode:
		return f.IfscCode
	case FieldAccountHolderName:
		return f.AccountHolderName
	case FieldAccountBranchName:
		return f.AccountBranchName
	}
	return ""
}
