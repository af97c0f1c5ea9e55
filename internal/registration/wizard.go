package registration

import (
	"errors"
	"strings"
)

// Wizard step numbers. The wizard is strictly linear: no skipping.
const (
	StepPersonal     = 1
	StepDocuments    = 2
	StepProfessional = 3
	StepBanking      = 4
	StepReview       = 5
)

// ErrNotAtReviewStep is returned when Submit is called before the review step.
var ErrNotAtReviewStep = errors.New("submission is only available at the review step")

// requiredField pairs a field name with the message shown when it is missing.
type requiredField struct {
	name    string
	missing string
}

// stepRequirements lists the required fields per step. The review step has no
// new fields and is always allowed to submit.
var stepRequirements = map[int][]requiredField{
	StepPersonal: {
		{FieldName, "Name is required"},
		{FieldEmail, "Email is required"},
		{FieldPhone, "Phone is required"},
		{FieldDateOfBirth, "Date of birth is required"},
		{FieldAddress, "Address is required"},
	},
	StepDocuments: {
		{FieldLicenseNumber, "License number is required"},
		{FieldLicenseExpiryDate, "License expiry date is required"},
		{FieldAadharNumber, "Aadhar number is required"},
		{FieldPanNumber, "PAN number is required"},
	},
	StepProfessional: {
		{FieldExperience, "Experience is required"},
	},
	StepBanking: {
		{FieldBankName, "Bank name is required"},
		{FieldAccountNumber, "Account number is required"},
		{FieldIfscCode, "IFSC code is required"},
		{FieldAccountHolderName, "Account holder name is required"},
		{FieldAccountBranchName, "Branch name is required"},
	},
}

// StepResult is the gate's verdict for one step: either advancement is
// allowed, or every offending field is reported together.
type StepResult struct {
	Allowed bool              `json:"allowed"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// CanAdvance decides whether the wizard may move past the given step. A step
// is blocked if any of its required fields is empty or fails its field
// validator; all field errors are surfaced at once.
func CanAdvance(step int, form Form) StepResult {
	errs := make(map[string]string)
	for _, req := range stepRequirements[step] {
		value := form.fieldValue(req.name)
		if strings.TrimSpace(value) == "" {
			errs[req.name] = req.missing
			continue
		}
		if res := ValidateField(req.name, value); !res.Valid {
			errs[req.name] = res.Message
		}
	}
	if len(errs) > 0 {
		return StepResult{Allowed: false, Errors: errs}
	}
	return StepResult{Allowed: true}
}

// Wizard is the five-step registration state machine. Next advances only when
// the current step's gate passes; Previous always retreats, clamped at the
// first step.
type Wizard struct {
	step int
	form Form
}

func NewWizard() *Wizard {
	return &Wizard{step: StepPersonal}
}

func (w *Wizard) Step() int {
	return w.step
}

func (w *Wizard) Form() Form {
	return w.form
}

// SetForm replaces the working form state. The UI mutates fields
// incrementally; the wizard only ever sees the whole snapshot.
func (w *Wizard) SetForm(form Form) {
	w.form = form
}

// Next runs the current step's gate and advances iff it passes.
func (w *Wizard) Next() StepResult {
	res := CanAdvance(w.step, w.form)
	if res.Allowed && w.step < StepReview {
		w.step++
	}
	return res
}

// Previous retreats one step unconditionally, never below the first step.
func (w *Wizard) Previous() int {
	if w.step > StepPersonal {
		w.step--
	}
	return w.step
}

// Submit hands back the full form for persistence. It is the terminal action
// and only available at the review step.
func (w *Wizard) Submit() (Form, error) {
	if w.step != StepReview {
		return Form{}, ErrNotAtReviewStep
	}
	return w.form, nil
}
