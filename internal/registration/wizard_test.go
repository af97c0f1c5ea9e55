package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeForm() Form {
	return Form{
		Name:              "Ravi Kumar",
		Email:             "ravi@example.com",
		Phone:             "9876543210",
		DateOfBirth:       time.Now().AddDate(-30, 0, 0).Format("2006-01-02"),
		Address:           "12 MG Road, Bengaluru",
		LicenseNumber:     "DL1234567890123",
		LicenseExpiryDate: "2030-01-01",
		AadharNumber:      "123456789012",
		PanNumber:         "ABCDE1234F",
		Experience:        "3-5",
		BankName:          "State Bank",
		AccountNumber:     "000123456789",
		IfscCode:          "SBIN0001234",
		AccountHolderName: "Ravi Kumar",
		AccountBranchName: "MG Road",
	}
}

func TestCanAdvance_Step1(t *testing.T) {
	t.Run("All fields present", func(t *testing.T) {
		res := CanAdvance(StepPersonal, completeForm())
		assert.True(t, res.Allowed)
		assert.Empty(t, res.Errors)
	})

	t.Run("Missing fields reported together", func(t *testing.T) {
		res := CanAdvance(StepPersonal, Form{Name: "Ravi"})
		assert.False(t, res.Allowed)
		assert.Equal(t, "Email is required", res.Errors[FieldEmail])
		assert.Equal(t, "Phone is required", res.Errors[FieldPhone])
		assert.Equal(t, "Date of birth is required", res.Errors[FieldDateOfBirth])
		assert.Equal(t, "Address is required", res.Errors[FieldAddress])
		assert.NotContains(t, res.Errors, FieldName)
	})

	t.Run("Present but malformed phone blocks", func(t *testing.T) {
		form := completeForm()
		form.Phone = "12345"
		res := CanAdvance(StepPersonal, form)
		assert.False(t, res.Allowed)
		assert.Equal(t, "Invalid phone number", res.Errors[FieldPhone])
	})

	t.Run("Underage driver blocks", func(t *testing.T) {
		form := completeForm()
		form.DateOfBirth = time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
		res := CanAdvance(StepPersonal, form)
		assert.False(t, res.Allowed)
		assert.Equal(t, "Must be at least 18 years old", res.Errors[FieldDateOfBirth])
	})
}

func TestCanAdvance_Step2(t *testing.T) {
	form := completeForm()
	form.PanNumber = "NOTAPAN"
	res := CanAdvance(StepDocuments, form)
	assert.False(t, res.Allowed)
	assert.Equal(t, "Invalid PAN format", res.Errors[FieldPanNumber])

	form.PanNumber = ""
	res = CanAdvance(StepDocuments, form)
	assert.Equal(t, "PAN number is required", res.Errors[FieldPanNumber])
}

func TestCanAdvance_Step3(t *testing.T) {
	res := CanAdvance(StepProfessional, Form{})
	assert.False(t, res.Allowed)
	assert.Equal(t, "Experience is required", res.Errors[FieldExperience])

	assert.True(t, CanAdvance(StepProfessional, Form{Experience: "0-1"}).Allowed)
}

func TestCanAdvance_Step4(t *testing.T) {
	form := completeForm()
	form.IfscCode = "BADCODE"
	res := CanAdvance(StepBanking, form)
	assert.False(t, res.Allowed)
	assert.Equal(t, "Invalid IFSC code", res.Errors[FieldIfscCode])
}

func TestCanAdvance_ReviewAlwaysAllowed(t *testing.T) {
	res := CanAdvance(StepReview, Form{})
	assert.True(t, res.Allowed)
}

func TestWizard_Flow(t *testing.T) {
	w := NewWizard()
	assert.Equal(t, StepPersonal, w.Step())

	t.Run("Next blocked on empty form", func(t *testing.T) {
		res := w.Next()
		assert.False(t, res.Allowed)
		assert.Equal(t, StepPersonal, w.Step())
	})

	t.Run("Next walks to review with complete form", func(t *testing.T) {
		w.SetForm(completeForm())
		for _, want := range []int{StepDocuments, StepProfessional, StepBanking, StepReview} {
			res := w.Next()
			require.True(t, res.Allowed)
			assert.Equal(t, want, w.Step())
		}
	})

	t.Run("Next at review does not overrun", func(t *testing.T) {
		res := w.Next()
		assert.True(t, res.Allowed)
		assert.Equal(t, StepReview, w.Step())
	})

	t.Run("Previous retreats and clamps at one", func(t *testing.T) {
		for i := 0; i < 10; i++ {
			w.Previous()
		}
		assert.Equal(t, StepPersonal, w.Step())
	})
}

func TestWizard_Submit(t *testing.T) {
	w := NewWizard()
	w.SetForm(completeForm())

	_, err := w.Submit()
	assert.ErrorIs(t, err, ErrNotAtReviewStep)

	for w.Step() < StepReview {
		require.True(t, w.Next().Allowed)
	}

	form, err := w.Submit()
	require.NoError(t, err)
	assert.Equal(t, completeForm(), form)
}
