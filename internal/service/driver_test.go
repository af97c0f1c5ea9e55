package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/registration"
	"car-rental-backend/internal/security"
	"car-rental-backend/internal/service"
	"car-rental-backend/internal/session"
)

const testJWTSecret = "0123456789abcdef0123456789abcdef"

func newDriverFixture() (*MockDriverRepo, session.Store, service.DriverService) {
	driverRepo := new(MockDriverRepo)
	sessions := session.NewMemoryStore()
	tokens := security.NewTokenManager(testJWTSecret, 60)
	svc := service.NewDriverService(driverRepo, tokens, sessions)
	return driverRepo, sessions, svc
}

func completeForm() registration.Form {
	return registration.Form{
		Name:              "Asha Kumar",
		Email:             "asha@example.com",
		Phone:             "9876543210",
		DateOfBirth:       "1995-06-15",
		Address:           "12 MG Road, Bangalore",
		LicenseNumber:     "KA0120230001234",
		LicenseExpiryDate: "2030-01-01",
		AadharNumber:      "123456789012",
		PanNumber:         "ABCDE1234F",
		Experience:        "5",
		BankName:          "State Bank",
		AccountNumber:     "123456789012",
		IfscCode:          "SBIN0001234",
		AccountHolderName: "Asha Kumar",
		AccountBranchName: "MG Road",
	}
}

func TestDriverService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		driverRepo, sessions, svc := newDriverFixture()
		driverRepo.On("GetByMobile", ctx, "9876543210").Return(nil, sql.ErrNoRows)
		driverRepo.On("Create", ctx, mock.AnythingOfType("*domain.Driver")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Driver).ID = 3
		}).Return(nil)

		driver, token, err := svc.Signup(ctx, "Asha", "9876543210", "asha@example.com", "secret123")
		require.NoError(t, err)
		assert.Equal(t, int64(3), driver.ID)
		assert.NotEmpty(t, token)
		assert.True(t, sessions.Active(token))

		sess := sessions.Session(token)
		id, ok := sess.Get(session.KeyDriverID)
		assert.True(t, ok)
		assert.Equal(t, "3", id)
	})

	t.Run("DuplicateMobile", func(t *testing.T) {
		driverRepo, _, svc := newDriverFixture()
		driverRepo.On("GetByMobile", ctx, "9876543210").Return(&domain.Driver{ID: 3}, nil)

		_, _, err := svc.Signup(ctx, "Asha", "9876543210", "", "secret123")
		assert.ErrorIs(t, err, service.ErrDriverExists)
	})

	t.Run("InvalidMobile", func(t *testing.T) {
		_, _, svc := newDriverFixture()
		_, _, err := svc.Signup(ctx, "Asha", "12345", "", "secret123")
		require.Error(t, err)

		var invalid *service.ValidationError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, registration.FieldPhone, invalid.Field)
		assert.Equal(t, "Invalid phone number", invalid.Message)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		_, _, svc := newDriverFixture()
		_, _, err := svc.Signup(ctx, "Asha", "9876543210", "not-an-email", "secret123")
		require.Error(t, err)

		var invalid *service.ValidationError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, registration.FieldEmail, invalid.Field)
	})
}

func TestDriverService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	driver := &domain.Driver{ID: 3, Mobile: "9876543210", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		driverRepo, sessions, svc := newDriverFixture()
		driverRepo.On("GetByMobile", ctx, "9876543210").Return(driver, nil)

		got, token, err := svc.Login(ctx, "9876543210", "secret123")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
		assert.True(t, sessions.Active(token))
	})

	t.Run("WrongPassword", func(t *testing.T) {
		driverRepo, _, svc := newDriverFixture()
		driverRepo.On("GetByMobile", ctx, "9876543210").Return(driver, nil)

		_, _, err := svc.Login(ctx, "9876543210", "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("UnknownMobile", func(t *testing.T) {
		driverRepo, _, svc := newDriverFixture()
		driverRepo.On("GetByMobile", ctx, "9999999999").Return(nil, sql.ErrNoRows)

		_, _, err := svc.Login(ctx, "9999999999", "secret123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestDriverService_Logout(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	driver := &domain.Driver{ID: 3, Mobile: "9876543210", PasswordHash: string(hash)}

	driverRepo, sessions, svc := newDriverFixture()
	driverRepo.On("GetByMobile", ctx, "9876543210").Return(driver, nil)

	_, token, err := svc.Login(ctx, "9876543210", "secret123")
	require.NoError(t, err)
	require.True(t, sessions.Active(token))

	require.NoError(t, svc.Logout(ctx, token))
	assert.False(t, sessions.Active(token))
}

func TestDriverService_SaveRegistrationStep(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidStepPersisted", func(t *testing.T) {
		driverRepo, _, svc := newDriverFixture()
		form := completeForm()
		driverRepo.On("SaveRegistration", ctx, int64(3), &form).Return(nil)

		res, err := svc.SaveRegistrationStep(ctx, 3, registration.StepPersonal, form)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		driverRepo.AssertCalled(t, "SaveRegistration", ctx, int64(3), &form)
	})

	t.Run("BlockedStepNotPersisted", func(t *testing.T) {
		driverRepo, _, svc := newDriverFixture()
		form := completeForm()
		form.Phone = "12345"

		res, err := svc.SaveRegistrationStep(ctx, 3, registration.StepPersonal, form)
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, "Invalid phone number", res.Errors[registration.FieldPhone])
		driverRepo.AssertNotCalled(t, "SaveRegistration", ctx, int64(3), mock.Anything)
	})
}

func TestDriverService_CompleteRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		driverRepo, _, svc := newDriverFixture()
		form := completeForm()
		driverRepo.On("GetRegistration", ctx, int64(3)).Return(&form, nil)
		driverRepo.On("MarkRegistrationCompleted", ctx, int64(3)).Return(nil)

		err := svc.CompleteRegistration(ctx, 3)
		assert.NoError(t, err)
	})

	t.Run("BlockedAtBankingStep", func(t *testing.T) {
		driverRepo, _, svc := newDriverFixture()
		form := completeForm()
		form.IfscCode = "bad"
		driverRepo.On("GetRegistration", ctx, int64(3)).Return(&form, nil)

		err := svc.CompleteRegistration(ctx, 3)
		require.Error(t, err)

		var blocked *service.RegistrationBlockedError
		require.ErrorAs(t, err, &blocked)
		assert.Equal(t, registration.StepBanking, blocked.Step)
		assert.Contains(t, blocked.Errors, registration.FieldIfscCode)
		driverRepo.AssertNotCalled(t, "MarkRegistrationCompleted", ctx, int64(3))
	})
}
