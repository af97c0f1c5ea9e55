package service

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/registration"
	"car-rental-backend/internal/repository"
	"car-rental-backend/internal/security"
	"car-rental-backend/internal/session"
)

type driverService struct {
	driverRepo repository.DriverRepository
	tokens     security.TokenManager
	sessions   session.Store
}

func NewDriverService(driverRepo repository.DriverRepository, tokens security.TokenManager, sessions session.Store) DriverService {
	return &driverService{
		driverRepo: driverRepo,
		tokens:     tokens,
		sessions:   sessions,
	}
}

func (s *driverService) Signup(ctx context.Context, username, mobile, email, password string) (*domain.Driver, string, error) {
	if res := registration.ValidateField(registration.FieldPhone, mobile); !res.Valid {
		return nil, "", &ValidationError{Field: registration.FieldPhone, Message: res.Message}
	}
	if email != "" {
		if res := registration.ValidateField(registration.FieldEmail, email); !res.Valid {
			return nil, "", &ValidationError{Field: registration.FieldEmail, Message: res.Message}
		}
	}

	if existing, err := s.driverRepo.GetByMobile(ctx, mobile); err == nil && existing != nil {
		return nil, "", ErrDriverExists
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	driver := &domain.Driver{
		Username:     username,
		Mobile:       mobile,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, "", err
	}

	token, err := s.issueSession(driver)
	if err != nil {
		return nil, "", err
	}

	logger.InfoContext(ctx, "driver signed up", "driver_id", driver.ID)
	return driver, token, nil
}

func (s *driverService) Login(ctx context.Context, mobile, password string) (*domain.Driver, string, error) {
	driver, err := s.driverRepo.GetByMobile(ctx, mobile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(driver.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueSession(driver)
	if err != nil {
		return nil, "", err
	}

	logger.InfoContext(ctx, "driver logged in", "driver_id", driver.ID)
	return driver, token, nil
}

// issueSession mints a JWT and registers a server-side session for it so
// Logout can revoke the token before it expires.
func (s *driverService) issueSession(driver *domain.Driver) (string, error) {
	token, err := s.tokens.Generate(driver.ID, driver.Mobile)
	if err != nil {
		return "", err
	}
	sess := s.sessions.Session(token)
	sess.Set(session.KeyToken, token)
	sess.Set(session.KeyIsLoggedIn, "true")
	sess.Set(session.KeyDriverID, strconv.FormatInt(driver.ID, 10))
	sess.Set(session.KeyUserMobile, driver.Mobile)
	return token, nil
}

func (s *driverService) Logout(ctx context.Context, token string) error {
	s.sessions.Revoke(token)
	return nil
}

func (s *driverService) GetProfile(ctx context.Context, driverID int64) (*domain.Driver, *registration.Form, error) {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, nil, err
	}
	form, err := s.driverRepo.GetRegistration(ctx, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return driver, nil, nil
		}
		return nil, nil, err
	}
	return driver, form, nil
}

// SaveRegistrationStep runs the step's admission gate and persists the form
// snapshot only when the gate passes. The review step has no gate of its own.
func (s *driverService) SaveRegistrationStep(ctx context.Context, driverID int64, step int, form registration.Form) (registration.StepResult, error) {
	res := registration.CanAdvance(step, form)
	if !res.Allowed {
		return res, nil
	}
	if err := s.driverRepo.SaveRegistration(ctx, driverID, &form); err != nil {
		return registration.StepResult{}, err
	}
	return res, nil
}

// CompleteRegistration re-runs every step gate over the stored form before
// marking the account registered. Client-side gating is advisory only.
func (s *driverService) CompleteRegistration(ctx context.Context, driverID int64) error {
	form, err := s.driverRepo.GetRegistration(ctx, driverID)
	if err != nil {
		return err
	}

	for step := registration.StepPersonal; step < registration.StepReview; step++ {
		if res := registration.CanAdvance(step, *form); !res.Allowed {
			return &RegistrationBlockedError{Step: step, Errors: res.Errors}
		}
	}

	if err := s.driverRepo.MarkRegistrationCompleted(ctx, driverID); err != nil {
		return err
	}

	logger.InfoContext(ctx, "driver registration completed", "driver_id", driverID)
	return nil
}
