package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/registration"
)

// MockVehicleRepo
type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) Create(ctx context.Context, v *domain.Vehicle) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockVehicleRepo) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) List(ctx context.Context, city, status string, limit int32) ([]domain.Vehicle, error) {
	args := m.Called(ctx, city, status, limit)
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}
func (m *MockVehicleRepo) UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByMobile(ctx context.Context, mobile string, statuses []string) ([]domain.Booking, error) {
	args := m.Called(ctx, mobile, statuses)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}
func (m *MockBookingRepo) ListEndedBefore(ctx context.Context, date string, statuses []string) ([]domain.Booking, error) {
	args := m.Called(ctx, date, statuses)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListStartingOn(ctx context.Context, date string) ([]domain.Booking, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockDriverRepo
type MockDriverRepo struct {
	mock.Mock
}

func (m *MockDriverRepo) Create(ctx context.Context, d *domain.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepo) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}
func (m *MockDriverRepo) GetByMobile(ctx context.Context, mobile string) (*domain.Driver, error) {
	args := m.Called(ctx, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}
func (m *MockDriverRepo) SaveRegistration(ctx context.Context, driverID int64, form *registration.Form) error {
	args := m.Called(ctx, driverID, form)
	return args.Error(0)
}
func (m *MockDriverRepo) GetRegistration(ctx context.Context, driverID int64) (*registration.Form, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registration.Form), args.Error(1)
}
func (m *MockDriverRepo) MarkRegistrationCompleted(ctx context.Context, driverID int64) error {
	args := m.Called(ctx, driverID)
	return args.Error(0)
}

// MockDeviceTokenRepo
type MockDeviceTokenRepo struct {
	mock.Mock
}

func (m *MockDeviceTokenRepo) Save(ctx context.Context, t *domain.DeviceToken) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}
func (m *MockDeviceTokenRepo) ListByDriver(ctx context.Context, driverID int64) ([]domain.DeviceToken, error) {
	args := m.Called(ctx, driverID)
	return args.Get(0).([]domain.DeviceToken), args.Error(1)
}

// MockNotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) RegisterDevice(ctx context.Context, driverID int64, token, platform string) error {
	args := m.Called(ctx, driverID, token, platform)
	return args.Error(0)
}
func (m *MockNotificationService) SendBookingConfirmation(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockNotificationService) SendTripReminder(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, toEmail, toName string, b *domain.Booking) error {
	args := m.Called(ctx, toEmail, toName, b)
	return args.Error(0)
}
func (m *MockEmailService) SendTripReminder(ctx context.Context, toEmail, toName string, b *domain.Booking) error {
	args := m.Called(ctx, toEmail, toName, b)
	return args.Error(0)
}

// MockPushService
type MockPushService struct {
	mock.Mock
}

func (m *MockPushService) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	args := m.Called(ctx, tokens, title, body, data)
	return args.Error(0)
}
