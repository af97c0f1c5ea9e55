package repository

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/registration"
)

type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, city, status string, limit int32) ([]domain.Vehicle, error)
	UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByReference(ctx context.Context, reference string) (*domain.Booking, error)
	ListByMobile(ctx context.Context, mobile string, statuses []string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	ListEndedBefore(ctx context.Context, date string, statuses []string) ([]domain.Booking, error)
	ListStartingOn(ctx context.Context, date string) ([]domain.Booking, error)
}

type DriverRepository interface {
	Create(ctx context.Context, d *domain.Driver) error
	GetByID(ctx context.Context, id int64) (*domain.Driver, error)
	GetByMobile(ctx context.Context, mobile string) (*domain.Driver, error)
	SaveRegistration(ctx context.Context, driverID int64, form *registration.Form) error
	GetRegistration(ctx context.Context, driverID int64) (*registration.Form, error)
	MarkRegistrationCompleted(ctx context.Context, driverID int64) error
}

type CityRepository interface {
	List(ctx context.Context, activeOnly bool) ([]domain.City, error)
}

type DeviceTokenRepository interface {
	Save(ctx context.Context, t *domain.DeviceToken) error
	ListByDriver(ctx context.Context, driverID int64) ([]domain.DeviceToken, error)
}
