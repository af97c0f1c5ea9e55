package postgres

import (
	"database/sql"

	"car-rental-backend/internal/repository"
)

// Store bundles all repository implementations over a single connection pool.
type Store struct {
	VehicleRepository     repository.VehicleRepository
	BookingRepository     repository.BookingRepository
	DriverRepository      repository.DriverRepository
	CityRepository        repository.CityRepository
	DeviceTokenRepository repository.DeviceTokenRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		VehicleRepository:     NewVehicleRepository(db),
		BookingRepository:     NewBookingRepository(db),
		DriverRepository:      NewDriverRepository(db),
		CityRepository:        NewCityRepository(db),
		DeviceTokenRepository: NewDeviceTokenRepository(db),
	}
}
