package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository/postgres"
)

var vehicleColumns = []string{"id", "name", "brand", "model", "year", "city", "transmission", "fuel_type", "seating_capacity", "price_per_day", "security_deposit", "car_full_photo", "status", "created_on", "updated_on"}

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		v := &domain.Vehicle{
			Name:            "Swift Dzire",
			Brand:           "Maruti",
			Model:           "Dzire VXI",
			Year:            2023,
			City:            "Bangalore",
			Transmission:    "manual",
			FuelType:        "petrol",
			SeatingCapacity: 5,
			PricePerDay:     1500,
			SecurityDeposit: 3000,
			Status:          domain.VehicleStatusActive,
		}

		mock.ExpectQuery("INSERT INTO vehicles").
			WithArgs(v.Name, v.Brand, v.Model, v.Year, v.City, v.Transmission, v.FuelType, v.SeatingCapacity, v.PricePerDay, v.SecurityDeposit, v.CarFullPhoto, v.Status, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		err := repo.Create(ctx, v)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), v.ID)
	})
}

func TestVehicleRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(vehicleColumns).
			AddRow(7, "Swift Dzire", "Maruti", "Dzire VXI", 2023, "Bangalore", "manual", "petrol", 5, 1500, 3000, "", "active", "2026-01-01", "2026-01-01")

		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		v, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, "Swift Dzire", v.Name)
		assert.Equal(t, int64(1500), v.PricePerDay)
		assert.Equal(t, domain.VehicleStatusActive, v.Status)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE id").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(vehicleColumns))

		_, err := repo.GetByID(ctx, 99)
		assert.Error(t, err)
	})
}

func TestVehicleRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("FilterByCityAndStatus", func(t *testing.T) {
		rows := sqlmock.NewRows(vehicleColumns).
			AddRow(1, "Swift Dzire", "Maruti", "Dzire VXI", 2023, "Bangalore", "manual", "petrol", 5, 1500, 3000, "", "active", "2026-01-01", "2026-01-01").
			AddRow(2, "City", "Honda", "City ZX", 2024, "Bangalore", "automatic", "petrol", 5, 2200, 5000, "", "active", "2026-01-01", "2026-01-01")

		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE 1=1 AND city").
			WithArgs("Bangalore", "active").
			WillReturnRows(rows)

		vehicles, err := repo.List(ctx, "Bangalore", "active", 0)
		assert.NoError(t, err)
		assert.Len(t, vehicles, 2)
		assert.Equal(t, "Honda", vehicles[1].Brand)
	})

	t.Run("NoFilters", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles WHERE 1=1").
			WillReturnRows(sqlmock.NewRows(vehicleColumns))

		vehicles, err := repo.List(ctx, "", "", 0)
		assert.NoError(t, err)
		assert.Empty(t, vehicles)
	})
}

func TestVehicleRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(domain.VehicleStatusMaintenance, sqlmock.AnyArg(), int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 7, domain.VehicleStatusMaintenance)
		assert.NoError(t, err)
	})
}
