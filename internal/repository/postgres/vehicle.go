package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (name, brand, model, year, city, transmission, fuel_type, seating_capacity, price_per_day, security_deposit, car_full_photo, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, v.Name, v.Brand, v.Model, v.Year, v.City, v.Transmission, v.FuelType, v.SeatingCapacity, v.PricePerDay, v.SecurityDeposit, v.CarFullPhoto, v.Status, now, now).Scan(&v.ID)
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT id, name, brand, model, year, city, transmission, fuel_type, seating_capacity, price_per_day, security_deposit, car_full_photo, status, created_on, updated_on FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&v.ID, &v.Name, &v.Brand, &v.Model, &v.Year, &v.City, &v.Transmission, &v.FuelType, &v.SeatingCapacity, &v.PricePerDay, &v.SecurityDeposit, &v.CarFullPhoto, &v.Status, &v.CreatedOn, &v.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context, city, status string, limit int32) ([]domain.Vehicle, error) {
	query := `SELECT id, name, brand, model, year, city, transmission, fuel_type, seating_capacity, price_per_day, security_deposit, car_full_photo, status, created_on, updated_on FROM vehicles WHERE 1=1`
	args := []interface{}{}
	argIdx := 1
	if city != "" {
		query += fmt.Sprintf(" AND city = $%d", argIdx)
		args = append(args, city)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}
	query += " ORDER BY price_per_day ASC"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.Brand, &v.Model, &v.Year, &v.City, &v.Transmission, &v.FuelType, &v.SeatingCapacity, &v.PricePerDay, &v.SecurityDeposit, &v.CarFullPhoto, &v.Status, &v.CreatedOn, &v.UpdatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET status = $1, updated_on = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}
