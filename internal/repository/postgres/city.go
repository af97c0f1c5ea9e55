package postgres

import (
	"context"
	"database/sql"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type cityRepository struct {
	db *sql.DB
}

func NewCityRepository(db *sql.DB) repository.CityRepository {
	return &cityRepository{db: db}
}

func (r *cityRepository) List(ctx context.Context, activeOnly bool) ([]domain.City, error) {
	query := `SELECT id, name, state, is_active, latitude, longitude FROM cities`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cities []domain.City
	for rows.Next() {
		var c domain.City
		if err := rows.Scan(&c.ID, &c.Name, &c.State, &c.IsActive, &c.Latitude, &c.Longitude); err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, rows.Err()
}
