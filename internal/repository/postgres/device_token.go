package postgres

import (
	"context"
	"database/sql"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type deviceTokenRepository struct {
	db *sql.DB
}

func NewDeviceTokenRepository(db *sql.DB) repository.DeviceTokenRepository {
	return &deviceTokenRepository{db: db}
}

// Save upserts on the token value so a device re-registering after an app
// reinstall moves to its new owner instead of duplicating.
func (r *deviceTokenRepository) Save(ctx context.Context, t *domain.DeviceToken) error {
	query := `INSERT INTO device_tokens (driver_id, token, platform, created_on)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (token) DO UPDATE SET driver_id = EXCLUDED.driver_id, platform = EXCLUDED.platform
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.DriverID, t.Token, t.Platform, time.Now()).Scan(&t.ID)
}

func (r *deviceTokenRepository) ListByDriver(ctx context.Context, driverID int64) ([]domain.DeviceToken, error) {
	query := `SELECT id, driver_id, token, platform, created_on FROM device_tokens WHERE driver_id = $1`
	rows, err := r.db.QueryContext(ctx, query, driverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []domain.DeviceToken
	for rows.Next() {
		var t domain.DeviceToken
		if err := rows.Scan(&t.ID, &t.DriverID, &t.Token, &t.Platform, &t.CreatedOn); err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, rows.Err()
}
