package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/registration"
	"car-rental-backend/internal/repository"
)

type driverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, d *domain.Driver) error {
	query := `INSERT INTO drivers (username, mobile, email, password_hash, registration_completed, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, d.Username, d.Mobile, d.Email, d.PasswordHash, d.RegistrationCompleted, now, now).Scan(&d.ID)
}

func (r *driverRepository) GetByID(ctx context.Context, id int64) (*domain.Driver, error) {
	query := `SELECT id, username, mobile, email, password_hash, registration_completed, created_on, updated_on FROM drivers WHERE id = $1`
	return r.scanDriver(r.db.QueryRowContext(ctx, query, id))
}

func (r *driverRepository) GetByMobile(ctx context.Context, mobile string) (*domain.Driver, error) {
	query := `SELECT id, username, mobile, email, password_hash, registration_completed, created_on, updated_on FROM drivers WHERE mobile = $1`
	return r.scanDriver(r.db.QueryRowContext(ctx, query, mobile))
}

func (r *driverRepository) scanDriver(row *sql.Row) (*domain.Driver, error) {
	d := &domain.Driver{}
	err := row.Scan(&d.ID, &d.Username, &d.Mobile, &d.Email, &d.PasswordHash, &d.RegistrationCompleted, &d.CreatedOn, &d.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// SaveRegistration upserts the wizard form as a single jsonb document. The
// form schema is owned by the registration package; the database does not
// need per-field columns to answer any query the application makes.
func (r *driverRepository) SaveRegistration(ctx context.Context, driverID int64, form *registration.Form) error {
	data, err := json.Marshal(form)
	if err != nil {
		return err
	}
	query := `INSERT INTO driver_registrations (driver_id, form, created_on, updated_on)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (driver_id) DO UPDATE SET form = EXCLUDED.form, updated_on = EXCLUDED.updated_on`
	now := time.Now()
	_, err = r.db.ExecContext(ctx, query, driverID, data, now, now)
	return err
}

func (r *driverRepository) GetRegistration(ctx context.Context, driverID int64) (*registration.Form, error) {
	query := `SELECT form FROM driver_registrations WHERE driver_id = $1`
	var data []byte
	if err := r.db.QueryRowContext(ctx, query, driverID).Scan(&data); err != nil {
		return nil, err
	}
	form := &registration.Form{}
	if err := json.Unmarshal(data, form); err != nil {
		return nil, err
	}
	return form, nil
}

func (r *driverRepository) MarkRegistrationCompleted(ctx context.Context, driverID int64) error {
	query := `UPDATE drivers SET registration_completed = TRUE, updated_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), driverID)
	return err
}
