package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

const bookingColumns = `id, reference, vehicle_id, driver_id, driver_mobile, city, pickup_location, dropoff_location, trip_start_date, trip_end_date, number_of_days, total_amount, security_deposit, delivery_charge, tax_amount, discount, final_amount, coupon_code, payment_method, payment_status, status, created_on, updated_on`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (reference, vehicle_id, driver_id, driver_mobile, city, pickup_location, dropoff_location, trip_start_date, trip_end_date, number_of_days, total_amount, security_deposit, delivery_charge, tax_amount, discount, final_amount, coupon_code, payment_method, payment_status, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		b.Reference, b.VehicleID, b.DriverID, b.DriverMobile, b.City, b.PickupLocation, b.DropoffLocation,
		b.TripStartDate, b.TripEndDate, b.NumberOfDays, b.TotalAmount, b.SecurityDeposit, b.DeliveryCharge,
		b.TaxAmount, b.Discount, b.FinalAmount, b.CouponCode, b.PaymentMethod, b.PaymentStatus, b.Status,
		now, now,
	).Scan(&b.ID)
}

func (r *bookingRepository) scanBooking(row interface{ Scan(...interface{}) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.Reference, &b.VehicleID, &b.DriverID, &b.DriverMobile, &b.City, &b.PickupLocation,
		&b.DropoffLocation, &b.TripStartDate, &b.TripEndDate, &b.NumberOfDays, &b.TotalAmount, &b.SecurityDeposit,
		&b.DeliveryCharge, &b.TaxAmount, &b.Discount, &b.FinalAmount, &b.CouponCode, &b.PaymentMethod,
		&b.PaymentStatus, &b.Status, &b.CreatedOn, &b.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	return r.scanBooking(r.db.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1`
	return r.scanBooking(r.db.QueryRowContext(ctx, query, reference))
}

func (r *bookingRepository) ListByMobile(ctx context.Context, mobile string, statuses []string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE driver_mobile = $1`
	args := []interface{}{mobile}
	if len(statuses) > 0 {
		query += ` AND status = ANY($2)`
		args = append(args, pq.Array(statuses))
	}
	query += ` ORDER BY created_on DESC`
	return r.listBookings(ctx, query, args...)
}

func (r *bookingRepository) ListEndedBefore(ctx context.Context, date string, statuses []string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE trip_end_date < $1 AND status = ANY($2)`
	return r.listBookings(ctx, query, date, pq.Array(statuses))
}

func (r *bookingRepository) ListStartingOn(ctx context.Context, date string) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE trip_start_date = $1 AND status = $2`
	return r.listBookings(ctx, query, date, domain.BookingStatusConfirmed)
}

func (r *bookingRepository) listBookings(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := r.scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1, updated_on = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	return err
}
