package service

import (
	"context"

	"github.com/google/uuid"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/quote"
	"car-rental-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	vehicleRepo repository.VehicleRepository
	driverRepo  repository.DriverRepository
	notifier    NotificationService
	taxRate     float64
	deliveryFee int64
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	vehicleRepo repository.VehicleRepository,
	driverRepo repository.DriverRepository,
	notifier NotificationService,
	taxRate float64,
	deliveryFee int64,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		vehicleRepo: vehicleRepo,
		driverRepo:  driverRepo,
		notifier:    notifier,
		taxRate:     taxRate,
		deliveryFee: deliveryFee,
	}
}

// quoteFor prices the request against the vehicle's current rates. Coupons
// apply to the rental subtotal only, never the deposit or fees.
func (s *bookingService) quoteFor(ctx context.Context, req QuoteRequest) (*domain.Vehicle, quote.Quote, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, req.VehicleID)
	if err != nil {
		return nil, quote.Quote{}, err
	}

	dates, err := quote.ParseDateRange(req.TripStartDate, req.TripEndDate)
	if err != nil {
		return nil, quote.Quote{}, err
	}

	in := quote.Input{
		RatePerDay:       vehicle.PricePerDay,
		Dates:            dates,
		SecurityDeposit:  vehicle.SecurityDeposit,
		DeliveryRequired: req.DeliveryRequired,
		DeliveryFee:      s.deliveryFee,
		TaxRate:          s.taxRate,
	}

	if req.CouponCode != "" {
		subtotal := vehicle.PricePerDay * dates.Days()
		discount, err := quote.ApplyCoupon(req.CouponCode, subtotal)
		if err != nil {
			return nil, quote.Quote{}, err
		}
		in.Discount = discount
	}

	q, err := quote.Compute(in)
	if err != nil {
		return nil, quote.Quote{}, err
	}
	return vehicle, q, nil
}

func (s *bookingService) GetQuote(ctx context.Context, req QuoteRequest) (*quote.Quote, error) {
	_, q, err := s.quoteFor(ctx, req)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CreateBooking prices the trip server-side and persists the breakdown as an
// immutable snapshot. The client's displayed total, when sent, must match the
// recomputed one; a mismatch means the vehicle was repriced mid-checkout.
func (s *bookingService) CreateBooking(ctx context.Context, driverID int64, req BookingRequest) (*domain.Booking, error) {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}

	vehicle, q, err := s.quoteFor(ctx, req.QuoteRequest)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != domain.VehicleStatusActive {
		return nil, ErrVehicleUnavailable
	}
	if req.ExpectedFinalAmount != 0 && req.ExpectedFinalAmount != q.FinalAmount {
		return nil, ErrStaleQuote
	}

	endDate := req.TripEndDate
	if endDate == "" {
		endDate = req.TripStartDate
	}

	booking := &domain.Booking{
		Reference:       uuid.NewString(),
		VehicleID:       vehicle.ID,
		DriverID:        driver.ID,
		DriverMobile:    driver.Mobile,
		City:            vehicle.City,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		TripStartDate:   req.TripStartDate,
		TripEndDate:     endDate,
		NumberOfDays:    q.NumberOfDays,
		TotalAmount:     q.TotalAmount,
		SecurityDeposit: q.SecurityDeposit,
		DeliveryCharge:  q.DeliveryCharge,
		TaxAmount:       q.TaxAmount,
		Discount:        q.Discount,
		FinalAmount:     q.FinalAmount,
		CouponCode:      req.CouponCode,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		Status:          domain.BookingStatusConfirmed,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "booking created",
		"reference", booking.Reference,
		"vehicle_id", booking.VehicleID,
		"driver_id", booking.DriverID,
		"final_amount", booking.FinalAmount)

	if s.notifier != nil {
		if err := s.notifier.SendBookingConfirmation(ctx, booking); err != nil {
			logger.Warn("booking confirmation notification failed", "reference", booking.Reference, "error", err)
		}
	}

	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, reference string) (*domain.Booking, error) {
	return s.bookingRepo.GetByReference(ctx, reference)
}

func (s *bookingService) ListBookings(ctx context.Context, mobile string, statuses []string) ([]domain.Booking, error) {
	return s.bookingRepo.ListByMobile(ctx, mobile, statuses)
}

// CancelBooking cancels a trip that has not started. Only the driver who made
// the booking may cancel it.
func (s *bookingService) CancelBooking(ctx context.Context, driverID int64, reference string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if booking.DriverID != driverID {
		return nil, ErrNotBookingOwner
	}
	switch booking.Status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed:
	default:
		return nil, ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingStatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = domain.BookingStatusCancelled

	logger.InfoContext(ctx, "booking cancelled", "reference", booking.Reference, "driver_id", driverID)
	return booking, nil
}
