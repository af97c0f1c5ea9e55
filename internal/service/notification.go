package service

import (
	"context"
	"fmt"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

type notificationService struct {
	tokenRepo  repository.DeviceTokenRepository
	driverRepo repository.DriverRepository
	email      EmailService
	push       PushService
}

// NewNotificationService wires delivery channels. Either channel may be nil;
// a nil channel is simply skipped.
func NewNotificationService(
	tokenRepo repository.DeviceTokenRepository,
	driverRepo repository.DriverRepository,
	email EmailService,
	push PushService,
) NotificationService {
	return &notificationService{
		tokenRepo:  tokenRepo,
		driverRepo: driverRepo,
		email:      email,
		push:       push,
	}
}

func (s *notificationService) RegisterDevice(ctx context.Context, driverID int64, token, platform string) error {
	return s.tokenRepo.Save(ctx, &domain.DeviceToken{
		DriverID: driverID,
		Token:    token,
		Platform: platform,
	})
}

func (s *notificationService) SendBookingConfirmation(ctx context.Context, b *domain.Booking) error {
	driver, err := s.driverRepo.GetByID(ctx, b.DriverID)
	if err != nil {
		return err
	}

	if s.email != nil && driver.Email != "" {
		if err := s.email.SendBookingConfirmation(ctx, driver.Email, driver.Username, b); err != nil {
			logger.Warn("booking confirmation email failed", "reference", b.Reference, "error", err)
		}
	}

	title := "Booking confirmed"
	body := fmt.Sprintf("Your booking from %s to %s is confirmed. Amount payable: ₹%d.", b.TripStartDate, b.TripEndDate, b.FinalAmount)
	return s.pushToDriver(ctx, b, title, body)
}

func (s *notificationService) SendTripReminder(ctx context.Context, b *domain.Booking) error {
	driver, err := s.driverRepo.GetByID(ctx, b.DriverID)
	if err != nil {
		return err
	}

	if s.email != nil && driver.Email != "" {
		if err := s.email.SendTripReminder(ctx, driver.Email, driver.Username, b); err != nil {
			logger.Warn("trip reminder email failed", "reference", b.Reference, "error", err)
		}
	}

	title := "Your trip starts tomorrow"
	body := fmt.Sprintf("Pickup at %s on %s.", b.PickupLocation, b.TripStartDate)
	return s.pushToDriver(ctx, b, title, body)
}

func (s *notificationService) pushToDriver(ctx context.Context, b *domain.Booking, title, body string) error {
	if s.push == nil {
		return nil
	}
	deviceTokens, err := s.tokenRepo.ListByDriver(ctx, b.DriverID)
	if err != nil {
		return err
	}
	if len(deviceTokens) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(deviceTokens))
	for _, t := range deviceTokens {
		tokens = append(tokens, t.Token)
	}
	return s.push.Send(ctx, tokens, title, body, map[string]string{
		"type":      "BOOKING",
		"reference": b.Reference,
	})
}
