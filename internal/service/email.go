package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, toEmail, toName string, b *domain.Booking) error {
	subject := fmt.Sprintf("Booking confirmed: %s to %s", b.TripStartDate, b.TripEndDate)
	plain := fmt.Sprintf(
		"Hello %s,\n\nYour booking is confirmed.\n\nBooking reference: %s\nTrip: %s to %s (%d day(s))\nPickup: %s\n\nRental: ₹%d\nSecurity deposit: ₹%d\nDelivery charges: ₹%d\nTaxes: ₹%d\nDiscount: ₹%d\nTotal payable: ₹%d\n\nHave a great trip!",
		toName, b.Reference, b.TripStartDate, b.TripEndDate, b.NumberOfDays, b.PickupLocation,
		b.TotalAmount, b.SecurityDeposit, b.DeliveryCharge, b.TaxAmount, b.Discount, b.FinalAmount)
	return s.send(toEmail, toName, subject, plain)
}

func (s *emailService) SendTripReminder(ctx context.Context, toEmail, toName string, b *domain.Booking) error {
	subject := "Your trip starts tomorrow"
	plain := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder that your trip starts on %s.\n\nBooking reference: %s\nPickup: %s\n\nSee you soon!",
		toName, b.TripStartDate, b.Reference, b.PickupLocation)
	return s.send(toEmail, toName, subject, plain)
}

func (s *emailService) send(toEmail, toName, subject, plain string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, "")

	logger.ExternalServiceCall("sendgrid", "send", "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
