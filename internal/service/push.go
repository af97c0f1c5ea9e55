package service

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"car-rental-backend/internal/logger"
)

type pushService struct {
	client *messaging.Client
}

// NewPushService connects to Firebase Cloud Messaging using a service account
// credentials file.
func NewPushService(ctx context.Context, credentialsFile string) (PushService, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize messaging client: %w", err)
	}
	return &pushService{client: client}, nil
}

func (s *pushService) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	if len(tokens) == 0 {
		return nil
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	logger.ExternalServiceCall("fcm", "send_multicast", "tokens", len(tokens))
	resp, err := s.client.SendEachForMulticast(ctx, message)
	logger.ExternalServiceResult("fcm", "send_multicast", err)
	if err != nil {
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	if resp.FailureCount > 0 {
		logger.Warn("some push deliveries failed", "failures", resp.FailureCount, "successes", resp.SuccessCount)
	}
	return nil
}
