// Package notification contains the guardian channel senders: FCM push, SMS and email gateways.
package notification

import (
	"context"
	"fmt"

	"carewatch/config"
	"carewatch/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// alertChannelID is the Android notification channel the guardian app registers for safety alerts.
const alertChannelID = "carewatch_alerts"

type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client messageSender
}

// NewPushService builds the FCM sender. It returns nil when Firebase is not configured,
// which disables the push channel.
func NewPushService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		return nil, nil
	}

	return NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, projectID, credentialsPath string) (service.NotificationService, error) {
	var appConfig *firebase.Config
	if projectID != "" {
		appConfig = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// SendSingleNotification sends a high-priority alert to one guardian device.
func (s *firebaseService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	if _, err := s.client.Send(ctx, alertMessage(token, title, body, data)); err != nil {
		if messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err) {
			return fmt.Errorf("device token rejected: %w", err)
		}

		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

func alertMessage(token, title, body string, data map[string]string) *messaging.Message {
	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: alertChannelID,
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{"apns-priority": "10"},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}
}
