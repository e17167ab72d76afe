package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}

// SMSService sends text messages through an SMS gateway
type SMSService interface {
	// SendSMS delivers a text message to a phone number
	SendSMS(ctx context.Context, phone, message string) error
}

// EmailService sends plain-text email through a mail gateway
type EmailService interface {
	// SendEmail delivers a message to an email address
	SendEmail(ctx context.Context, to, subject, body string) error
}
