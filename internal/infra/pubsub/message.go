package pubsub

import (
	"carewatch/internal/domain/service"
)

// PushMessage is the envelope Pub/Sub push subscriptions POST to HTTP endpoints.
// The local publisher produces the same shape so the worker handles both alike.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// eventAttributes are the message attributes used for subscription filtering and tracing.
func eventAttributes(event *service.SafetyEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.Type,
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
