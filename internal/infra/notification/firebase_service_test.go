package notification

import (
	"context"
	"testing"

	"carewatch/config"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*messaging.Message
	err  error
}

func (f *fakeSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)

	return "projects/test/messages/1", f.err
}

func TestFirebaseService_SendSingleNotification(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	err := svc.SendSingleNotification(context.Background(), "token-1", "Left home", "Kim left Home", map[string]string{"kind": "GEOFENCE_EXIT"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, "token-1", msg.Token)
	assert.Equal(t, "Left home", msg.Notification.Title)
	assert.Equal(t, "GEOFENCE_EXIT", msg.Data["kind"])
	assert.Equal(t, "high", msg.Android.Priority)
	assert.Equal(t, alertChannelID, msg.Android.Notification.ChannelID)
}

func TestFirebaseService_SendError(t *testing.T) {
	t.Parallel()

	svc := &firebaseService{client: &fakeSender{err: errors.New("unavailable")}}

	err := svc.SendSingleNotification(context.Background(), "token-1", "t", "b", nil)
	assert.ErrorContains(t, err, "failed to send notification")
}

func TestNewPushService_Disabled(t *testing.T) {
	t.Parallel()

	svc, err := NewPushService(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Nil(t, svc)
}
