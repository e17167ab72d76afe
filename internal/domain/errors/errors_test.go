package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	t.Parallel()

	detailed := ErrInvalidGeofence.WithDetails("radius must be positive")

	assert.True(t, stderrors.Is(detailed, ErrInvalidGeofence))
	assert.False(t, stderrors.Is(detailed, ErrValidationFailed))
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
	assert.Equal(t, "radius must be positive", detailed.Details())
	assert.Contains(t, detailed.Error(), "radius must be positive")
}

func TestBaseError_WrapMessagePreservesAppError(t *testing.T) {
	t.Parallel()

	wrapped := ErrStateConflict.WrapMessage("active wandering detection exists")

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, "STATE_CONFLICT", appErr.ErrorCode())
	assert.True(t, stderrors.Is(wrapped, ErrStateConflict))
}

func TestChannelDeliveryError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := pkgerrors.New("gateway returned 503")
	err := NewChannelDeliveryError("SMS", "g-1", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "SMS delivery to guardian g-1 failed: gateway returned 503", err.Error())
}
