package identity

import (
	"testing"

	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func toolkitError(httpCode int, message string) error {
	return &googleapi.Error{
		Code:    httpCode,
		Message: message,
	}
}

func TestMapVerifyPasswordError_KnownCodes(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected error
	}{
		{"email not found", "EMAIL_NOT_FOUND", service.ErrAccountNotFound},
		{"invalid password", "INVALID_PASSWORD", service.ErrInvalidPassword},
		{"newer credential code", "INVALID_LOGIN_CREDENTIALS", service.ErrInvalidPassword},
		{"disabled", "USER_DISABLED", service.ErrAccountDisabled},
		{"throttled", "TOO_MANY_ATTEMPTS_TRY_LATER", service.ErrTooManyAttempts},
		{"throttled with advice", "TOO_MANY_ATTEMPTS_TRY_LATER : Access to this account has been temporarily disabled.", service.ErrTooManyAttempts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapVerifyPasswordError(toolkitError(400, tt.message))
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestMapVerifyPasswordError_UnknownCodeKeepsMessage(t *testing.T) {
	err := mapVerifyPasswordError(toolkitError(400, "OPERATION_NOT_ALLOWED"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.False(t, appErr.Retryable())
	assert.Contains(t, appErr.Message(), "OPERATION_NOT_ALLOWED")
}

func TestMapVerifyPasswordError_ServerErrorIsRetryable(t *testing.T) {
	err := mapVerifyPasswordError(toolkitError(503, "BACKEND_ERROR"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.Retryable())
}

func TestMapVerifyPasswordError_TransportFailureIsRetryable(t *testing.T) {
	err := mapVerifyPasswordError(errors.New("connection reset"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.True(t, appErr.Retryable())
}
