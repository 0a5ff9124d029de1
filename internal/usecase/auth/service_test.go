package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/winniio/meetingpress/errors"
	"github.com/winniio/meetingpress/pkg/jwt"
)

type fakeValidator struct {
	gotKey string
	err    error
}

func (f *fakeValidator) ValidateAPIKey(_ context.Context, apiKey string) error {
	f.gotKey = apiKey
	return f.err
}

func newTestService(v *fakeValidator) *Service {
	return NewService(v, jwt.NewManager("test-secret", time.Hour), zap.NewNop())
}

func TestLogin(t *testing.T) {
	validator := &fakeValidator{}
	svc := newTestService(validator)

	result, err := svc.Login(context.Background(), "ff-key-123")
	require.NoError(t, err)
	require.Equal(t, "ff-key-123", validator.gotKey)
	require.NotEmpty(t, result.AccessToken)
	require.Equal(t, time.Hour, result.ExpiresIn)

	// the token is bound to the key fingerprint, never the key itself
	claims, err := jwt.NewManager("test-secret", time.Hour).ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	require.Equal(t, jwt.Fingerprint("ff-key-123"), claims.KeyFingerprint)
	require.NotContains(t, result.AccessToken, "ff-key-123")
}

func TestLogin_InvalidKey(t *testing.T) {
	validator := &fakeValidator{err: errors.New("graphql error: invalid api key")}
	svc := newTestService(validator)

	_, err := svc.Login(context.Background(), "bad-key")
	require.Error(t, err)

	var appErr apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, apperrors.ErrorCode_AUTH_INVALID_CREDENTIALS, appErr.Code)
}

func TestLogin_EmptyKey(t *testing.T) {
	validator := &fakeValidator{}
	svc := newTestService(validator)

	_, err := svc.Login(context.Background(), "")
	require.Error(t, err)
	require.Empty(t, validator.gotKey, "empty key must be rejected without a probe request")
}
