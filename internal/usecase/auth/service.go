package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/winniio/meetingpress/errors"
	"github.com/winniio/meetingpress/pkg/jwt"
)

// KeyValidator checks a Fireflies API key against the live API
type KeyValidator interface {
	ValidateAPIKey(ctx context.Context, apiKey string) error
}

// Service exchanges a valid Fireflies API key for a service access token
type Service struct {
	validator  KeyValidator
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewService constructs the auth service
func NewService(validator KeyValidator, jwtManager *jwt.Manager, logger *zap.Logger) *Service {
	return &Service{
		validator:  validator,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// LoginResult carries the issued token and its lifetime
type LoginResult struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   time.Duration `json:"expires_in"`
}

// Login validates the supplied Fireflies API key with a minimal probe
// request and issues an access token bound to the key fingerprint. The key
// itself never appears in the token or in logs.
func (s *Service) Login(ctx context.Context, apiKey string) (*LoginResult, error) {
	if apiKey == "" {
		return nil, apperrors.ErrInvalidCredentials()
	}

	if err := s.validator.ValidateAPIKey(ctx, apiKey); err != nil {
		s.logger.Warn("auth.login.key_rejected", zap.Error(err))
		return nil, apperrors.ErrInvalidCredentials()
	}

	fingerprint := jwt.Fingerprint(apiKey)
	token, err := s.jwtManager.GenerateAccessToken(fingerprint)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	s.logger.Info("auth.login.succeeded", zap.String("key_fingerprint", fingerprint[:12]))

	return &LoginResult{
		AccessToken: token,
		ExpiresIn:   s.jwtManager.GetAccessExpiry(),
	}, nil
}
