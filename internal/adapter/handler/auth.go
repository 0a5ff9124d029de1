package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	authdto "github.com/winniio/meetingpress/internal/adapter/dto/auth"
	"github.com/winniio/meetingpress/internal/usecase/auth"
)

// Auth handles authentication HTTP requests
type Auth struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(authService *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// Login exchanges a Fireflies API key for an access token
// @Summary Log in with a Fireflies API key
// @Description Validates the key against the Fireflies API and issues a JWT access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body auth.LoginRequest true "Login request"
// @Success 200 {object} auth.LoginResponse
// @Failure 401 {object} object
// @Router /v1/auth/login [post]
func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req authdto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.authService.Login(ctx, req.APIKey)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, authdto.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
	})
}
