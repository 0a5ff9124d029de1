package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/winniio/meetingpress/errors"
	"github.com/winniio/meetingpress/pkg/jwt"
)

// claimsContextKey is the echo context key the validated claims are stored
// under
const claimsContextKey = "auth_claims"

// JWTAuth returns Echo middleware that requires a valid Bearer access
// token. Validated claims are stored on the context for handlers.
func JWTAuth(jwtManager *jwt.Manager, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return respondUnauthorized(c, apperrors.ErrUnauthenticated())
			}

			claims, err := jwtManager.ValidateAccessToken(token)
			if err != nil {
				if logger != nil {
					logger.Warn("auth.token_rejected",
						zap.String("path", c.Path()),
						zap.Error(err),
					)
				}
				return respondUnauthorized(c, apperrors.ErrInvalidToken())
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext returns the claims stored by JWTAuth, or nil
func ClaimsFromContext(c echo.Context) *jwt.Claims {
	claims, _ := c.Get(claimsContextKey).(*jwt.Claims)
	return claims
}

// extractBearerToken pulls the token from the Authorization header
func extractBearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func respondUnauthorized(c echo.Context, appErr apperrors.AppError) error {
	return c.JSON(appErr.HTTPCode, map[string]interface{}{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
