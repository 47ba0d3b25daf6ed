package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/marinazub/meeting-insights/errors"
	"github.com/marinazub/meeting-insights/pkg/jwt"
)

// ClaimsContextKey is the echo context key carrying validated claims.
const ClaimsContextKey = "auth_claims"

// JWTAuth validates the bearer token on protected routes and stores
// the claims on the context.
func JWTAuth(manager *jwt.Manager, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c.Request())
			if token == "" {
				return unauthorized(c)
			}

			claims, err := manager.ValidateToken(token)
			if err != nil {
				if logger != nil {
					logger.Warn("rejected bearer token",
						zap.String("path", c.Path()),
						zap.Error(err))
				}
				return unauthorized(c)
			}

			c.Set(ClaimsContextKey, claims)
			return next(c)
		}
	}
}

// extractToken reads the bearer token from the Authorization header
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func unauthorized(c echo.Context) error {
	appErr := errors.ErrUnauthenticated()
	return c.JSON(appErr.HTTPCode, map[string]interface{}{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
