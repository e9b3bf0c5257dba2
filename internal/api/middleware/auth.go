package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/todo-api/internal/core/service"
)

// TokenVerifier is the slice of TokenService the middleware needs.
type TokenVerifier interface {
	Verify(token string) (*service.Claims, error)
}

// Auth requires a valid bearer token and injects the authenticated identity
// into the request context. Every failure mode (missing header, malformed
// header, bad signature, expired token) yields the same 401 so callers
// learn nothing about why verification failed. No database lookup happens
// here: the token's claims are authoritative for identity.
func Auth(tokens TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)

			return next(c)
		}
	}
}
