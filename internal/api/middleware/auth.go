package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lokeshec23/Track-Me/internal/core/ports"
)

// UserContextKey is where the resolved user is stored on the echo context.
const UserContextKey = "current_user"

// Auth is the session resolver: it verifies the bearer token and resolves
// its subject to an existing user, injecting the record into the context.
// Every failure yields 401, including a still-valid token whose subject no
// longer maps to a user.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			subject, err := tokens.Verify(parts[1], time.Now().UTC())
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
