package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lokeshec23/Track-Me/internal/api/middleware"
	"github.com/lokeshec23/Track-Me/internal/core/domain"
)

// currentUser extracts the user resolved by the Auth middleware. Its absence
// means the middleware did not run or did not complete; treat as
// unauthenticated rather than panicking.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
