package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drosado/accounts-api/internal/api/middleware"
	"github.com/drosado/accounts-api/internal/core/domain"
)

// ctxSession extracts the session state injected by the Authorized middleware
// and fast-fails with 401 when it is missing: presence proves the middleware
// ran and the session survived validation.
func ctxSession(c echo.Context) (*domain.User, *domain.Session, string, error) {
	user, _ := c.Get(middleware.CtxUser).(*domain.User)
	session, _ := c.Get(middleware.CtxSession).(*domain.Session)
	token, _ := c.Get(middleware.CtxToken).(string)

	if user == nil || session == nil || token == "" {
		return nil, nil, "", echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	return user, session, token, nil
}
