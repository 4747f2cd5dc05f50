package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drosado/accounts-api/internal/api/cookie"
	"github.com/drosado/accounts-api/internal/core/ports"
)

// Context keys set by Authorized for downstream handlers.
const (
	CtxUser    = "auth.user"
	CtxSession = "auth.session"
	CtxToken   = "auth.token"
)

// Authorized admits only requests carrying a valid session cookie.
//
// The token is validated against the store (lazily expiring and renewing the
// session as a side effect); on failure any stale cookie is cleared and the
// client gets a generic 401. On success the user, session and token are
// injected into the echo context.
func Authorized(sessions ports.SessionService, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := cookie.Token(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			session, user, err := sessions.Validate(c.Request().Context(), token)
			if err != nil {
				return err
			}
			if session == nil {
				cookie.ClearSession(c, secure)
				return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
			}

			c.Set(CtxUser, user)
			c.Set(CtxSession, session)
			c.Set(CtxToken, token)

			return next(c)
		}
	}
}

// Guest admits only requests without a valid session: register and login
// reject callers that are already authenticated.
func Guest(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := cookie.Token(c)
			if !ok {
				return next(c)
			}

			session, _, err := sessions.Validate(c.Request().Context(), token)
			if err != nil {
				return err
			}
			if session != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Already logged in")
			}

			return next(c)
		}
	}
}
