// Package cookie centralizes the session cookie attributes so handlers and
// middleware cannot drift apart on them.
package cookie

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Name is the session cookie name.
const Name = "session"

// SetSession writes the session cookie carrying the opaque token. The Secure
// attribute is added only when the service runs behind HTTPS (production).
func SetSession(c echo.Context, token string, expiresAt time.Time, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSession expires the session cookie (Max-Age=0).
func ClearSession(c echo.Context, secure bool) {
	c.SetCookie(&http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token reads the session token from the request, reporting whether the
// cookie was present and non-empty.
func Token(c echo.Context) (string, bool) {
	ck, err := c.Cookie(Name)
	if err != nil || ck.Value == "" {
		return "", false
	}
	return ck.Value, true
}
