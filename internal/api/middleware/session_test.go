package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/drosado/accounts-api/internal/api/middleware"
	"github.com/drosado/accounts-api/internal/core/domain"
	"github.com/drosado/accounts-api/internal/core/ports"
)

type stubSessions struct {
	session *domain.Session
	user    *domain.User
	err     error
}

func (s *stubSessions) Create(context.Context, string, int64) (*domain.Session, error) {
	panic("not used")
}

func (s *stubSessions) Validate(context.Context, string) (*domain.Session, *domain.User, error) {
	return s.session, s.user, s.err
}

func (s *stubSessions) Invalidate(context.Context, string) error { return nil }

func newContext(cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthorized_InjectsSessionIntoContext(t *testing.T) {
	session := &domain.Session{ID: "sid", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	user := &domain.User{ID: 7, Email: "alice@example.com"}
	mw := middleware.Authorized(&stubSessions{session: session, user: user}, false)

	c, _ := newContext(&http.Cookie{Name: "session", Value: "livetoken"})
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		if got := c.Get(middleware.CtxUser).(*domain.User); got != user {
			t.Fatalf("unexpected user in context: %+v", got)
		}
		if got := c.Get(middleware.CtxSession).(*domain.Session); got != session {
			t.Fatalf("unexpected session in context: %+v", got)
		}
		if got := c.Get(middleware.CtxToken).(string); got != "livetoken" {
			t.Fatalf("unexpected token in context: %q", got)
		}
		return nil
	})(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("next handler was not reached")
	}
}

func TestAuthorized_NoCookie(t *testing.T) {
	mw := middleware.Authorized(&stubSessions{}, false)

	c, _ := newContext(nil)
	err := mw(func(echo.Context) error {
		t.Fatalf("next handler reached without a session")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthorized_StaleTokenClearsCookie(t *testing.T) {
	mw := middleware.Authorized(&stubSessions{}, false)

	c, rec := newContext(&http.Cookie{Name: "session", Value: "staletoken"})
	err := mw(func(echo.Context) error {
		t.Fatalf("next handler reached with a stale session")
		return nil
	})(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	cleared := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "session" && ck.Value == "" && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("stale cookie was not cleared")
	}
}

func TestAuthorized_StoreErrorPropagates(t *testing.T) {
	storeErr := errors.New("store down")
	mw := middleware.Authorized(&stubSessions{err: storeErr}, false)

	c, _ := newContext(&http.Cookie{Name: "session", Value: "livetoken"})
	err := mw(func(echo.Context) error { return nil })(c)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}

func TestGuest(t *testing.T) {
	t.Run("no cookie passes through", func(t *testing.T) {
		mw := middleware.Guest(&stubSessions{})
		c, _ := newContext(nil)
		called := false
		if err := mw(func(echo.Context) error { called = true; return nil })(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !called {
			t.Fatalf("next handler was not reached")
		}
	})

	t.Run("dead session passes through", func(t *testing.T) {
		mw := middleware.Guest(&stubSessions{})
		c, _ := newContext(&http.Cookie{Name: "session", Value: "staletoken"})
		called := false
		if err := mw(func(echo.Context) error { called = true; return nil })(c); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !called {
			t.Fatalf("next handler was not reached")
		}
	})

	t.Run("live session is rejected", func(t *testing.T) {
		session := &domain.Session{ID: "sid", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
		mw := middleware.Guest(&stubSessions{session: session, user: &domain.User{ID: 7}})
		c, _ := newContext(&http.Cookie{Name: "session", Value: "livetoken"})
		err := mw(func(echo.Context) error {
			t.Fatalf("next handler reached with a live session")
			return nil
		})(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %v", err)
		}
	})
}

var _ ports.SessionService = (*stubSessions)(nil)
