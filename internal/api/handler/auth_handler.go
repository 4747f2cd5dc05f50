package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/drosado/accounts-api/internal/api/cookie"
	"github.com/drosado/accounts-api/internal/core/domain"
	"github.com/drosado/accounts-api/internal/core/ports"
)

// AuthHandler exposes the account flows over HTTP.
type AuthHandler struct {
	authService ports.AuthService
	secure      bool
}

// NewAuthHandler builds an AuthHandler. secure controls the cookie Secure
// attribute and should be true only behind HTTPS.
func NewAuthHandler(authService ports.AuthService, secure bool) *AuthHandler {
	return &AuthHandler{authService: authService, secure: secure}
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

// Register creates an account and signs the caller in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Param        body  body  registerRequest  true  "Registration details"
// @Success      201
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, creds, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Name:     req.Name,
		Document: req.Document,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	cookie.SetSession(c, creds.Token, creds.Session.ExpiresAt, h.secure)
	return c.NoContent(http.StatusCreated)
}

// Login authenticates by email and password and signs the caller in.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Param        body  body  loginRequest  true  "Login credentials"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, creds, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	cookie.SetSession(c, creds.Token, creds.Session.ExpiresAt, h.secure)
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated user's profile and refreshes the session
// cookie with the current (possibly renewed) expiry. The password hash never
// appears in the payload.
//
// @Summary      Current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, session, token, err := ctxSession(c)
	if err != nil {
		return err
	}

	cookie.SetSession(c, token, session.ExpiresAt, h.secure)
	return c.JSON(http.StatusOK, profileResponse{User: user})
}

// Logout invalidates the caller's session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	_, session, _, err := ctxSession(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), session.ID); err != nil {
		return err
	}

	cookie.ClearSession(c, h.secure)
	return c.NoContent(http.StatusNoContent)
}
