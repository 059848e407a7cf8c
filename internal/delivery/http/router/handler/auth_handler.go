// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"beacon/config"
	"beacon/internal/delivery/http/response"
	"beacon/internal/domain/entity"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// sessionView is the wire shape of an established session. The cookie itself
// travels in the Set-Cookie header, never in the body.
type sessionView struct {
	AccountID   string    `json:"account_id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Durable     bool      `json:"durable"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func newSessionView(session *entity.Session) sessionView {
	return sessionView{
		AccountID:   session.AccountID,
		Email:       session.Email,
		DisplayName: session.DisplayName,
		Durable:     session.Durable,
		ExpiresAt:   session.ExpiresAt,
	}
}

// AuthHandler holds dependencies for the authentication handlers.
type AuthHandler struct {
	uc           usecase.AuthUsecase
	cookieName   string
	cookieSecure bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:           uc,
		cookieName:   cfg.Session.CookieName,
		cookieSecure: cfg.Session.CookieSecure,
		logger:       logger,
	}
}

// SignUp handles the registration request.
func (h *AuthHandler) SignUp(c echo.Context) error {
	// Bind into an allocated struct: an empty body binds nothing, and the
	// zero values must still reach the validator as an empty submission.
	input := new(usecase.SignUpInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}

	output, err := h.uc.SignUp(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Session)

	return response.Success(c, http.StatusCreated, newSessionView(output.Session), "Account created")
}

// SignIn handles the email/password login request.
func (h *AuthHandler) SignIn(c echo.Context) error {
	input := new(usecase.SignInInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	output, err := h.uc.SignIn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Session)

	return response.Success(c, http.StatusOK, newSessionView(output.Session), "Signed in")
}

// SignInByName handles the display-name login request.
func (h *AuthHandler) SignInByName(c echo.Context) error {
	input := new(usecase.SignInByNameInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	output, err := h.uc.SignInByName(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Session)

	return response.Success(c, http.StatusOK, newSessionView(output.Session), "Signed in")
}

// SignOut ends the session identified by the session cookie. A request
// without a cookie is already signed out, which is success.
func (h *AuthHandler) SignOut(c echo.Context) error {
	cookie, err := c.Cookie(h.cookieName)
	if err == nil && cookie.Value != "" {
		if err := h.uc.SignOut(c.Request().Context(), &usecase.SignOutInput{Cookie: cookie.Value}); err != nil {
			return errors.WithStack(err)
		}
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, map[string]string{"status": "signed_out"}, "Signed out")
}

// setSessionCookie issues the session cookie. Durable sessions get an
// explicit Max-Age so the browser keeps them across restarts; the rest stay
// browser-session cookies and vanish when the window closes.
func (h *AuthHandler) setSessionCookie(c echo.Context, session *entity.Session) {
	cookie := &http.Cookie{
		Name:     h.cookieName,
		Value:    session.Cookie,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if session.Durable {
		cookie.MaxAge = int(time.Until(session.ExpiresAt).Seconds())
	}

	c.SetCookie(cookie)
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
