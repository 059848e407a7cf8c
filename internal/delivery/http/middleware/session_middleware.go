package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"beacon/config"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys for the authenticated session.
const (
	// KeySession is the echo.Context key holding the verified *entity.Session.
	KeySession = "session"
)

// SessionMiddleware guards routes on the presence of a valid session cookie
// and steers browsers between the landing page and the dashboard.
type SessionMiddleware struct {
	uc         usecase.AuthUsecase
	cookieName string
	logger     *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		uc:         uc,
		cookieName: cfg.Session.CookieName,
		logger:     logger,
	}
}

// Authenticate validates the session cookie. Browser requests without a
// valid session are sent back to the landing page; API clients get 401.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		session, err := m.uc.CurrentSession(c.Request().Context(), m.cookieValue(c))
		if err != nil {
			if wantsHTML(c) {
				return c.Redirect(http.StatusSeeOther, "/")
			}

			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return err
			}

			return errors.Wrap(domainerrors.ErrUnauthenticated, "session check failed")
		}

		c.Set(KeySession, session)

		return next(c)
	}
}

// RedirectIfAuthenticated sends an already-signed-in browser straight to the
// dashboard instead of showing the landing page again.
func (m *SessionMiddleware) RedirectIfAuthenticated(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie := m.cookieValue(c)
		if cookie == "" || !wantsHTML(c) {
			return next(c)
		}

		if _, err := m.uc.CurrentSession(c.Request().Context(), cookie); err == nil {
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}

		return next(c)
	}
}

func (m *SessionMiddleware) cookieValue(c echo.Context) string {
	cookie, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// wantsHTML reports whether the client negotiated for a page rather than an
// API payload. Redirects only make sense for page navigation.
func wantsHTML(c echo.Context) bool {
	accept := c.Request().Header.Get(echo.HeaderAccept)

	return strings.Contains(accept, echo.MIMETextHTML)
}
