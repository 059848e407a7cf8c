package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockUsecase "beacon/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSessionMiddleware(t *testing.T) (*SessionMiddleware, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: "session"}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewSessionMiddleware(uc, cfg, logger), uc
}

func guardedContext(cookie string, acceptHTML bool) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: cookie})
	}
	if acceptHTML {
		req.Header.Set(echo.HeaderAccept, echo.MIMETextHTML)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func okNext(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestSessionMiddleware_Authenticate_ValidCookiePasses(t *testing.T) {
	m, uc := testSessionMiddleware(t)

	session := &entity.Session{AccountID: "uid-alice"}
	uc.EXPECT().
		CurrentSession(mock.Anything, "cookie-alice").
		Return(session, nil)

	c, rec := guardedContext("cookie-alice", false)

	require.NoError(t, m.Authenticate(okNext)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session, c.Get(KeySession))
}

func TestSessionMiddleware_Authenticate_BrowserRedirectsToLanding(t *testing.T) {
	m, uc := testSessionMiddleware(t)

	uc.EXPECT().
		CurrentSession(mock.Anything, "").
		Return(nil, domainerrors.ErrUnauthenticated)

	c, rec := guardedContext("", true)

	require.NoError(t, m.Authenticate(okNext)(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionMiddleware_Authenticate_APIClientGets401(t *testing.T) {
	m, uc := testSessionMiddleware(t)

	uc.EXPECT().
		CurrentSession(mock.Anything, "stale").
		Return(nil, domainerrors.ErrSessionExpired)

	c, _ := guardedContext("stale", false)

	err := m.Authenticate(okNext)(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestSessionMiddleware_RedirectIfAuthenticated_SendsToDashboard(t *testing.T) {
	m, uc := testSessionMiddleware(t)

	uc.EXPECT().
		CurrentSession(mock.Anything, "cookie-alice").
		Return(&entity.Session{AccountID: "uid-alice"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "cookie-alice"})
	req.Header.Set(echo.HeaderAccept, echo.MIMETextHTML)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, m.RedirectIfAuthenticated(okNext)(c))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionMiddleware_RedirectIfAuthenticated_NoCookiePassesThrough(t *testing.T) {
	m, uc := testSessionMiddleware(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMETextHTML)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	require.NoError(t, m.RedirectIfAuthenticated(okNext)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertNotCalled(t, "CurrentSession", mock.Anything, mock.Anything)
}
