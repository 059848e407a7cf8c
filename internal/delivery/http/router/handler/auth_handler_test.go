package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"beacon/config"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockUsecase "beacon/internal/mocks/usecase"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testSessionConfig() *config.Config {
	return &config.Config{
		Session: &config.SessionConfig{
			CookieName: "session",
		},
	}
}

func testAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAuthUsecase) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(uc, testSessionConfig(), logger), uc
}

func postJSON(target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req, httptest.NewRecorder()
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "session" {
			return cookie
		}
	}
	t.Fatal("no session cookie in response")

	return nil
}

func TestAuthHandler_SignIn_SetsBrowserSessionCookie(t *testing.T) {
	h, uc := testAuthHandler(t)

	uc.EXPECT().
		SignIn(mock.Anything, mock.AnythingOfType("*usecase.SignInInput")).
		Return(&usecase.SessionOutput{
			Session: &entity.Session{
				AccountID:   "uid-alice",
				Email:       "alice@example.com",
				DisplayName: "Alice",
				Cookie:      "cookie-alice",
				Durable:     false,
				ExpiresAt:   time.Now().Add(12 * time.Hour),
			},
		}, nil)

	e := echo.New()
	req, rec := postJSON("/auth/signin", `{"email":"alice@example.com","password":"secret123"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.SignIn(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.Equal(t, "cookie-alice", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	// No Max-Age: the browser discards it when the window closes.
	assert.Equal(t, 0, cookie.MaxAge)

	// The cookie value never appears in the body.
	assert.NotContains(t, rec.Body.String(), "cookie-alice")
	assert.Contains(t, rec.Body.String(), "uid-alice")
}

func TestAuthHandler_SignIn_RememberMeSetsMaxAge(t *testing.T) {
	h, uc := testAuthHandler(t)

	uc.EXPECT().
		SignIn(mock.Anything, mock.AnythingOfType("*usecase.SignInInput")).
		Return(&usecase.SessionOutput{
			Session: &entity.Session{
				AccountID: "uid-alice",
				Cookie:    "cookie-alice",
				Durable:   true,
				ExpiresAt: time.Now().Add(14 * 24 * time.Hour),
			},
		}, nil)

	e := echo.New()
	req, rec := postJSON("/auth/signin", `{"email":"alice@example.com","password":"secret123","remember_me":true}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.SignIn(c))

	cookie := sessionCookie(t, rec)
	assert.Greater(t, cookie.MaxAge, 0)
}

func TestAuthHandler_SignUp_Created(t *testing.T) {
	h, uc := testAuthHandler(t)

	var got *usecase.SignUpInput
	uc.EXPECT().
		SignUp(mock.Anything, mock.AnythingOfType("*usecase.SignUpInput")).
		Run(func(_ context.Context, input *usecase.SignUpInput) {
			got = input
		}).
		Return(&usecase.SessionOutput{
			Session: &entity.Session{
				AccountID: "uid-alice",
				Cookie:    "cookie-alice",
			},
		}, nil)

	e := echo.New()
	req, rec := postJSON("/auth/signup", `{"name":"Alice","email":"alice@example.com","password":"secret123"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, h.SignUp(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, got)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@example.com", got.Email)
}

// An empty body binds nothing; the handler must still hand the usecase a
// zero-valued input so validation reports the empty submission.
func TestAuthHandler_SignIn_EmptyBodyReachesValidation(t *testing.T) {
	h, uc := testAuthHandler(t)

	var got *usecase.SignInInput
	uc.EXPECT().
		SignIn(mock.Anything, mock.AnythingOfType("*usecase.SignInInput")).
		Run(func(_ context.Context, input *usecase.SignInInput) {
			got = input
		}).
		Return(nil, domainerrors.ErrEmptyFields)

	e := echo.New()
	req, rec := postJSON("/auth/signin", "")
	c := e.NewContext(req, rec)

	err := h.SignIn(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyFields)

	require.NotNil(t, got)
	assert.Empty(t, got.Email)
	assert.Empty(t, got.Password)
}

func TestAuthHandler_SignUp_EmptyBodyReachesValidation(t *testing.T) {
	h, uc := testAuthHandler(t)

	var got *usecase.SignUpInput
	uc.EXPECT().
		SignUp(mock.Anything, mock.AnythingOfType("*usecase.SignUpInput")).
		Run(func(_ context.Context, input *usecase.SignUpInput) {
			got = input
		}).
		Return(nil, domainerrors.ErrEmptyFields)

	e := echo.New()
	req, rec := postJSON("/auth/signup", "")
	c := e.NewContext(req, rec)

	err := h.SignUp(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyFields)
	require.NotNil(t, got)
}

func TestAuthHandler_SignInByName_EmptyBodyReachesValidation(t *testing.T) {
	h, uc := testAuthHandler(t)

	var got *usecase.SignInByNameInput
	uc.EXPECT().
		SignInByName(mock.Anything, mock.AnythingOfType("*usecase.SignInByNameInput")).
		Run(func(_ context.Context, input *usecase.SignInByNameInput) {
			got = input
		}).
		Return(nil, domainerrors.ErrEmptyFields)

	e := echo.New()
	req, rec := postJSON("/auth/signin/name", "")
	c := e.NewContext(req, rec)

	err := h.SignInByName(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyFields)
	require.NotNil(t, got)
}

func TestAuthHandler_SignOut_WithoutCookieIsSuccess(t *testing.T) {
	h, uc := testAuthHandler(t)

	e := echo.New()
	req, rec := postJSON("/auth/signout", "")
	c := e.NewContext(req, rec)

	require.NoError(t, h.SignOut(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertNotCalled(t, "SignOut", mock.Anything, mock.Anything)
}

func TestAuthHandler_SignOut_ClearsCookie(t *testing.T) {
	h, uc := testAuthHandler(t)

	uc.EXPECT().
		SignOut(mock.Anything, &usecase.SignOutInput{Cookie: "cookie-alice"}).
		Return(nil)

	e := echo.New()
	req, rec := postJSON("/auth/signout", "")
	req.AddCookie(&http.Cookie{Name: "session", Value: "cookie-alice"})
	c := e.NewContext(req, rec)

	require.NoError(t, h.SignOut(c))

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Equal(t, -1, cookie.MaxAge)
}
