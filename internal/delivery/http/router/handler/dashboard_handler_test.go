package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beacon/internal/delivery/http/middleware"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	mockUsecase "beacon/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testDashboardContext(e *echo.Echo, session *entity.Session) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeySession, session)

	return c, rec
}

func TestDashboardHandler_Dashboard_UsesProfileDocument(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewDashboardHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	uc.EXPECT().
		Profile(mock.Anything, "uid-alice").
		Return(&entity.Profile{
			AccountID:   "uid-alice",
			DisplayName: "Alice",
			Email:       "alice@example.com",
			CreatedAt:   created,
		}, nil)

	c, rec := testDashboardContext(echo.New(), &entity.Session{AccountID: "uid-alice"})

	require.NoError(t, h.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"display_name":"Alice"`)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
	assert.Contains(t, rec.Body.String(), "member_since")
}

func TestDashboardHandler_Dashboard_MissingProfileFallsBack(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewDashboardHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Profile(mock.Anything, "uid-ghost").
		Return(nil, domainerrors.ErrUserNotFound)

	c, rec := testDashboardContext(echo.New(), &entity.Session{
		AccountID: "uid-ghost",
		Email:     "ghost@example.com",
	})

	require.NoError(t, h.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"display_name":"User"`)
	assert.Contains(t, rec.Body.String(), "ghost@example.com")
}

func TestDashboardHandler_Dashboard_StoreFailurePropagates(t *testing.T) {
	uc := mockUsecase.NewMockAuthUsecase(t)
	h := NewDashboardHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		Profile(mock.Anything, "uid-alice").
		Return(nil, domainerrors.ErrStoreUnavailable)

	c, _ := testDashboardContext(echo.New(), &entity.Session{AccountID: "uid-alice"})

	err := h.Dashboard(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}
