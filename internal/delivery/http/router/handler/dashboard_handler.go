package handler

import (
	"log/slog"
	"net/http"
	"time"

	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/response"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// defaultDisplayName is shown when neither the profile document nor the
// session carries a name.
const defaultDisplayName = "User"

// dashboardView is the wire shape of the dashboard page data.
type dashboardView struct {
	AccountID   string     `json:"account_id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	MemberSince *time.Time `json:"member_since,omitempty"`
}

// DashboardHandler serves the guarded dashboard data.
type DashboardHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.AuthUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// Dashboard returns the signed-in account's dashboard fields. A missing
// profile document is not fatal: the session still identifies the account,
// so the page renders with fallbacks instead of erroring out.
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	session, ok := c.Get(middleware.KeySession).(*entity.Session)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	view := dashboardView{
		AccountID:   session.AccountID,
		Email:       session.Email,
		DisplayName: session.DisplayName,
	}

	profile, err := h.uc.Profile(c.Request().Context(), session.AccountID)
	switch {
	case err == nil:
		view.Email = profile.Email
		view.DisplayName = profile.DisplayName
		if !profile.CreatedAt.IsZero() {
			created := profile.CreatedAt
			view.MemberSince = &created
		}
	case errors.Is(err, domainerrors.ErrUserNotFound):
		h.logger.Warn("No profile document for signed-in account",
			slog.String("accountID", session.AccountID),
		)
	default:
		return errors.WithStack(err)
	}

	if view.DisplayName == "" {
		view.DisplayName = defaultDisplayName
	}

	return response.Success(c, http.StatusOK, view, "Dashboard data")
}
