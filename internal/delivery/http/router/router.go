// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/http/response"
	"beacon/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	DashboardHandler  *handler.DashboardHandler
	SessionHandler    *handler.SessionHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	dashboardHandler  *handler.DashboardHandler
	sessionHandler    *handler.SessionHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		dashboardHandler:  params.DashboardHandler,
		sessionHandler:    params.SessionHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Landing page; signed-in browsers are sent on to the dashboard.
	e.GET("/", landing, r.sessionMiddleware.RedirectIfAuthenticated)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/signin/name", r.authHandler.SignInByName)
		authGroup.POST("/signout", r.authHandler.SignOut)
	}

	// Routes that require a valid session cookie
	e.GET("/dashboard", r.dashboardHandler.Dashboard, r.sessionMiddleware.Authenticate)

	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.sessionMiddleware.Authenticate)
	{
		sessionGroup.GET("/events", r.sessionHandler.Events)
	}
}

// landing identifies the service for unauthenticated visitors.
func landing(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"signup":  "/auth/signup",
		"signin":  "/auth/signin",
		"by_name": "/auth/signin/name",
	}, "Welcome")
}
