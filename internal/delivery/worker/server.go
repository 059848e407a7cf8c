// Package worker runs the Pub/Sub push relay for cross-instance session events.
package worker

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"beacon/config"
	"beacon/internal/delivery"
	"beacon/internal/delivery/http/middleware"
	"beacon/internal/delivery/worker/handler"
	"beacon/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type relayServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the relay server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the HTTP server that receives Pub/Sub push deliveries.
// The relay is optional: with no pubsub configuration or a zero push port,
// Serve logs and returns without listening.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Pub/Sub push endpoint
	e.POST("/push", params.PushHandler.HandlePush)

	srv := &relayServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the relay HTTP server
func (s *relayServer) Serve(ctx context.Context) error {
	if !s.enabled() {
		s.logger.Info("Session event relay disabled, skipping push server")

		return nil
	}

	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.PubSub.PushPort))
	s.logger.Info("Starting session event relay", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the relay server
func (s *relayServer) stop(ctx context.Context) error {
	if !s.enabled() {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down session event relay")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}

func (s *relayServer) enabled() bool {
	return s.cfg.PubSub != nil && s.cfg.PubSub.PushPort > 0
}
