package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"beacon/internal/delivery/http/middleware"
	"beacon/internal/domain/entity"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// eventBuffer bounds how many undelivered states a slow client can pile up.
// On overflow older intermediate states are dropped; the latest always wins.
const eventBuffer = 8

// SessionHandler streams session-state changes to the browser over SSE so an
// open tab notices a sign-out made elsewhere.
type SessionHandler struct {
	observer usecase.SessionObserver
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(observer usecase.SessionObserver, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		observer: observer,
		logger:   logger,
	}
}

// Events subscribes the client to its own account's session-state changes.
// The first event is delivered immediately with the current state; the
// stream ends when the client disconnects.
func (h *SessionHandler) Events(c echo.Context) error {
	session, ok := c.Get(middleware.KeySession).(*entity.Session)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	states := make(chan entity.SessionState, eventBuffer)
	cancel := h.observer.Subscribe(session.AccountID, func(state entity.SessionState) {
		enqueueState(states, state)
	})
	defer cancel()

	h.logger.Debug("Session event stream opened", slog.String("accountID", session.AccountID))

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("Session event stream closed", slog.String("accountID", session.AccountID))

			return nil
		case state := <-states:
			if err := writeSessionEvent(res, state); err != nil {
				return errors.Wrap(err, "failed to write session event")
			}
		}
	}
}

// enqueueState delivers a state to the stream without blocking the watcher.
// On a full buffer the oldest queued state is evicted to make room: stale
// intermediate states are disposable, the newest one is not.
func enqueueState(states chan entity.SessionState, state entity.SessionState) {
	for {
		select {
		case states <- state:
			return
		default:
		}

		select {
		case <-states:
		default:
		}
	}
}

func writeSessionEvent(res *echo.Response, state entity.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprintf(res, "event: session\ndata: %s\n\n", data); err != nil {
		return errors.WithStack(err)
	}
	res.Flush()

	return nil
}
