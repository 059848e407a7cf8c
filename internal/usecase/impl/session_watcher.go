package impl

import (
	"context"
	"log/slog"
	"sync"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/lifecycle"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// sessionWatcher implements the SessionObserver interface. It keeps the last
// known state per account, fans changes out to in-process subscribers, and
// forwards them to the event publisher so other instances see them too.
type sessionWatcher struct {
	mu     sync.Mutex
	nextID int
	states map[string]entity.SessionState
	subs   map[string]map[int]func(entity.SessionState)

	publisher service.EventPublisher
	logger    *slog.Logger
}

// SessionWatcherParams holds dependencies for the session watcher, injected by Fx.
type SessionWatcherParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewSessionWatcher is the constructor for sessionWatcher.
func NewSessionWatcher(params SessionWatcherParams) usecase.SessionObserver {
	return &sessionWatcher{
		states:    make(map[string]entity.SessionState),
		subs:      make(map[string]map[int]func(entity.SessionState)),
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Subscribe registers fn for an account's state changes. fn is invoked
// exactly once synchronously with the current known state before Subscribe
// returns, then once per published change until cancel is called.
func (w *sessionWatcher) Subscribe(accountID string, fn func(entity.SessionState)) (cancel func()) {
	w.mu.Lock()
	id := w.nextID
	w.nextID++

	if w.subs[accountID] == nil {
		w.subs[accountID] = make(map[int]func(entity.SessionState))
	}
	w.subs[accountID][id] = fn

	current := w.currentLocked(accountID)
	w.mu.Unlock()

	fn(current)

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()

		delete(w.subs[accountID], id)
		if len(w.subs[accountID]) == 0 {
			delete(w.subs, accountID)
		}
	}
}

// Publish records the new state, notifies in-process subscribers and
// forwards the change to the event publisher.
func (w *sessionWatcher) Publish(state entity.SessionState) {
	w.fanOut(state)
	w.forward(state)
}

// Ingest handles a state change that originated on another instance. It is
// fanned out locally only; re-forwarding it would bounce the same event
// between instances forever.
func (w *sessionWatcher) Ingest(state entity.SessionState) {
	w.fanOut(state)
}

func (w *sessionWatcher) fanOut(state entity.SessionState) {
	w.mu.Lock()
	w.states[state.AccountID] = state

	handlers := make([]func(entity.SessionState), 0, len(w.subs[state.AccountID]))
	for _, fn := range w.subs[state.AccountID] {
		handlers = append(handlers, fn)
	}
	w.mu.Unlock()

	for _, fn := range handlers {
		fn(state)
	}
}

// Current returns the last known state for an account; accounts never seen
// report as signed out.
func (w *sessionWatcher) Current(accountID string) entity.SessionState {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.currentLocked(accountID)
}

func (w *sessionWatcher) currentLocked(accountID string) entity.SessionState {
	if state, ok := w.states[accountID]; ok {
		return state
	}

	return entity.SessionState{AccountID: accountID}
}

// forward hands the change to the event publisher off the caller's path so a
// slow broker never blocks a sign-in response.
func (w *sessionWatcher) forward(state entity.SessionState) {
	if w.publisher == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		event := &service.SessionEvent{
			RequestID: uuid.New().String(),
			State:     state,
		}

		if err := w.publisher.PublishSessionEvent(ctx, event); err != nil {
			w.logger.Error("Failed to publish session event",
				slog.String("accountID", state.AccountID),
				slog.Any("error", err),
			)
		}
	}()
}
