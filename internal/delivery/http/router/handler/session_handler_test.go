package handler

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"beacon/internal/delivery/http/middleware"
	"beacon/internal/domain/entity"
	mockUsecase "beacon/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// streamRecorder is a minimal flushable ResponseWriter safe for concurrent
// reads while the stream handler writes from its own goroutine.
type streamRecorder struct {
	mu     sync.Mutex
	header http.Header
	buf    bytes.Buffer
	wrote  chan struct{}
}

func newStreamRecorder() *streamRecorder {
	return &streamRecorder{
		header: make(http.Header),
		wrote:  make(chan struct{}, 16),
	}
}

func (r *streamRecorder) Header() http.Header { return r.header }

func (r *streamRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	n, err := r.buf.Write(p)
	r.mu.Unlock()

	select {
	case r.wrote <- struct{}{}:
	default:
	}

	return n, err
}

func (r *streamRecorder) WriteHeader(int) {}

func (r *streamRecorder) Flush() {}

func (r *streamRecorder) body() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.buf.String()
}

func TestSessionHandler_Events_DeliversSignOut(t *testing.T) {
	observer := mockUsecase.NewMockSessionObserver(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewSessionHandler(observer, logger)

	fns := make(chan func(entity.SessionState), 1)
	var cancelled bool
	var mu sync.Mutex
	observer.EXPECT().
		Subscribe("uid-alice", mock.AnythingOfType("func(entity.SessionState)")).
		RunAndReturn(func(_ string, fn func(entity.SessionState)) func() {
			fns <- fn

			return func() {
				mu.Lock()
				cancelled = true
				mu.Unlock()
			}
		})

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	req := httptest.NewRequest(http.MethodGet, "/session/events", nil).WithContext(ctx)
	rec := newStreamRecorder()

	e := echo.New()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeySession, &entity.Session{AccountID: "uid-alice"})

	done := make(chan error, 1)
	go func() {
		done <- h.Events(c)
	}()

	var fn func(entity.SessionState)
	select {
	case fn = <-fns:
	case <-time.After(2 * time.Second):
		t.Fatal("handler never subscribed")
	}

	fn(entity.SessionState{AccountID: "uid-alice", Authenticated: false, ChangedAt: time.Now()})

	select {
	case <-rec.wrote:
	case <-time.After(2 * time.Second):
		t.Fatal("sign-out event never written to the stream")
	}

	stop()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("handler did not stop on disconnect")
	}

	body := rec.body()
	assert.Contains(t, body, "event: session")
	assert.Contains(t, body, `"account_id":"uid-alice"`)
	assert.Contains(t, body, `"authenticated":false`)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, cancelled, "subscription must be cancelled on disconnect")
}

// A backlog of stale states must never crowd out the newest one: the
// sign-out published last has to survive a full buffer.
func TestEnqueueState_FullBufferKeepsNewest(t *testing.T) {
	states := make(chan entity.SessionState, eventBuffer)
	for i := 0; i < eventBuffer; i++ {
		states <- entity.SessionState{AccountID: "uid-alice", Authenticated: true}
	}

	enqueueState(states, entity.SessionState{AccountID: "uid-alice", Authenticated: false})

	var last entity.SessionState
drain:
	for {
		select {
		case state := <-states:
			last = state
		default:
			break drain
		}
	}

	assert.False(t, last.Authenticated)
}

func TestEnqueueState_EmptyBufferDelivers(t *testing.T) {
	states := make(chan entity.SessionState, eventBuffer)

	enqueueState(states, entity.SessionState{AccountID: "uid-alice", Authenticated: true})

	require.Len(t, states, 1)
	state := <-states
	assert.True(t, state.Authenticated)
}
