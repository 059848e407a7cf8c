package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"
	mockService "beacon/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestWatcher(t *testing.T, publisher service.EventPublisher) *sessionWatcher {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	watcher := NewSessionWatcher(SessionWatcherParams{
		Publisher: publisher,
		Logger:    logger,
	})

	return watcher.(*sessionWatcher)
}

func signedIn(accountID string) entity.SessionState {
	return entity.SessionState{
		AccountID:     accountID,
		Email:         accountID + "@example.com",
		Authenticated: true,
		ChangedAt:     time.Now(),
	}
}

func TestSessionWatcher_Subscribe_FiresSynchronouslyWithCurrentState(t *testing.T) {
	watcher := createTestWatcher(t, nil)

	var got []entity.SessionState
	cancel := watcher.Subscribe("uid-alice", func(state entity.SessionState) {
		got = append(got, state)
	})
	defer cancel()

	// The initial callback arrives before Subscribe returns, and an account
	// never seen reports as signed out.
	require.Len(t, got, 1)
	assert.Equal(t, "uid-alice", got[0].AccountID)
	assert.False(t, got[0].Authenticated)
}

func TestSessionWatcher_Publish_NotifiesSubscribers(t *testing.T) {
	watcher := createTestWatcher(t, nil)

	var got []entity.SessionState
	cancel := watcher.Subscribe("uid-alice", func(state entity.SessionState) {
		got = append(got, state)
	})
	defer cancel()

	watcher.Publish(signedIn("uid-alice"))

	require.Len(t, got, 2)
	assert.True(t, got[1].Authenticated)
}

func TestSessionWatcher_Publish_IsolatesAccounts(t *testing.T) {
	watcher := createTestWatcher(t, nil)

	var aliceCalls, bobCalls int
	cancelAlice := watcher.Subscribe("uid-alice", func(entity.SessionState) { aliceCalls++ })
	defer cancelAlice()
	cancelBob := watcher.Subscribe("uid-bob", func(entity.SessionState) { bobCalls++ })
	defer cancelBob()

	watcher.Publish(signedIn("uid-alice"))

	assert.Equal(t, 2, aliceCalls)
	assert.Equal(t, 1, bobCalls)
}

func TestSessionWatcher_Cancel_StopsDelivery(t *testing.T) {
	watcher := createTestWatcher(t, nil)

	var calls int
	cancel := watcher.Subscribe("uid-alice", func(entity.SessionState) { calls++ })

	cancel()
	watcher.Publish(signedIn("uid-alice"))

	assert.Equal(t, 1, calls)

	// Cancelling twice is harmless.
	cancel()
}

func TestSessionWatcher_Current_ReflectsLastPublish(t *testing.T) {
	watcher := createTestWatcher(t, nil)

	state := signedIn("uid-alice")
	watcher.Publish(state)

	got := watcher.Current("uid-alice")
	assert.True(t, got.Authenticated)
	assert.Equal(t, state.Email, got.Email)

	signedOut := state
	signedOut.Authenticated = false
	watcher.Publish(signedOut)

	assert.False(t, watcher.Current("uid-alice").Authenticated)
}

func TestSessionWatcher_Ingest_FansOutWithoutForwarding(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	watcher := createTestWatcher(t, publisher)

	var got []entity.SessionState
	cancel := watcher.Subscribe("uid-alice", func(state entity.SessionState) {
		got = append(got, state)
	})
	defer cancel()

	watcher.Ingest(signedIn("uid-alice"))

	require.Len(t, got, 2)
	assert.True(t, got[1].Authenticated)

	// An event that arrived from another instance must not be published
	// again, or it would circulate between instances indefinitely.
	time.Sleep(50 * time.Millisecond)
	publisher.AssertNotCalled(t, "PublishSessionEvent", mock.Anything, mock.Anything)
}

func TestSessionWatcher_Publish_ForwardsToEventPublisher(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)

	forwarded := make(chan *service.SessionEvent, 1)
	publisher.EXPECT().
		PublishSessionEvent(mock.Anything, mock.AnythingOfType("*service.SessionEvent")).
		RunAndReturn(func(_ context.Context, event *service.SessionEvent) error {
			forwarded <- event
			return nil
		})

	watcher := createTestWatcher(t, publisher)
	watcher.Publish(signedIn("uid-alice"))

	select {
	case event := <-forwarded:
		assert.Equal(t, "uid-alice", event.State.AccountID)
		assert.NotEmpty(t, event.RequestID)
	case <-time.After(2 * time.Second):
		t.Fatal("session event was not forwarded")
	}
}
