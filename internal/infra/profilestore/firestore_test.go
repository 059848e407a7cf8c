package profilestore

import (
	"io"
	"log/slog"
	"testing"

	domainerrors "beacon/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func testStore() *firestoreStore {
	return &firestoreStore{
		collection: "profiles",
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestMapStoreError_TransientCodes(t *testing.T) {
	store := testStore()

	for _, code := range []codes.Code{codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted} {
		err := store.mapStoreError(status.Error(code, "backend overloaded"), "failed to query")
		assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable, "code %s", code)
	}
}

func TestMapStoreError_PermanentCodePassesThrough(t *testing.T) {
	store := testStore()

	cause := status.Error(codes.PermissionDenied, "missing IAM role")
	err := store.mapStoreError(cause, "failed to query")

	assert.NotErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, cause)
}
