package service

import (
	"context"
	"errors"

	"beacon/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile document matches the lookup.
// Store access failures are NOT folded into this: a transient store error
// must surface as its own kind so "no such user" keeps its meaning.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore wraps the hosted document store holding denormalized profile
// documents, one per account, keyed by the account id.
type ProfileStore interface {
	// Save writes the profile document keyed by profile.AccountID. The
	// creation timestamp is assigned server-side at write time.
	Save(ctx context.Context, profile *entity.Profile) error

	// FindByDisplayName resolves a display name to its profile document by
	// exact equality. When duplicates exist the store's own (unspecified)
	// order decides which document is returned; registration prevents
	// duplicates from being created in the first place.
	FindByDisplayName(ctx context.Context, displayName string) (*entity.Profile, error)

	// FindByAccountID retrieves the profile document for an account.
	FindByAccountID(ctx context.Context, accountID string) (*entity.Profile, error)

	// Delete removes the profile document. Used to compensate partial registrations.
	Delete(ctx context.Context, accountID string) error
}
