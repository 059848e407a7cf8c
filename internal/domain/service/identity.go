// Package service defines the interfaces for external collaborators.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer, so flows can be exercised with test doubles
// instead of a process-wide provider singleton.
package service

import (
	"context"
	"errors"
	"time"

	"beacon/internal/domain/entity"
)

// Sentinel outcomes of identity-provider calls. The infrastructure layer maps
// provider-specific error codes onto these so the application layer never
// depends on SDK error types.
var (
	// ErrEmailExists is returned when an account with the email is already registered.
	ErrEmailExists = errors.New("email already registered")
	// ErrAccountNotFound is returned when no account matches the identifier.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidPassword is returned when credential verification fails.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrAccountDisabled is returned when the provider has disabled the account.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrTooManyAttempts is returned when the provider throttles sign-in attempts.
	ErrTooManyAttempts = errors.New("too many sign-in attempts")
	// ErrSessionInvalid is returned when a session cookie fails verification,
	// including expiry and revocation.
	ErrSessionInvalid = errors.New("session invalid")
)

// IdentityProvider wraps the hosted identity service. All persistence,
// password verification and token issuance happen inside the provider; this
// system only sequences the calls and interprets their results.
type IdentityProvider interface {
	// CreateAccount registers a new credential record with the provider.
	CreateAccount(ctx context.Context, email, password string) (*entity.Account, error)

	// UpdateDisplayName sets the provider-stored display name for an account.
	UpdateDisplayName(ctx context.Context, accountID, displayName string) error

	// DeleteAccount removes an account. Used to compensate partial registrations.
	DeleteAccount(ctx context.Context, accountID string) error

	// SignIn verifies the credential pair and returns a provider session
	// carrying the short-lived token needed to mint a session cookie.
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// IssueSessionCookie exchanges a sign-in token for a session cookie with
	// the given validity. The validity must be chosen before SignIn per the
	// persistence-mode ordering contract.
	IssueSessionCookie(ctx context.Context, idToken string, ttl time.Duration) (string, error)

	// VerifySessionCookie validates a session cookie, checking revocation,
	// and returns the session it represents.
	VerifySessionCookie(ctx context.Context, cookie string) (*entity.Session, error)

	// SignOut revokes every session of the account.
	SignOut(ctx context.Context, accountID string) error
}
