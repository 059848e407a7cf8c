// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"beacon/internal/domain/entity"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// SignInInput defines the data required to sign in with an email address.
type SignInInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// SignInByNameInput defines the data required to sign in with a display name.
// The name is resolved to an email through the profile store first.
type SignInByNameInput struct {
	Name       string `json:"name"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me"`
}

// SignOutInput carries the session cookie of the session to end.
type SignOutInput struct {
	Cookie string
}

// --- Output DTOs ---

// SessionOutput returns the established session after a successful sign-up
// or sign-in. Durable reflects the persistence mode that was fixed before
// the credential check.
type SessionOutput struct {
	Session *entity.Session
}

// AuthUsecase defines the interface for the authentication flows.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// SignUp validates input, creates the account, attaches the display
	// name, writes the profile document and establishes a session.
	SignUp(ctx context.Context, input *SignUpInput) (*SessionOutput, error)

	// SignIn establishes a session from an email/password pair.
	SignIn(ctx context.Context, input *SignInInput) (*SessionOutput, error)

	// SignInByName resolves the display name to an email through the profile
	// store, then establishes a session like SignIn.
	SignInByName(ctx context.Context, input *SignInByNameInput) (*SessionOutput, error)

	// SignOut revokes the session's account sessions and publishes the
	// signed-out state.
	SignOut(ctx context.Context, input *SignOutInput) error

	// CurrentSession verifies a session cookie and returns the session it
	// represents, or an unauthenticated error.
	CurrentSession(ctx context.Context, cookie string) (*entity.Session, error)

	// Profile loads the dashboard fields for an authenticated account.
	Profile(ctx context.Context, accountID string) (*entity.Profile, error)
}
