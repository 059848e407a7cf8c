// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is an identity-provider-managed credential record. The provider
// owns the id, the email uniqueness guarantee and the password; the password
// is never read back into this system.
type Account struct {
	ID          string    // Opaque provider-assigned identifier, immutable.
	Email       string    // Unique within the provider, used for credential checks.
	DisplayName string    // Mutable, stored at the provider.
	CreatedAt   time.Time // Provider-reported creation time.
}

// Session is the provider's representation of an authenticated context.
// Cookie holds the minted session cookie; persistence of that cookie on the
// client is decided before the sign-in that produced it.
type Session struct {
	AccountID   string    // The account this session belongs to.
	Email       string    // Copy of the account email at sign-in time.
	DisplayName string    // Copy of the account display name at sign-in time.
	IDToken     string    // Short-lived provider token exchanged for the cookie.
	Cookie      string    // The minted session cookie value.
	Durable     bool      // True when the session survives a browser restart.
	ExpiresAt   time.Time // Server-side validity of the session cookie.
}

// SessionState is the observable authentication state of one account, as
// distributed by the session watcher.
type SessionState struct {
	AccountID     string    `json:"account_id"`
	Email         string    `json:"email,omitempty"`
	DisplayName   string    `json:"display_name,omitempty"`
	Authenticated bool      `json:"authenticated"`
	ChangedAt     time.Time `json:"changed_at"`
}
