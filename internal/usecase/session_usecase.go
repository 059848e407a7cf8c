// Package usecase contains the application-specific business rules.
package usecase

import "beacon/internal/domain/entity"

// SessionObserver distributes session-state changes to interested parties.
// Subscribe replaces the implicit provider callback of the original design:
// the handler is invoked exactly once synchronously with the current known
// state, then once per subsequent change for the account, until the returned
// cancel function is called.
type SessionObserver interface {
	Subscribe(accountID string, fn func(entity.SessionState)) (cancel func())

	// Publish records a state change, fans it out to subscribers and
	// forwards it for distribution to other instances.
	Publish(state entity.SessionState)

	// Ingest records a state change received from another instance and fans
	// it out locally without forwarding it again.
	Ingest(state entity.SessionState)

	// Current returns the last known state for an account.
	Current(accountID string) entity.SessionState
}
