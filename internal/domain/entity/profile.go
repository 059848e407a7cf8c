// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Profile is the denormalized document-store record mirroring selected
// account fields. It exists so the store can answer lookups the identity
// provider cannot, most importantly display name to email resolution.
// One document per account, keyed by the account id. The display name and
// email are copies taken at registration time and are not synchronized
// afterwards.
type Profile struct {
	AccountID   string    `firestore:"-"`
	DisplayName string    `firestore:"displayName"`
	Email       string    `firestore:"email"`
	CreatedAt   time.Time `firestore:"createdAt,serverTimestamp"`
}
