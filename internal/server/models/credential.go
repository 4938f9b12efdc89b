package models

import "time"

// Credential is the email + password-hash tuple used to authenticate. Each
// credential references exactly one user; the reference is set at registration
// and never reassigned. PasswordHash is opaque and must never be logged or
// serialized.
type Credential struct {
	ID           int64
	Email        string
	PasswordHash string
	UserID       int64
	// User is the owning identity record, attached eagerly by
	// credentials.Repository.GetByEmail. Nil after a bare insert.
	User      *User
	CreatedAt time.Time
}
