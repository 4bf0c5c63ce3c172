package model

import (
	"time"

	"github.com/google/uuid"
)

// Identity describes the authenticated caller.
type Identity struct {
	UserID    uuid.UUID
	Username  string
	Email     string
	SessionID uuid.UUID
}

// IsZero reports whether the identity carries no user.
func (i Identity) IsZero() bool {
	return i.UserID == uuid.Nil
}

// TokenManager generates and validates access tokens.
type TokenManager interface {
	GenerateAccessToken(identity Identity) (token string, expiresAt time.Time, err error)
	ParseAccessToken(token string) (Identity, error)
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) ([]byte, error)
	Verify(password string, hash []byte) bool
}
