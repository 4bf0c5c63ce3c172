package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/watchlist-server/internal/model"
)

// maxPasswordBytes is the bcrypt input limit.
const maxPasswordBytes = 72

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt implements PasswordHasher with salted bcrypt hashes.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a hasher with the given cost. Out of range costs fall
// back to bcrypt.DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash returns a salted bcrypt hash of password.
func (b *Bcrypt) Hash(password string) ([]byte, error) {
	if len(password) > maxPasswordBytes {
		return nil, model.ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return hash, nil
}

// Verify reports whether password matches hash. Passwords longer than the
// bcrypt limit never match, since bcrypt would only compare their prefix.
func (b *Bcrypt) Verify(password string, hash []byte) bool {
	if len(password) > maxPasswordBytes {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
