package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 12

// BcryptHasher implements ports.PasswordHasher with salted bcrypt hashes.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify compares in constant time via bcrypt. A mismatch maps to
// ErrInvalidCredentials; anything else (malformed stored value, including
// provider sentinels that are not hashes at all) surfaces as its own error
// so callers can tell a bad password from a broken comparison.
func (h *BcryptHasher) Verify(password, encoded string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domerrors.ErrInvalidCredentials
	}
	return err
}

// Ensure BcryptHasher implements ports.PasswordHasher.
var _ ports.PasswordHasher = (*BcryptHasher)(nil)
