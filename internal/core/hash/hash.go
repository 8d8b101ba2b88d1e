// Package hash implements one-way password hashing backed by bcrypt.
//
// bcrypt salts internally, so two hashes of the same plaintext differ but
// both verify, and its comparison runs in constant time.
package hash

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/playgroundhq/playground-api/internal/core/domain"
)

// Hasher hashes and verifies passwords.
type Hasher struct {
	cost int
}

// New returns a Hasher using bcrypt's default cost.
func New() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// Hash derives an opaque hash from plaintext. Empty input is rejected so an
// empty secret can never be hashed and stored.
func (h *Hasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", domain.ErrInvalidInput
	}
	out, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether plaintext produced hash. A mismatch is a normal
// false result, never an error.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
