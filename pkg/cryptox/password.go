// Package cryptox provides the credential hashing primitives for stride.
package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from a plaintext password.
// Each call produces a different encoded string (bcrypt embeds a fresh
// random salt) but every output verifies against the original input.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a stored bcrypt hash.
// A non-nil error means "no match" whether the password is wrong or the
// stored hash is malformed; callers must not distinguish the two.
func CheckPassword(password, encodedHash string) error {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
}
