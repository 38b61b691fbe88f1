// internal/pkg/password/password.go
package password

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt cost factor used for all stored credentials.
const Cost = 10

// Hash hashes a plaintext secret after trimming surrounding whitespace.
func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(plain)), Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext secret matches the stored hash.
// The plaintext is trimmed of surrounding whitespace before comparison.
// Any failure (mismatch, malformed hash) yields false; this is a pure check
// and never returns an error to the caller.
func Verify(plain, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(strings.TrimSpace(plain)))
	return err == nil
}
