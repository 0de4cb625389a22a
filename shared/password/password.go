package password

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrEmptyPassword   = errors.New("password cannot be empty")
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

// Hash generates a bcrypt hash of the password
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(bytes), nil
}

// IsHash reports whether stored looks like a bcrypt hash.
func IsHash(stored string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}

	return false
}

// Verify checks the password against a stored value. Rows written before hashing was
// enabled hold the plain value; those are compared exactly, ignoring CHAR padding.
func Verify(password, stored string) error {
	if password == "" || stored == "" {
		return ErrInvalidPassword
	}

	if !IsHash(stored) {
		if subtle.ConstantTimeCompare([]byte(password), []byte(strings.TrimRight(stored, " "))) != 1 {
			return ErrInvalidPassword
		}

		return nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(stored)), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidPassword
		}

		return fmt.Errorf("failed to verify password: %w", err)
	}

	return nil
}
