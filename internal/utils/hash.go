package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt cost used when none is configured.
const DefaultPasswordHashCost = 10

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// HashPassword derives a salted bcrypt digest of password with the given
// cost. bcrypt generates a random salt per call, so hashing the same password
// twice yields different digests.
//
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] is replaced with
// DefaultPasswordHashCost.
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultPasswordHashCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate hash from password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword reports whether password matches the bcrypt digest hash.
// A malformed digest is treated as a mismatch.
func CheckPassword(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
