package salt

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// SaltGenerator produces random salts.
type SaltGenerator interface {
	// Generate returns exactly n lowercase hexadecimal characters.
	// n must be in [1, MaxSaltLength].
	Generate(n int) (string, error)
}

// uuidSalt derives salts from random (version 4) UUIDs.
type uuidSalt struct{}

// UUIDSalt returns a generator that renders a random UUID as 32 hex
// characters, strips the separators, and truncates to the requested length.
//
// The version and variant nibbles of the UUID are fixed, so salts longer
// than 12 characters are not uniformly random in every position.
func UUIDSalt() SaltGenerator {
	return uuidSalt{}
}

func (uuidSalt) Generate(n int) (string, error) {
	if n < 1 || n > MaxSaltLength {
		return "", newConfigError(n, n)
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSaltGeneration, err)
	}

	return strings.ReplaceAll(id.String(), "-", "")[:n], nil
}
