// Package testing provides test utilities for salt.
package testing

import (
	"fmt"
	"testing"

	"github.com/zoobzio/salt"
)

// TestSalt is a fixed 16-character salt for deterministic tests.
const TestSalt = "0123456789abcdef"

// fixedSalt returns a prefix of a fixed salt.
type fixedSalt struct {
	salt string
}

// FixedSalt returns a generator that always answers with the first n
// characters of s. Requests longer than s fail.
func FixedSalt(s string) salt.SaltGenerator {
	return fixedSalt{salt: s}
}

func (f fixedSalt) Generate(n int) (string, error) {
	if n < 1 || n > len(f.salt) {
		return "", fmt.Errorf("%w: fixed salt has %d characters, %d requested", salt.ErrSaltGeneration, len(f.salt), n)
	}
	return f.salt[:n], nil
}

// FailingSalt returns a generator whose every call fails with ErrSaltGeneration.
func FailingSalt() salt.SaltGenerator {
	return failingSalt{}
}

type failingSalt struct{}

func (failingSalt) Generate(int) (string, error) {
	return "", salt.ErrSaltGeneration
}

// TestCodec returns a codec that always uses s as its salt.
// len(s) must be a valid salt length.
func TestCodec(tb testing.TB, s string) *salt.Codec {
	tb.Helper()

	c, err := salt.New(
		salt.WithConfig(salt.Config{SaltMinLength: len(s), SaltMaxLength: len(s)}),
		salt.WithSaltGenerator(FixedSalt(s)),
	)
	if err != nil {
		tb.Fatalf("salt.New() error: %v", err)
	}
	return c
}

// Plaintexts returns sample inputs covering empty, ASCII, multi-byte,
// hex-looking, and long plaintexts.
func Plaintexts() []string {
	return []string{
		"",
		"Hello World.",
		"password123",
		"pässwörd ✓ 密码",
		"0123456789abcdef",
		"a plaintext that is considerably longer than any salt or digest involved in this test",
	}
}

// Account is a test type with tagged fields.
type Account struct {
	ID       string `json:"id"`
	Password string `json:"password" salt.digest:"SHA-256"`
	PIN      []byte `json:"pin" salt.digest:"md5"`
	Note     string `json:"note"`
}
