package salt

import "strings"

// Algorithm represents a supported digest algorithm.
// Names are case-insensitive on input; the canonical form is upper case.
// Use these constants in struct tags: `salt.digest:"SHA-256"`
type Algorithm string

const (
	// MD2 produces a 32-character digest. Legacy only.
	MD2 Algorithm = "MD2"

	// MD5 produces a 32-character digest. Legacy only.
	MD5 Algorithm = "MD5"

	// SHA1 produces a 40-character digest.
	SHA1 Algorithm = "SHA-1"

	// SHA224 produces a 56-character digest.
	SHA224 Algorithm = "SHA-224"

	// SHA256 produces a 64-character digest.
	SHA256 Algorithm = "SHA-256"

	// SHA384 produces a 96-character digest.
	SHA384 Algorithm = "SHA-384"

	// SHA512 produces a 128-character digest.
	SHA512 Algorithm = "SHA-512"
)

// hexLengths maps each algorithm to the length of its hex-encoded digest.
// Read-only after init.
var hexLengths = map[Algorithm]int{
	MD2:    32,
	MD5:    32,
	SHA1:   40,
	SHA224: 56,
	SHA256: 64,
	SHA384: 96,
	SHA512: 128,
}

// algorithms lists the supported algorithms in table order.
var algorithms = []Algorithm{MD2, MD5, SHA1, SHA224, SHA256, SHA384, SHA512}

// ParseAlgorithm normalizes name to its canonical upper-case form and
// checks it against the supported set.
func ParseAlgorithm(name string) (Algorithm, error) {
	return parseAlgorithm(name, "parse")
}

// parseAlgorithm is ParseAlgorithm with the rejecting operation recorded.
func parseAlgorithm(name, operation string) (Algorithm, error) {
	algo := Algorithm(strings.ToUpper(name))
	if _, ok := hexLengths[algo]; !ok {
		return "", newAlgorithmError(name, operation)
	}
	return algo, nil
}

// IsValidAlgorithm returns true if the algorithm is a known digest algorithm.
// The check is case-insensitive.
func IsValidAlgorithm(algo Algorithm) bool {
	_, ok := hexLengths[Algorithm(strings.ToUpper(string(algo)))]
	return ok
}

// HexLength returns the fixed length of the hex-encoded digest for algo,
// or 0 if algo is not supported.
func HexLength(algo Algorithm) int {
	return hexLengths[Algorithm(strings.ToUpper(string(algo)))]
}

// Algorithms returns the supported algorithms.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)
	return out
}

// String returns the algorithm name.
func (a Algorithm) String() string {
	return string(a)
}
