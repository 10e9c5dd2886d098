package salt

import (
	"context"
	"crypto/subtle"
	"math/rand/v2"
	"time"
)

// Codec encodes plaintexts as salt || hex(digest(salt || plaintext)) and
// verifies candidates against such values.
//
// A Codec is immutable after construction and safe for concurrent use.
type Codec struct {
	config   Config
	digester Digester
	salts    SaltGenerator
}

// New creates a Codec with the default [16, 32] salt length range, the
// builtin digester, and the UUID salt generator, then applies opts.
//
// The salt length range is validated here, once. An invalid range, or a nil
// digester or salt generator, returns a *ConfigError wrapping ErrConfig.
func New(opts ...Option) (*Codec, error) {
	c := newDefault()
	for _, opt := range opts {
		opt(c)
	}

	if err := c.config.Validate(); err != nil {
		return nil, err
	}
	if c.digester == nil {
		return nil, newComponentError("digester")
	}
	if c.salts == nil {
		return nil, newComponentError("salt generator")
	}

	emitCodecCreated(context.Background(), c.config)
	return c, nil
}

// newDefault builds a codec from defaults that are valid by construction.
func newDefault() *Codec {
	return &Codec{
		config:   DefaultConfig(),
		digester: Digests(),
		salts:    UUIDSalt(),
	}
}

// Config returns the codec's salt length range.
func (c *Codec) Config() Config {
	return c.config
}

// Encode returns salt || digestHex for plaintext under algorithm.
// The algorithm name is case-insensitive.
func (c *Codec) Encode(plaintext, algorithm string) (string, error) {
	return c.EncodeContext(context.Background(), plaintext, algorithm)
}

// EncodeContext is Encode with ctx passed to emitted signals.
func (c *Codec) EncodeContext(ctx context.Context, plaintext, algorithm string) (string, error) {
	start := time.Now()
	emitEncodeStart(ctx, algorithm)

	encoded, saltLength, err := c.encode(plaintext, algorithm)
	emitEncodeComplete(ctx, algorithm, saltLength, len(encoded), time.Since(start), err)
	return encoded, err
}

func (c *Codec) encode(plaintext, algorithm string) (string, int, error) {
	algo, err := parseAlgorithm(algorithm, "encode")
	if err != nil {
		return "", 0, err
	}

	saltLength := c.saltLength()
	s, err := c.salts.Generate(saltLength)
	if err != nil {
		return "", 0, err
	}

	digest, err := c.digester.Digest(algo, []byte(s+plaintext))
	if err != nil {
		return "", 0, err
	}

	return s + digest, saltLength, nil
}

// saltLength draws uniformly from [SaltMinLength, SaltMaxLength].
func (c *Codec) saltLength() int {
	return c.config.SaltMinLength + rand.IntN(c.config.SaltMaxLength-c.config.SaltMinLength+1)
}

// Verify reports whether plaintext produced encoded under algorithm.
//
// A wrong plaintext returns false and a nil error. Errors are reserved for
// unsupported algorithms (ErrUnsupportedAlgorithm) and values too short to
// hold a digest (ErrMalformedEncodedValue).
func (c *Codec) Verify(plaintext, encoded, algorithm string) (bool, error) {
	return c.VerifyContext(context.Background(), plaintext, encoded, algorithm)
}

// VerifyContext is Verify with ctx passed to emitted signals.
func (c *Codec) VerifyContext(ctx context.Context, plaintext, encoded, algorithm string) (bool, error) {
	start := time.Now()
	emitVerifyStart(ctx, algorithm)

	matched, err := c.verify(plaintext, encoded, algorithm)
	emitVerifyComplete(ctx, algorithm, len(encoded), time.Since(start), matched, err)
	return matched, err
}

func (c *Codec) verify(plaintext, encoded, algorithm string) (bool, error) {
	algo, err := parseAlgorithm(algorithm, "verify")
	if err != nil {
		return false, err
	}

	s, expected, err := split(encoded, algo)
	if err != nil {
		return false, err
	}

	actual, err := c.digester.Digest(algo, []byte(s+plaintext))
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare([]byte(actual), []byte(expected)) == 1, nil
}

// Split separates an encoded value into its salt and digest parts using the
// fixed digest length of algorithm. The salt may be empty.
func Split(encoded, algorithm string) (salt, digest string, err error) {
	algo, err := parseAlgorithm(algorithm, "split")
	if err != nil {
		return "", "", err
	}
	return split(encoded, algo)
}

func split(encoded string, algo Algorithm) (string, string, error) {
	n := hexLengths[algo]
	if len(encoded) < n {
		return "", "", newFormatError(algo, len(encoded))
	}
	boundary := len(encoded) - n
	return encoded[:boundary], encoded[boundary:], nil
}

// std is the package-level codec used by Encode and Verify.
var std = newDefault()

// Encode encodes plaintext under algorithm with the default codec.
func Encode(plaintext, algorithm string) (string, error) {
	return std.Encode(plaintext, algorithm)
}

// Verify verifies plaintext against encoded with the default codec.
func Verify(plaintext, encoded, algorithm string) (bool, error) {
	return std.Verify(plaintext, encoded, algorithm)
}
