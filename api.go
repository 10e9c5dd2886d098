// Package salt provides salted digests of plaintexts.
//
// An encoded value is a random hex salt followed by the hex digest of the
// salt and the plaintext:
//
//	encoded = salt || hex(digest(salt || plaintext))
//
// The salt is 16 to 32 lowercase hex characters by default, drawn fresh for
// every call. Because each algorithm produces a digest of fixed length, the
// salt is recovered by cutting that many characters off the end. The encoded
// value does not name its algorithm: store the algorithm next to it, or use
// a Record.
//
// This is a single-pass scheme. It has no work factor and no memory hardness,
// and is not a substitute for argon2 or bcrypt when storing passwords.
//
// # Basic Usage
//
//	encoded, err := salt.Encode("Hello World.", "sha-256")
//	ok, err := salt.Verify("Hello World.", encoded, "sha-256")
//
// A wrong plaintext is not an error: Verify returns false, nil. Errors mean
// the input could not be checked at all:
//
//   - ErrUnsupportedAlgorithm: the algorithm name is not in the table
//   - ErrMalformedEncodedValue: the value is shorter than the digest
//   - ErrConfig: the salt length range is invalid (New only)
//
// # Algorithms
//
// Names are case-insensitive. Digest lengths in hex characters:
//
//   - MD2: 32
//   - MD5: 32
//   - SHA-1: 40
//   - SHA-224: 56
//   - SHA-256: 64
//   - SHA-384: 96
//   - SHA-512: 128
//
// # Configuration
//
//	codec, err := salt.New(
//	    salt.WithConfig(salt.Config{SaltMinLength: 24, SaltMaxLength: 32}),
//	)
//
// # Records
//
// A Record keeps the algorithm with the value. Records can be marshaled
// with any Format; implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Struct Fields
//
// String and []byte fields tagged with salt.digest are encoded in place:
//
//	type Account struct {
//	    Name   string
//	    Secret string `salt.digest:"SHA-256"`
//	}
//
//	n, err := salt.EncodeFields(ctx, codec, &account)
//	ok, err := salt.VerifyField(ctx, codec, &account, "Secret", candidate)
//
// # Signals
//
// Encode and verify emit capitan signals (SignalEncodeComplete,
// SignalVerifyComplete, ...) carrying the algorithm, sizes, and durations.
// Plaintexts, salts, and digests are never emitted.
package salt
