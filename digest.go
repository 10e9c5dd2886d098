package salt

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"strings"

	simd "github.com/minio/sha256-simd"

	"github.com/zoobzio/salt/internal/md2"
)

// Digester computes digests under a named algorithm.
type Digester interface {
	// Digest returns the lowercase hex-encoded digest of data.
	// The result length is always HexLength(algo).
	// Returns an error wrapping ErrUnsupportedAlgorithm for unknown algorithms.
	Digest(algo Algorithm, data []byte) (string, error)
}

// hashDigester implements Digester over hash.Hash constructors.
type hashDigester struct {
	hashes map[Algorithm]func() hash.Hash
}

// Digests returns the builtin digester covering every supported algorithm.
// It holds no per-call state and is safe for concurrent use.
func Digests() Digester {
	return &hashDigester{hashes: builtinHashes()}
}

func (d *hashDigester) Digest(algo Algorithm, data []byte) (string, error) {
	newHash, ok := d.hashes[Algorithm(strings.ToUpper(string(algo)))]
	if !ok {
		return "", newAlgorithmError(string(algo), "digest")
	}

	h := newHash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// builtinHashes returns the default hash constructor registry.
func builtinHashes() map[Algorithm]func() hash.Hash {
	return map[Algorithm]func() hash.Hash{
		MD2:    md2.New,
		MD5:    md5.New,
		SHA1:   sha1.New,
		SHA224: sha256.New224,
		SHA256: simd.New,
		SHA384: sha512.New384,
		SHA512: sha512.New,
	}
}
