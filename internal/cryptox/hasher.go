// Package cryptox provides the one-way credential hashing seam used to
// store and verify account passwords.
package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/mycontacts/internal/common"
)

// Supported hashing algorithms.
const (
	AlgorithmSHA256   = "sha256"
	AlgorithmArgon2id = "argon2id"
)

// Hasher is a deterministic one-way transform over raw credentials.
// Equal inputs must always produce equal outputs, so stored and supplied
// secrets can be compared hash-to-hash.
type Hasher interface {
	Hash(raw string) (string, error)
}

// SHA256Hasher digests the credential with SHA-256 and encodes the result
// with standard Base64.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(raw string) (string, error) {
	sum := sha256.Sum256([]byte(raw))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

// Argon2Hasher derives a 32-byte argon2id key from the credential using a
// fixed salt, which keeps the transform deterministic. The salt comes from
// configuration and must be non-empty.
type Argon2Hasher struct {
	salt []byte
}

func (h Argon2Hasher) Hash(raw string) (string, error) {
	if len(h.salt) == 0 {
		return "", fmt.Errorf("%w: argon2id requires a non-empty salt", common.ErrHasherUnavailable)
	}
	key := argon2.IDKey([]byte(raw), h.salt, 1, 64*1024, 4, 32)
	return base64.StdEncoding.EncodeToString(key), nil
}

// New returns the hasher for the configured algorithm. An unknown algorithm
// yields ErrHasherUnavailable; callers are expected to treat this as fatal.
func New(algorithm, salt string) (Hasher, error) {
	switch algorithm {
	case AlgorithmSHA256:
		return SHA256Hasher{}, nil
	case AlgorithmArgon2id:
		if salt == "" {
			return nil, fmt.Errorf("%w: argon2id requires a non-empty salt", common.ErrHasherUnavailable)
		}
		return Argon2Hasher{salt: []byte(salt)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", common.ErrHasherUnavailable, algorithm)
	}
}
