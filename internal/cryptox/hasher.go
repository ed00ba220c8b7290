// Package cryptox implements the credential hasher: a deterministic one-way
// digest of a plaintext password and its constant-time verification.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staykonnect/internal/common"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Supported digest algorithms.
const (
	AlgorithmSHA256     = "sha256"
	AlgorithmSHA3256    = "sha3-256"
	AlgorithmBLAKE2b256 = "blake2b-256"
)

// Hasher turns a plaintext credential into a verifiable digest.
type Hasher interface {
	Hash(plaintext []byte) string
	Verify(plaintext []byte, digest string) bool
}

type digestHasher struct {
	name string
	sum  func([]byte) []byte
}

// NewHasher returns a Hasher for the named algorithm. An unknown name yields
// common.ErrUnsupportedAlgorithm; callers treat that as a startup failure.
func NewHasher(algorithm string) (Hasher, error) {
	switch strings.ToLower(strings.TrimSpace(algorithm)) {
	case AlgorithmSHA256, "":
		return &digestHasher{name: AlgorithmSHA256, sum: func(b []byte) []byte {
			s := sha256.Sum256(b)
			return s[:]
		}}, nil
	case AlgorithmSHA3256:
		return &digestHasher{name: AlgorithmSHA3256, sum: func(b []byte) []byte {
			s := sha3.Sum256(b)
			return s[:]
		}}, nil
	case AlgorithmBLAKE2b256:
		return &digestHasher{name: AlgorithmBLAKE2b256, sum: func(b []byte) []byte {
			s := blake2b.Sum256(b)
			return s[:]
		}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedAlgorithm, algorithm)
	}
}

// MustHasher is NewHasher for fixed, known-good algorithm names.
func MustHasher(algorithm string) Hasher {
	h, err := NewHasher(algorithm)
	if err != nil {
		panic(err)
	}
	return h
}

// Hash returns the lowercase hex digest of plaintext.
func (h *digestHasher) Hash(plaintext []byte) string {
	return hex.EncodeToString(h.sum(plaintext))
}

// Verify reports whether plaintext hashes to digest.
func (h *digestHasher) Verify(plaintext []byte, digest string) bool {
	candidate := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(strings.ToLower(digest))) == 1
}

func (h *digestHasher) String() string {
	return h.name
}
