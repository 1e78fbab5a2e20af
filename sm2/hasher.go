package sm2

import (
	"crypto/sha256"
	"fmt"

	"github.com/tjfoc/gmsm/sm3"
	"golang.org/x/crypto/blake2b"
)

// Hasher is the message digest consumed by the engine. Sum must be
// deterministic and return a 32-byte digest; the engine interprets it as
// a big-endian integer and reduces it modulo the group order.
//
// The digest covers the raw message only. The Z_A identity prefix of
// GM/T 0003.2 is not prepended.
type Hasher interface {
	// Name identifies the hash function.
	Name() string
	// Sum returns the 32-byte digest of msg.
	Sum(msg []byte) []byte
}

// SHA256Hasher implements Hasher using SHA-256.
// This is the default hasher.
type SHA256Hasher struct{}

// Name implements Hasher.Name.
func (h *SHA256Hasher) Name() string { return "sha256" }

// Sum implements Hasher.Sum.
func (h *SHA256Hasher) Sum(msg []byte) []byte {
	digest := sha256.Sum256(msg)
	return digest[:]
}

// SM3Hasher implements Hasher using SM3, the hash function the SM2
// standard pairs with.
type SM3Hasher struct{}

// Name implements Hasher.Name.
func (h *SM3Hasher) Name() string { return "sm3" }

// Sum implements Hasher.Sum.
func (h *SM3Hasher) Sum(msg []byte) []byte {
	return sm3.Sm3Sum(msg)
}

// Blake2bHasher implements Hasher using BLAKE2b-256.
type Blake2bHasher struct{}

// Name implements Hasher.Name.
func (h *Blake2bHasher) Name() string { return "blake2b" }

// Sum implements Hasher.Sum.
func (h *Blake2bHasher) Sum(msg []byte) []byte {
	digest := blake2b.Sum256(msg)
	return digest[:]
}

// HasherByName returns the built-in hasher called name ("sha256", "sm3"
// or "blake2b").
func HasherByName(name string) (Hasher, error) {
	switch name {
	case "sha256":
		return &SHA256Hasher{}, nil
	case "sm3":
		return &SM3Hasher{}, nil
	case "blake2b":
		return &Blake2bHasher{}, nil
	default:
		return nil, fmt.Errorf("unknown hasher %q", name)
	}
}
