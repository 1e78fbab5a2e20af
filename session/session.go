package session

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/f3rmion/sm2/group"
	"github.com/f3rmion/sm2/sm2"
)

// Signer owns a key pair and the randomness source used to draw nonces.
// Create instances using [NewSigner] or [Restore].
//
// A Signer is safe for concurrent use. Calls to Sign are serialised on the
// randomness source; the curve arithmetic itself shares nothing mutable.
type Signer struct {
	mu     sync.Mutex
	engine *sm2.Engine
	rng    io.Reader
	key    *sm2.KeyPair
}

// NewSigner generates a fresh key pair with rng and returns a Signer that
// keeps drawing nonces from the same source.
//
// Parameters:
//   - engine: The configured engine (group, hash, optimization strategy)
//   - rng: A cryptographically secure source, typically crypto/rand.Reader
func NewSigner(engine *sm2.Engine, rng io.Reader) (*Signer, error) {
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if rng == nil {
		return nil, errors.New("randomness source is required")
	}

	key, err := engine.GenerateKey(rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	return &Signer{
		engine: engine,
		rng:    rng,
		key:    key,
	}, nil
}

// Restore wraps a previously saved key pair.
// Use this when loading a signer from persistent storage.
func Restore(engine *sm2.Engine, rng io.Reader, key *sm2.KeyPair) (*Signer, error) {
	if engine == nil {
		return nil, errors.New("engine is required")
	}
	if rng == nil {
		return nil, errors.New("randomness source is required")
	}
	if key == nil || key.D == nil || key.Q == nil {
		return nil, sm2.ErrInvalidPrivateKey
	}

	return &Signer{
		engine: engine,
		rng:    rng,
		key:    key,
	}, nil
}

// PublicKey returns the signer's public point.
func (s *Signer) PublicKey() group.Point {
	return s.key.Q
}

// KeyPair returns the underlying key pair for advanced use cases.
func (s *Signer) KeyPair() *sm2.KeyPair {
	return s.key
}

// Engine returns the engine the signer was created with.
func (s *Signer) Engine() *sm2.Engine {
	return s.engine
}
