package sm2

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/sm2/group"
)

// KeyPair holds a private scalar D and its public point Q = D*G. Q is
// computed once, when the pair is created.
type KeyPair struct {
	D group.Scalar
	Q group.Point
}

// PrivateKeyBytes returns the 32-byte big-endian private scalar.
func (k *KeyPair) PrivateKeyBytes() []byte {
	return k.D.Bytes()
}

// PublicKeyBytes returns the encoded public point.
func (k *KeyPair) PublicKeyBytes() []byte {
	return k.Q.Bytes()
}

// GenerateKey draws a private scalar from rng and derives its public key.
func (e *Engine) GenerateKey(rng io.Reader) (*KeyPair, error) {
	for {
		d, err := e.group.RandomScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("failed to draw private key: %w", err)
		}
		kp, err := e.NewKeyPair(d)
		if errors.Is(err, ErrInvalidPrivateKey) {
			// d == N-1; draw again
			continue
		}
		return kp, err
	}
}

// NewKeyPair derives the key pair for the private scalar d, which must lie
// in [1, N-2].
func (e *Engine) NewKeyPair(d group.Scalar) (*KeyPair, error) {
	v := new(big.Int).SetBytes(d.Bytes())
	if v.Sign() == 0 || v.Cmp(e.maxPrivate) > 0 {
		return nil, ErrInvalidPrivateKey
	}
	return &KeyPair{
		D: e.group.NewScalar().Set(d),
		Q: e.mult.BaseMult(d),
	}, nil
}

// ParsePrivateKey decodes a big-endian private scalar and derives its key
// pair. Values that are not already reduced are rejected.
func (e *Engine) ParsePrivateKey(data []byte) (*KeyPair, error) {
	v := new(big.Int).SetBytes(data)
	if v.Sign() == 0 || v.Cmp(e.maxPrivate) > 0 {
		return nil, ErrInvalidPrivateKey
	}
	return e.NewKeyPair(e.scalarFromBig(v))
}

// ParsePublicKey decodes a public point. The identity is rejected.
func (e *Engine) ParsePublicKey(data []byte) (group.Point, error) {
	q, err := e.group.NewPoint().SetBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	if q.IsIdentity() {
		return nil, ErrInvalidPublicKey
	}
	return q, nil
}
