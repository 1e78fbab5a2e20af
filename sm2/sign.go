package sm2

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/f3rmion/sm2/group"
)

// Sign signs msg with key, drawing nonces from rng.
//
// A nonce that yields r == 0, r + k == N or s == 0 is discarded and a fresh
// one is drawn. The loop gives up after MaxSignAttempts draws.
func (e *Engine) Sign(rng io.Reader, key *KeyPair, msg []byte) (*Signature, error) {
	if key == nil {
		return nil, ErrInvalidPrivateKey
	}

	digest := e.hashToScalar(msg)
	for attempt := 0; attempt < MaxSignAttempts; attempt++ {
		k, err := e.group.RandomScalar(rng)
		if err != nil {
			return nil, fmt.Errorf("failed to draw nonce: %w", err)
		}

		sig, err := e.sign(key, digest, k)
		if errors.Is(err, ErrDegenerateNonce) {
			continue
		}
		return sig, err
	}
	return nil, ErrSignRetriesExhausted
}

// SignWithNonce performs a single signing attempt with the caller's nonce
// k. It returns ErrDegenerateNonce instead of retrying.
//
// Reusing k for two different messages reveals the private key. This
// method exists for known-answer tests and analysis, not for production
// signing.
func (e *Engine) SignWithNonce(key *KeyPair, msg []byte, k group.Scalar) (*Signature, error) {
	if key == nil {
		return nil, ErrInvalidPrivateKey
	}
	return e.sign(key, e.hashToScalar(msg), k)
}

func (e *Engine) sign(key *KeyPair, digest, k group.Scalar) (*Signature, error) {
	point := e.mult.BaseMult(k)
	if point.IsIdentity() {
		return nil, ErrDegenerateNonce
	}

	// r = e + x1 mod N
	r := e.group.NewScalar().Add(digest, e.xToScalar(point))
	if r.IsZero() || e.group.NewScalar().Add(r, k).IsZero() {
		return nil, ErrDegenerateNonce
	}

	// s = (1 + d)^-1 * (k - r*d) mod N
	one, _ := e.group.NewScalar().SetBytes([]byte{1})
	onePlusD := e.group.NewScalar().Add(one, key.D)
	inv, err := e.group.NewScalar().Invert(onePlusD)
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	rd := e.group.NewScalar().Mul(r, key.D)
	s := e.group.NewScalar().Sub(k, rd)
	s = e.group.NewScalar().Mul(inv, s)
	if s.IsZero() {
		return nil, ErrDegenerateNonce
	}

	return &Signature{
		R: new(big.Int).SetBytes(r.Bytes()),
		S: new(big.Int).SetBytes(s.Bytes()),
	}, nil
}

// Verify reports whether sig is a valid signature of msg under pub.
// Malformed input of any kind yields false, including a nil point or a
// point that belongs to another group.
func (e *Engine) Verify(msg []byte, sig *Signature, pub group.Point) bool {
	if sig == nil || pub == nil {
		return false
	}
	if !e.inRange(sig.R) || !e.inRange(sig.S) {
		return false
	}
	// re-decode through our own group so foreign points never reach the
	// arithmetic
	q, err := e.group.NewPoint().SetBytes(pub.Bytes())
	if err != nil || q.IsIdentity() {
		return false
	}

	r := e.scalarFromBig(sig.R)
	s := e.scalarFromBig(sig.S)
	digest := e.hashToScalar(msg)

	t := e.group.NewScalar().Add(r, s)
	if t.IsZero() {
		return false
	}

	// (x1, y1) = s*G + t*Q
	sG := e.mult.BaseMult(s)
	tQ := e.mult.Mult(t, q)
	point := e.group.NewPoint().Add(sG, tQ)
	if point.IsIdentity() {
		return false
	}

	expected := e.group.NewScalar().Add(digest, e.xToScalar(point))
	return r.Equal(expected)
}
