package session

import (
	"errors"

	"github.com/f3rmion/sm2/group"
	"github.com/f3rmion/sm2/sm2"
)

// ErrVerificationFailed is returned by [Verify] for a signature that does
// not check out.
var ErrVerificationFailed = errors.New("signature verification failed")

// Sign produces a signature over message using a fresh nonce drawn from
// the signer's randomness source.
func (s *Signer) Sign(message []byte) (*sm2.Signature, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Sign(s.rng, s.key, message)
}

// Verify checks whether a signature is valid for the given message and
// public key.
//
// Returns nil if the signature is valid, or ErrVerificationFailed.
func Verify(engine *sm2.Engine, message []byte, sig *sm2.Signature, pub group.Point) error {
	if !engine.Verify(message, sig, pub) {
		return ErrVerificationFailed
	}
	return nil
}
