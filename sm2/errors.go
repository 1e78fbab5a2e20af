package sm2

import "errors"

var (
	// ErrInvalidPrivateKey is returned for a private scalar outside
	// [1, N-2]. N-1 is excluded because 1+d must be invertible.
	ErrInvalidPrivateKey = errors.New("sm2: invalid private key")

	// ErrInvalidPublicKey is returned when a public key cannot be decoded
	// or is the identity.
	ErrInvalidPublicKey = errors.New("sm2: invalid public key")

	// ErrDegenerateNonce is returned by SignWithNonce when the supplied
	// nonce yields r == 0, r + k == N or s == 0.
	ErrDegenerateNonce = errors.New("sm2: degenerate nonce")

	// ErrSignRetriesExhausted is returned when MaxSignAttempts nonces in
	// a row were degenerate. With a working random source this does not
	// happen in practice.
	ErrSignRetriesExhausted = errors.New("sm2: signing retries exhausted")

	// ErrInvalidSignatureEncoding is returned by ParseSignature.
	ErrInvalidSignatureEncoding = errors.New("sm2: invalid signature encoding")
)
