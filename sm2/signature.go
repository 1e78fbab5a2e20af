package sm2

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// scalarSize is the encoded width of each signature component.
const scalarSize = 32

// SignatureSize is the length of an encoded signature.
const SignatureSize = 2 * scalarSize

// Signature is an SM2 signature (r, s).
type Signature struct {
	R *big.Int
	S *big.Int
}

// Bytes returns the fixed-width encoding r || s, each component 32 bytes
// big-endian. It returns nil if either component is negative or does not
// fit in 32 bytes.
func (sig *Signature) Bytes() []byte {
	if !fits(sig.R) || !fits(sig.S) {
		return nil
	}
	out := make([]byte, SignatureSize)
	sig.R.FillBytes(out[:scalarSize])
	sig.S.FillBytes(out[scalarSize:])
	return out
}

// String returns the 128-digit hex form of Bytes.
func (sig *Signature) String() string {
	return hex.EncodeToString(sig.Bytes())
}

// Equal reports whether both components match.
func (sig *Signature) Equal(other *Signature) bool {
	if sig == nil || other == nil {
		return sig == other
	}
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

// ParseSignature decodes the encoding produced by Bytes. Range checks on
// r and s are left to Verify.
func ParseSignature(data []byte) (*Signature, error) {
	if len(data) != SignatureSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d",
			ErrInvalidSignatureEncoding, len(data), SignatureSize)
	}
	return &Signature{
		R: new(big.Int).SetBytes(data[:scalarSize]),
		S: new(big.Int).SetBytes(data[scalarSize:]),
	}, nil
}

// ParseSignatureHex decodes the form produced by String.
func ParseSignatureHex(s string) (*Signature, error) {
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignatureEncoding, err)
	}
	return ParseSignature(data)
}

func fits(v *big.Int) bool {
	return v != nil && v.Sign() >= 0 && v.BitLen() <= 8*scalarSize
}
