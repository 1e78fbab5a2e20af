package sm2p256

import (
	"errors"
	"math/big"

	"github.com/f3rmion/sm2/group"
)

// Scalar represents an integer modulo the order N of the SM2 base point.
// It implements [group.Scalar] using big.Int with modular arithmetic.
//
// All arithmetic operations reduce results modulo N. Scalars never share
// arithmetic with field elements, which are reduced modulo P.
type Scalar struct {
	inner *big.Int
}

// newScalar creates a new scalar initialized to zero.
func newScalar() *Scalar {
	return &Scalar{inner: new(big.Int)}
}

// Add sets s to a + b (mod N) and returns s.
func (s *Scalar) Add(a, b group.Scalar) group.Scalar {
	s.inner = fn.add(a.(*Scalar).inner, b.(*Scalar).inner)
	return s
}

// Sub sets s to a - b (mod N) and returns s.
func (s *Scalar) Sub(a, b group.Scalar) group.Scalar {
	s.inner = fn.sub(a.(*Scalar).inner, b.(*Scalar).inner)
	return s
}

// Mul sets s to a * b (mod N) and returns s.
func (s *Scalar) Mul(a, b group.Scalar) group.Scalar {
	s.inner = fn.mul(a.(*Scalar).inner, b.(*Scalar).inner)
	return s
}

// Negate sets s to -a (mod N) and returns s.
func (s *Scalar) Negate(a group.Scalar) group.Scalar {
	s.inner = fn.sub(zero, a.(*Scalar).inner)
	return s
}

// Invert sets s to a^(-1) (mod N) and returns s.
// Returns an error if a is zero, as zero has no multiplicative inverse.
func (s *Scalar) Invert(a group.Scalar) (group.Scalar, error) {
	aScalar := a.(*Scalar)
	if aScalar.IsZero() {
		return nil, errors.New("cannot invert zero scalar")
	}
	s.inner = fn.inverse(aScalar.inner)
	return s, nil
}

// Set copies the value of a into s and returns s.
func (s *Scalar) Set(a group.Scalar) group.Scalar {
	s.inner = new(big.Int).Set(a.(*Scalar).inner)
	return s
}

// Bytes returns the scalar as a 32-byte big-endian representation.
func (s *Scalar) Bytes() []byte {
	out := make([]byte, coordinateSize)
	s.inner.FillBytes(out)
	return out
}

// SetBytes sets s from a big-endian byte slice and returns s.
// The value is reduced modulo N.
func (s *Scalar) SetBytes(data []byte) (group.Scalar, error) {
	s.inner = fn.reduce(new(big.Int).SetBytes(data))
	return s, nil
}

// Equal reports whether s and b represent the same scalar value.
func (s *Scalar) Equal(b group.Scalar) bool {
	return s.inner.Cmp(b.(*Scalar).inner) == 0
}

// IsZero reports whether s is the zero scalar.
func (s *Scalar) IsZero() bool {
	return s.inner.Sign() == 0
}

// BitLen returns the bit length of s.
func (s *Scalar) BitLen() int {
	return s.inner.BitLen()
}

// Bit returns bit i of s.
func (s *Scalar) Bit(i int) uint {
	return s.inner.Bit(i)
}

// BigInt returns a copy of the scalar value.
func (s *Scalar) BigInt() *big.Int {
	return new(big.Int).Set(s.inner)
}
