package group

import (
	"io"
)

// Scalar represents an element of the scalar field associated with a
// cryptographic group. Scalars are integers modulo the group order and
// are used as private keys, nonces and signature components.
//
// All arithmetic methods use a mutable receiver pattern: they modify
// the receiver, store the result in it, and return it. This allows for
// efficient method chaining while minimizing memory allocations.
//
// Implementations must ensure all operations produce results in the
// valid range [0, order).
type Scalar interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Scalar) Scalar
	// Sub sets the receiver to a-b and returns it.
	Sub(a, b Scalar) Scalar
	// Mul sets the receiver to a*b and returns it.
	Mul(a, b Scalar) Scalar
	// Negate sets the receiver to -a and returns it.
	Negate(a Scalar) Scalar
	// Invert sets the receiver to a^{-1} and returns it.
	// Returns an error if a is zero.
	Invert(a Scalar) (Scalar, error)
	// Set sets the receiver to a and returns it.
	Set(a Scalar) Scalar
	// Bytes returns the canonical fixed-width big-endian encoding.
	Bytes() []byte
	// SetBytes sets the receiver from a big-endian byte slice, reducing
	// it modulo the group order, and returns it.
	SetBytes(data []byte) (Scalar, error)
	// Equal reports whether the receiver equals b.
	Equal(b Scalar) bool
	// IsZero reports whether the receiver is zero.
	IsZero() bool
	// BitLen returns the length of the absolute value in bits.
	BitLen() int
	// Bit returns the value of the i'th bit, counting from the least
	// significant bit.
	Bit(i int) uint
}

// Point represents an element of a cryptographic group, typically a point
// on an elliptic curve in affine coordinates.
//
// Like [Scalar], all arithmetic methods use a mutable receiver pattern.
// Arguments are only read, never modified, so points may be shared
// between goroutines as long as nobody uses them as a receiver.
//
// The identity element (point at infinity) is the additive identity:
// P + Identity = P for all points P.
type Point interface {
	// Add sets the receiver to a+b and returns it.
	Add(a, b Point) Point
	// Double sets the receiver to a+a and returns it.
	Double(a Point) Point
	// Negate sets the receiver to -a and returns it.
	Negate(a Point) Point
	// Set sets the receiver to a and returns it.
	Set(a Point) Point
	// Bytes returns the canonical byte representation of the point.
	Bytes() []byte
	// SetBytes sets the receiver from a byte slice and returns it.
	// Returns an error if the data is invalid or not on the curve.
	SetBytes(data []byte) (Point, error)
	// XBytes returns the affine x coordinate as a fixed-width big-endian
	// byte slice, or nil for the identity.
	XBytes() []byte
	// Equal reports whether the receiver equals b.
	Equal(b Point) bool
	// IsIdentity reports whether the receiver is the identity element.
	IsIdentity() bool
}

// Group defines a prime-order cryptographic group suitable for SM2-style
// signatures. It provides factory methods for creating scalars and points,
// access to the group's generator, and random scalar generation.
//
// Example usage:
//
//	g := &sm2p256.Curve{}
//	k, _ := g.RandomScalar(rand.Reader)
//	point := scalarmult.DoubleAndAdd(g, k, g.Generator())
type Group interface {
	// Name returns a short identifier for the group.
	Name() string
	// NewScalar returns a new zero scalar.
	NewScalar() Scalar
	// NewPoint returns a new identity point.
	NewPoint() Point
	// Generator returns the group's base point.
	Generator() Point
	// RandomScalar returns a scalar drawn uniformly from [1, order-1].
	RandomScalar(r io.Reader) (Scalar, error)
	// Order returns the group order as a big-endian byte slice.
	Order() []byte
}
