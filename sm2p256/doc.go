// Package sm2p256 implements the SM2 recommended 256-bit prime-field
// Weierstrass curve as a [group.Group].
//
// The curve is defined by the equation:
//
//	y^2 = x^3 + a*x + b  (mod p)
//
// with the domain parameters p, a, b, G and n fixed by GM/T 0003.5-2012.
//
// Arithmetic is split into two distinct types. Field elements (integers
// modulo p) are unexported and only ever appear as point coordinates.
// Scalars (integers modulo n) are exported as [Scalar] and are the only
// integers the signature layer handles. The two moduli cannot be mixed
// without a type conversion.
//
// Points use affine coordinates with an explicit infinity flag. The group
// law checks the degenerate cases (identity operands, P + (-P), vertical
// tangents) before any inversion takes place.
//
// # Security
//
// The implementation is built on math/big and is not constant time.
package sm2p256
