package sm2p256

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/f3rmion/sm2/group"
)

// Curve implements [group.Group] for the SM2 recommended curve.
//
// Curve is a zero-sized type. Create an instance with &Curve{} or
// new(Curve).
type Curve struct{}

// Name returns the curve's registered name.
func (c *Curve) Name() string {
	return "sm2p256v1"
}

// NewScalar returns a new scalar initialized to zero.
func (c *Curve) NewScalar() group.Scalar {
	return newScalar()
}

// NewPoint returns a new point initialized to the point at infinity.
func (c *Curve) NewPoint() group.Point {
	return &Point{}
}

// Generator returns the base point G.
func (c *Curve) Generator() group.Point {
	return &Point{
		x:      fieldElement{n: curveGx},
		y:      fieldElement{n: curveGy},
		finite: true,
	}
}

// RandomScalar draws a scalar uniformly from [1, N-1] using r.
func (c *Curve) RandomScalar(r io.Reader) (group.Scalar, error) {
	k, err := rand.Int(r, nMinusOne)
	if err != nil {
		return nil, err
	}
	k.Add(k, big.NewInt(1))
	return &Scalar{inner: k}, nil
}

// Order returns N as a big-endian byte slice.
func (c *Curve) Order() []byte {
	return curveN.Bytes()
}
