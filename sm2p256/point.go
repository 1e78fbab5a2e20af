package sm2p256

import (
	"errors"
	"math/big"

	"github.com/f3rmion/sm2/group"
)

var (
	// ErrInvalidEncoding is returned by SetBytes for malformed input.
	ErrInvalidEncoding = errors.New("sm2p256: invalid point encoding")
	// ErrNotOnCurve is returned when decoded coordinates do not satisfy
	// the curve equation.
	ErrNotOnCurve = errors.New("sm2p256: point is not on the curve")
)

const (
	tagInfinity     = 0x00
	tagUncompressed = 0x04

	uncompressedSize = 1 + 2*coordinateSize
)

// Point represents a point on the SM2 curve in affine coordinates.
// It implements [group.Point].
//
// The zero value is the point at infinity. Every finite point produced by
// this package satisfies the curve equation.
type Point struct {
	x, y   fieldElement
	finite bool
}

// NewPoint returns the affine point (x, y), or [ErrNotOnCurve] if the
// coordinates are out of range or do not satisfy the curve equation.
func NewPoint(x, y *big.Int) (*Point, error) {
	if x.Sign() < 0 || y.Sign() < 0 || x.Cmp(curveP) >= 0 || y.Cmp(curveP) >= 0 {
		return nil, ErrNotOnCurve
	}
	p := &Point{
		x:      fieldElement{n: new(big.Int).Set(x)},
		y:      fieldElement{n: new(big.Int).Set(y)},
		finite: true,
	}
	if !p.IsOnCurve() {
		return nil, ErrNotOnCurve
	}
	return p, nil
}

// addPoints is the affine group law. Degenerate inputs are dispatched
// explicitly so that no inversion ever sees a zero denominator.
func addPoints(a, b *Point) Point {
	if !a.finite {
		return *b
	}
	if !b.finite {
		return *a
	}
	if a.x.equal(b.x) {
		if a.y.equal(b.y) {
			return doublePoint(a)
		}
		// b == -a
		return Point{}
	}

	lambda := b.y.sub(a.y).mul(b.x.sub(a.x).inverse())
	x3 := lambda.square().sub(a.x).sub(b.x)
	y3 := lambda.mul(a.x.sub(x3)).sub(a.y)
	return Point{x: x3, y: y3, finite: true}
}

func doublePoint(a *Point) Point {
	// A vertical tangent (y == 0) meets the curve again at infinity.
	if !a.finite || a.y.isZero() {
		return Point{}
	}

	num := feThree.mul(a.x.square()).add(feA)
	lambda := num.mul(a.y.add(a.y).inverse())
	x3 := lambda.square().sub(a.x.add(a.x))
	y3 := lambda.mul(a.x.sub(x3)).sub(a.y)
	return Point{x: x3, y: y3, finite: true}
}

// Add sets p to a + b and returns p.
func (p *Point) Add(a, b group.Point) group.Point {
	*p = addPoints(a.(*Point), b.(*Point))
	return p
}

// Double sets p to 2a and returns p.
func (p *Point) Double(a group.Point) group.Point {
	*p = doublePoint(a.(*Point))
	return p
}

// Negate sets p to -a, the point with the same x and negated y.
func (p *Point) Negate(a group.Point) group.Point {
	aPoint := a.(*Point)
	if !aPoint.finite {
		*p = Point{}
		return p
	}
	*p = Point{x: aPoint.x, y: aPoint.y.neg(), finite: true}
	return p
}

// Set copies the value of a into p and returns p.
func (p *Point) Set(a group.Point) group.Point {
	*p = *a.(*Point)
	return p
}

// Bytes returns the SEC1 uncompressed encoding 0x04 || X || Y.
// The point at infinity encodes as the single byte 0x00. A nil point has
// no encoding.
func (p *Point) Bytes() []byte {
	if p == nil {
		return nil
	}
	if !p.finite {
		return []byte{tagInfinity}
	}
	out := make([]byte, 0, uncompressedSize)
	out = append(out, tagUncompressed)
	out = append(out, p.x.bytes()...)
	out = append(out, p.y.bytes()...)
	return out
}

// SetBytes sets p from an encoding produced by Bytes and returns p.
// Returns an error if the data does not represent a valid curve point.
func (p *Point) SetBytes(data []byte) (group.Point, error) {
	if len(data) == 1 && data[0] == tagInfinity {
		*p = Point{}
		return p, nil
	}
	if len(data) != uncompressedSize || data[0] != tagUncompressed {
		return nil, ErrInvalidEncoding
	}
	x, ok := setFieldBytes(data[1 : 1+coordinateSize])
	if !ok {
		return nil, ErrInvalidEncoding
	}
	y, ok := setFieldBytes(data[1+coordinateSize:])
	if !ok {
		return nil, ErrInvalidEncoding
	}
	q := Point{x: x, y: y, finite: true}
	if !q.IsOnCurve() {
		return nil, ErrNotOnCurve
	}
	*p = q
	return p, nil
}

// XBytes returns the 32-byte big-endian affine x coordinate, or nil for
// the point at infinity.
func (p *Point) XBytes() []byte {
	if p.IsIdentity() {
		return nil
	}
	return p.x.bytes()
}

// Coordinates returns copies of the affine coordinates. Both are nil for
// the point at infinity.
func (p *Point) Coordinates() (x, y *big.Int) {
	if !p.finite {
		return nil, nil
	}
	return new(big.Int).Set(p.x.n), new(big.Int).Set(p.y.n)
}

// Equal reports whether p and b represent the same curve point.
func (p *Point) Equal(b group.Point) bool {
	bPoint := b.(*Point)
	if !p.finite && !bPoint.finite {
		return true
	}
	if p.finite != bPoint.finite {
		return false
	}
	return p.x.equal(bPoint.x) && p.y.equal(bPoint.y)
}

// IsIdentity reports whether p is the point at infinity. A nil point is
// treated as infinity.
func (p *Point) IsIdentity() bool {
	return p == nil || !p.finite
}

// IsOnCurve reports whether p satisfies y^2 = x^3 + a*x + b. The point at
// infinity is considered to be on the curve.
func (p *Point) IsOnCurve() bool {
	if !p.finite {
		return true
	}
	lhs := p.y.square()
	rhs := p.x.square().mul(p.x).add(feA.mul(p.x)).add(feB)
	return lhs.equal(rhs)
}
