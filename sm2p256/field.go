package sm2p256

import (
	"math/big"
)

// modulus implements arithmetic modulo a prime m. Every result is a freshly
// allocated *big.Int in [0, m); inputs are never modified.
type modulus struct {
	m   *big.Int
	exp *big.Int // m-2, the Fermat inversion exponent
}

func newModulus(m *big.Int) *modulus {
	return &modulus{
		m:   m,
		exp: new(big.Int).Sub(m, big.NewInt(2)),
	}
}

func (md *modulus) reduce(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, md.m)
}

func (md *modulus) add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, md.m)
}

func (md *modulus) sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, md.m)
}

func (md *modulus) mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, md.m)
}

// inverse returns a^(m-2) mod m. Zero has no inverse; it maps to zero and
// callers are expected to have ruled that case out.
func (md *modulus) inverse(a *big.Int) *big.Int {
	if a.Sign() == 0 {
		return new(big.Int)
	}
	return new(big.Int).Exp(a, md.exp, md.m)
}

// fieldElement is an integer modulo the curve prime P, always held in
// canonical form [0, P). The wrapped value is never mutated after
// construction, so elements may be copied and shared freely.
type fieldElement struct {
	n *big.Int
}

func newFieldElement(v *big.Int) fieldElement {
	return fieldElement{n: fp.reduce(v)}
}

func (a fieldElement) add(b fieldElement) fieldElement {
	return fieldElement{n: fp.add(a.n, b.n)}
}

func (a fieldElement) sub(b fieldElement) fieldElement {
	return fieldElement{n: fp.sub(a.n, b.n)}
}

func (a fieldElement) mul(b fieldElement) fieldElement {
	return fieldElement{n: fp.mul(a.n, b.n)}
}

func (a fieldElement) square() fieldElement {
	return fieldElement{n: fp.mul(a.n, a.n)}
}

func (a fieldElement) neg() fieldElement {
	return fieldElement{n: fp.sub(zero, a.n)}
}

func (a fieldElement) inverse() fieldElement {
	return fieldElement{n: fp.inverse(a.n)}
}

func (a fieldElement) equal(b fieldElement) bool {
	return a.n.Cmp(b.n) == 0
}

func (a fieldElement) isZero() bool {
	return a.n.Sign() == 0
}

// bytes returns the 32-byte big-endian encoding.
func (a fieldElement) bytes() []byte {
	out := make([]byte, coordinateSize)
	a.n.FillBytes(out)
	return out
}

// setBytes decodes a 32-byte big-endian value and reports whether it was
// already canonical.
func setFieldBytes(data []byte) (fieldElement, bool) {
	v := new(big.Int).SetBytes(data)
	if v.Cmp(curveP) >= 0 {
		return fieldElement{}, false
	}
	return fieldElement{n: v}, true
}
