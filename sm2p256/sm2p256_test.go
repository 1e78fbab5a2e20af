package sm2p256

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/f3rmion/sm2/group"
)

func hexInt(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		t.Fatalf("bad hex %q", s)
	}
	return v
}

// randomPoint returns k*G for a random k using repeated doubling and adding
// directly on the group law.
func randomPoint(t *testing.T, g *Curve) *Point {
	t.Helper()
	k, err := g.RandomScalar(rand.Reader)
	if err != nil {
		t.Fatal(err)
	}
	acc := g.NewPoint()
	addend := g.Generator()
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			acc = g.NewPoint().Add(acc, addend)
		}
		addend = g.NewPoint().Double(addend)
	}
	return acc.(*Point)
}

func TestField(t *testing.T) {
	t.Run("CanonicalRange", func(t *testing.T) {
		pMinusOne := newFieldElement(new(big.Int).Sub(curveP, big.NewInt(1)))
		one := newFieldElement(big.NewInt(1))

		if sum := pMinusOne.add(one); !sum.isZero() {
			t.Errorf("(p-1)+1 = %s, want 0", sum.n)
		}
		if diff := newFieldElement(big.NewInt(0)).sub(one); !diff.equal(pMinusOne) {
			t.Errorf("0-1 = %s, want p-1", diff.n)
		}
		if e := newFieldElement(new(big.Int).Neg(big.NewInt(5))); e.n.Sign() < 0 || e.n.Cmp(curveP) >= 0 {
			t.Errorf("negative input not reduced: %s", e.n)
		}
	})

	t.Run("InverseMatchesModInverse", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			v, _ := rand.Int(rand.Reader, curveP)
			if v.Sign() == 0 {
				continue
			}
			got := newFieldElement(v).inverse()
			want := new(big.Int).ModInverse(v, curveP)
			if got.n.Cmp(want) != 0 {
				t.Fatalf("inverse(%s) = %s, want %s", v, got.n, want)
			}
		}
	})

	t.Run("InverseOfZeroIsZero", func(t *testing.T) {
		if inv := newFieldElement(big.NewInt(0)).inverse(); !inv.isZero() {
			t.Error("inverse(0) should signal no inverse with 0")
		}
		if inv := fn.inverse(big.NewInt(0)); inv.Sign() != 0 {
			t.Error("scalar inverse(0) should be 0")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		v, _ := rand.Int(rand.Reader, curveP)
		e := newFieldElement(v)
		back, ok := setFieldBytes(e.bytes())
		if !ok || !back.equal(e) {
			t.Error("field bytes roundtrip failed")
		}
		if _, ok := setFieldBytes(curveP.Bytes()); ok {
			t.Error("p itself must not decode as a field element")
		}
	})
}

func TestScalar(t *testing.T) {
	g := &Curve{}

	t.Run("AddSub", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b, _ := g.RandomScalar(rand.Reader)

		sum := g.NewScalar().Add(a, b)
		diff := g.NewScalar().Sub(sum, b)

		if !diff.Equal(a) {
			t.Error("(a+b)-b != a")
		}
	})

	t.Run("MulInvert", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		aInv, err := g.NewScalar().Invert(a)
		if err != nil {
			t.Fatal(err)
		}

		product := g.NewScalar().Mul(a, aInv)
		one, _ := g.NewScalar().SetBytes([]byte{1})
		if !product.Equal(one) {
			t.Error("a*a^-1 != 1")
		}
	})

	t.Run("InvertZeroFails", func(t *testing.T) {
		_, err := g.NewScalar().Invert(g.NewScalar())
		if err == nil {
			t.Error("expected error inverting zero")
		}
	})

	t.Run("Negate", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		negA := g.NewScalar().Negate(a)

		if !g.NewScalar().Add(a, negA).IsZero() {
			t.Error("a + (-a) != 0")
		}
		if a.Equal(negA) {
			t.Error("a should not equal -a")
		}
	})

	t.Run("SetBytesReducesModN", func(t *testing.T) {
		nPlusTwo := new(big.Int).Add(curveN, big.NewInt(2))
		s, err := g.NewScalar().SetBytes(nPlusTwo.Bytes())
		if err != nil {
			t.Fatal(err)
		}
		two, _ := g.NewScalar().SetBytes([]byte{2})
		if !s.Equal(two) {
			t.Error("N+2 should reduce to 2")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b := a.Bytes()
		if len(b) != 32 {
			t.Fatalf("scalar encoding is %d bytes, want 32", len(b))
		}
		restored, _ := g.NewScalar().SetBytes(b)
		if !restored.Equal(a) {
			t.Error("scalar bytes roundtrip failed")
		}
	})

	t.Run("SetIsACopy", func(t *testing.T) {
		a, _ := g.RandomScalar(rand.Reader)
		b := g.NewScalar().Set(a)
		b.Add(b, b)
		if a.Equal(b) {
			t.Error("mutating a copy changed the original")
		}
	})

	t.Run("RandomScalarRange", func(t *testing.T) {
		for i := 0; i < 64; i++ {
			k, err := g.RandomScalar(rand.Reader)
			if err != nil {
				t.Fatal(err)
			}
			v := k.(*Scalar).BigInt()
			if v.Sign() <= 0 || v.Cmp(curveN) >= 0 {
				t.Fatalf("random scalar %s outside [1, N-1]", v)
			}
		}
	})
}

func TestPoint(t *testing.T) {
	g := &Curve{}

	t.Run("GeneratorOnCurve", func(t *testing.T) {
		if !g.Generator().(*Point).IsOnCurve() {
			t.Fatal("generator is not on the curve")
		}
	})

	t.Run("DoubleGenerator", func(t *testing.T) {
		twoG := g.NewPoint().Double(g.Generator()).(*Point)
		x, y := twoG.Coordinates()
		wantX := hexInt(t, "56cefd60d7c87c000d58ef57fa73ba4d9c0dfa08c08a7331495c2e1da3f2bd52")
		wantY := hexInt(t, "31b7e7e6cc8189f668535ce0f8eaf1bd6de84c182f6c8e716f780d3a970a23c3")
		if x.Cmp(wantX) != 0 || y.Cmp(wantY) != 0 {
			t.Errorf("2G = (%x, %x), want (%x, %x)", x, y, wantX, wantY)
		}
	})

	t.Run("AddIdentity", func(t *testing.T) {
		P := randomPoint(t, g)
		if !g.NewPoint().Add(P, g.NewPoint()).Equal(P) {
			t.Error("P + O != P")
		}
		if !g.NewPoint().Add(g.NewPoint(), P).Equal(P) {
			t.Error("O + P != P")
		}
		if !g.NewPoint().Add(g.NewPoint(), g.NewPoint()).IsIdentity() {
			t.Error("O + O != O")
		}
	})

	t.Run("AddSelfIsDouble", func(t *testing.T) {
		P := randomPoint(t, g)
		sum := g.NewPoint().Add(P, P)
		dbl := g.NewPoint().Double(P)
		if !sum.Equal(dbl) {
			t.Error("P + P != 2P")
		}
		if !sum.(*Point).IsOnCurve() {
			t.Error("2P is not on the curve")
		}
	})

	t.Run("AddNegationIsIdentity", func(t *testing.T) {
		P := randomPoint(t, g)
		negP := g.NewPoint().Negate(P)
		if !g.NewPoint().Add(P, negP).IsIdentity() {
			t.Error("P + (-P) != O")
		}
		px, _ := P.Coordinates()
		nx, _ := negP.(*Point).Coordinates()
		if px.Cmp(nx) != 0 {
			t.Error("-P should share x with P")
		}
	})

	t.Run("DoubleIdentity", func(t *testing.T) {
		if !g.NewPoint().Double(g.NewPoint()).IsIdentity() {
			t.Error("2O != O")
		}
		if !g.NewPoint().Negate(g.NewPoint()).IsIdentity() {
			t.Error("-O != O")
		}
	})

	t.Run("Associativity", func(t *testing.T) {
		P, Q, R := randomPoint(t, g), randomPoint(t, g), randomPoint(t, g)
		lhs := g.NewPoint().Add(g.NewPoint().Add(P, Q), R)
		rhs := g.NewPoint().Add(P, g.NewPoint().Add(Q, R))
		if !lhs.Equal(rhs) {
			t.Error("(P+Q)+R != P+(Q+R)")
		}
	})

	t.Run("ReceiverAliasing", func(t *testing.T) {
		P := randomPoint(t, g)
		Q := randomPoint(t, g)
		want := g.NewPoint().Add(P, Q)

		acc := g.NewPoint().Set(P)
		acc.Add(acc, Q)
		if !acc.Equal(want) {
			t.Error("aliased receiver produced a different sum")
		}
	})

	t.Run("OrderTimesGeneratorIsIdentity", func(t *testing.T) {
		// (N-1)*G == -G, so adding G must give the identity.
		k := &Scalar{inner: new(big.Int).Set(nMinusOne)}
		acc := g.NewPoint()
		addend := g.Generator()
		for i := 0; i < k.BitLen(); i++ {
			if k.Bit(i) == 1 {
				acc = g.NewPoint().Add(acc, addend)
			}
			addend = g.NewPoint().Double(addend)
		}
		if !acc.Equal(g.NewPoint().Negate(g.Generator())) {
			t.Fatal("(N-1)G != -G")
		}
		if !g.NewPoint().Add(acc, g.Generator()).IsIdentity() {
			t.Error("NG != O")
		}
	})

	t.Run("BytesRoundtrip", func(t *testing.T) {
		P := randomPoint(t, g)
		data := P.Bytes()
		if len(data) != 65 || data[0] != 0x04 {
			t.Fatalf("unexpected encoding header: len=%d tag=%#x", len(data), data[0])
		}
		restored, err := g.NewPoint().SetBytes(data)
		if err != nil {
			t.Fatal(err)
		}
		if !restored.Equal(P) {
			t.Error("point bytes roundtrip failed")
		}

		inf, err := g.NewPoint().SetBytes(g.NewPoint().Bytes())
		if err != nil || !inf.IsIdentity() {
			t.Error("identity roundtrip failed")
		}
	})

	t.Run("SetBytesRejectsInvalid", func(t *testing.T) {
		data := g.Generator().Bytes()
		data[64] ^= 1
		if _, err := g.NewPoint().SetBytes(data); err != ErrNotOnCurve {
			t.Errorf("got %v, want ErrNotOnCurve", err)
		}
		if _, err := g.NewPoint().SetBytes(data[:33]); err != ErrInvalidEncoding {
			t.Errorf("got %v, want ErrInvalidEncoding", err)
		}
	})

	t.Run("NewPoint", func(t *testing.T) {
		if _, err := NewPoint(curveGx, curveGy); err != nil {
			t.Fatal(err)
		}
		if _, err := NewPoint(curveGx, big.NewInt(1)); err != ErrNotOnCurve {
			t.Errorf("got %v, want ErrNotOnCurve", err)
		}
		if _, err := NewPoint(curveP, curveGy); err != ErrNotOnCurve {
			t.Errorf("out-of-range x: got %v, want ErrNotOnCurve", err)
		}
	})

	t.Run("NilPoint", func(t *testing.T) {
		var p *Point
		if !p.IsIdentity() {
			t.Error("nil point should report infinity")
		}
		if p.Bytes() != nil || p.XBytes() != nil {
			t.Error("nil point should have no encoding")
		}
		if _, err := g.NewPoint().SetBytes(p.Bytes()); err == nil {
			t.Error("decoding a nil point's encoding should fail")
		}
	})

	t.Run("XBytes", func(t *testing.T) {
		if g.NewPoint().XBytes() != nil {
			t.Error("identity should have no x coordinate")
		}
		if got := new(big.Int).SetBytes(g.Generator().XBytes()); got.Cmp(curveGx) != 0 {
			t.Error("generator x mismatch")
		}
	})

	t.Run("Equal", func(t *testing.T) {
		var _ group.Point = (*Point)(nil)
		if g.Generator().Equal(g.NewPoint()) {
			t.Error("G should not equal identity")
		}
		if !g.NewPoint().Equal(&Point{}) {
			t.Error("identities should be equal")
		}
	})
}
