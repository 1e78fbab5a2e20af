package scalarmult

import (
	"fmt"

	"github.com/f3rmion/sm2/group"
)

// WindowSize is the number of scalar bits consumed per table lookup.
const WindowSize = 4

// tableSize is the number of precomputed multiples, 2^WindowSize.
const tableSize = 1 << WindowSize

// Strategy selects how base-point multiplications are computed.
type Strategy int

const (
	// Generic uses binary double-and-add for every multiplication.
	Generic Strategy = iota
	// Windowed routes base-point multiplications through a precomputed
	// fixed-base table. Arbitrary points still use double-and-add.
	Windowed
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Generic:
		return "generic"
	case Windowed:
		return "windowed"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// DoubleAndAdd computes k*p with the binary method, scanning k from the
// least significant bit. It works for any point and returns the identity
// when k is zero or p is the identity.
func DoubleAndAdd(g group.Group, k group.Scalar, p group.Point) group.Point {
	result := g.NewPoint()
	if k.IsZero() || p.IsIdentity() {
		return result
	}

	addend := g.NewPoint().Set(p)
	n := k.BitLen()
	for i := 0; i < n; i++ {
		if k.Bit(i) == 1 {
			result.Add(result, addend)
		}
		if i+1 < n {
			addend.Double(addend)
		}
	}
	return result
}

// Table holds the multiples i*base for i in [0, 2^WindowSize). Entry 0 is
// the identity. A Table is immutable once built and may be shared between
// goroutines without locking.
type Table struct {
	group   group.Group
	entries [tableSize]group.Point
}

// NewTable precomputes the fixed-base table for base.
func NewTable(g group.Group, base group.Point) *Table {
	t := &Table{group: g}
	t.entries[0] = g.NewPoint()
	for i := 1; i < tableSize; i++ {
		t.entries[i] = g.NewPoint().Add(t.entries[i-1], base)
	}
	return t
}

// Entry returns a copy of i*base.
func (t *Table) Entry(i int) group.Point {
	return t.group.NewPoint().Set(t.entries[i])
}

// Mult computes k*base. The scalar is split into WindowSize-bit windows
// processed from the most significant one down: the accumulator is doubled
// once per window bit and then the table entry for the window value is
// added. Doubling is skipped while the accumulator is still the identity,
// and the first nonzero window is assigned directly.
func (t *Table) Mult(k group.Scalar) group.Point {
	acc := t.group.NewPoint()
	if k.IsZero() {
		return acc
	}

	windows := (k.BitLen() + WindowSize - 1) / WindowSize
	for w := windows - 1; w >= 0; w-- {
		if !acc.IsIdentity() {
			for i := 0; i < WindowSize; i++ {
				acc.Double(acc)
			}
		}

		idx := windowValue(k, w)
		if idx == 0 {
			continue
		}
		if acc.IsIdentity() {
			acc.Set(t.entries[idx])
		} else {
			acc.Add(acc, t.entries[idx])
		}
	}
	return acc
}

// windowValue extracts bits [w*WindowSize, (w+1)*WindowSize) of k.
func windowValue(k group.Scalar, w int) int {
	v := 0
	for i := WindowSize - 1; i >= 0; i-- {
		v = v<<1 | int(k.Bit(w*WindowSize+i))
	}
	return v
}

// Multiplier computes scalar multiplications for one group using the
// strategy fixed at construction. It is safe for concurrent use.
type Multiplier struct {
	group    group.Group
	strategy Strategy
	table    *Table
}

// New returns a Multiplier for g. The fixed-base table for g's generator
// is built here when strategy is Windowed.
func New(g group.Group, strategy Strategy) *Multiplier {
	m := &Multiplier{
		group:    g,
		strategy: strategy,
	}
	if strategy == Windowed {
		m.table = NewTable(g, g.Generator())
	}
	return m
}

// Strategy returns the strategy selected at construction.
func (m *Multiplier) Strategy() Strategy {
	return m.strategy
}

// Table returns the precomputed table, or nil for the Generic strategy.
func (m *Multiplier) Table() *Table {
	return m.table
}

// BaseMult computes k*G for the group generator G.
func (m *Multiplier) BaseMult(k group.Scalar) group.Point {
	if m.table != nil {
		return m.table.Mult(k)
	}
	return DoubleAndAdd(m.group, k, m.group.Generator())
}

// Mult computes k*p for an arbitrary point. The table only holds multiples
// of the generator, so this always uses double-and-add.
func (m *Multiplier) Mult(k group.Scalar, p group.Point) group.Point {
	return DoubleAndAdd(m.group, k, p)
}
