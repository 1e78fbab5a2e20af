// Package scalarmult computes scalar multiples k*P over any [group.Group]
// using only point addition and doubling.
//
// Two strategies are provided:
//
//   - [DoubleAndAdd], the generic binary method, valid for any point.
//   - [Table], a fixed-base method with a 16-entry table of multiples of
//     one base point and 4-bit windows. It trades 15 precomputed additions
//     for about a quarter of the additions per multiplication.
//
// A [Multiplier] binds a group to a [Strategy] once, at construction. Its
// BaseMult uses the table when one was built; Mult always falls back to
// double-and-add because the table says nothing about other points.
//
//	m := scalarmult.New(&sm2p256.Curve{}, scalarmult.Windowed)
//	Q := m.BaseMult(d)       // table lookup
//	R := m.Mult(t, Q)        // double-and-add
package scalarmult
