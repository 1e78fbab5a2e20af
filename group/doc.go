// Package group defines abstract interfaces for the prime-order groups
// used by the SM2 signature engine.
//
// This package provides three core interfaces that abstract over the
// mathematical operations needed for SM2 signing and verification:
//
//   - [Scalar]: Elements of the scalar field (integers modulo the group order)
//   - [Point]: Elements of the group (points on an elliptic curve)
//   - [Group]: Factory and utility methods for creating scalars and points
//
// # Design Philosophy
//
// The interfaces use a mutable receiver pattern for efficiency. Operations
// like Add, Mul, and Double set the receiver to the result and return it,
// allowing method chaining while minimizing allocations:
//
//	// Compute a + b*c
//	result := g.NewScalar().Mul(b, c)
//	result = g.NewScalar().Add(a, result)
//
// Scalar multiplication is deliberately not part of [Point]. It is built
// on top of Add and Double by the scalarmult package, so that both the
// generic and the precomputed-table strategies work for every group.
//
// # Implementing a Group
//
// To implement these interfaces for a new elliptic curve:
//
//  1. Create a Scalar type that wraps your integer and implements [Scalar]
//  2. Create a Point type that wraps your curve point and implements [Point]
//  3. Create a Group type that implements [Group] as a factory
//
// See the sm2p256 package for the SM2 recommended curve and the bjj
// package for Baby Jubjub.
//
// # Security Considerations
//
// Implementations must ensure:
//
//   - Scalar arithmetic is performed modulo the group order
//   - Random scalars are generated from cryptographically secure sources
//   - Invalid curve points are rejected in SetBytes
//
// None of the implementations in this module are constant time.
package group
