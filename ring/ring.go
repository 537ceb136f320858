// SPDX-License-Identifier: MIT

// Package ring defines the algebraic capability that drives matrix arithmetic.
//
// Purpose:
//   - Decouple the matrix engine from any concrete element type.
//   - Let callers inject addition/multiplication semantics per operation
//     (ordinary numbers, big integers, modular integers, booleans, tropical).
//
// Contract:
//   - Sum is associative and commutative with Zero() as its identity.
//   - Product is associative and distributes over Sum.
//   - These laws are ASSUMED by the matrix engine, never verified.
//
// AI-Hints:
//   - Implement Unital as well when callers need an identity matrix for your type.
//   - Keep implementations stateless or immutable; matrices may share them freely.
package ring

// Ring supplies a zero element, a sum and a product over S.
type Ring[S any] interface {
	// Zero returns the additive identity.
	Zero() S

	// Sum returns a + b.
	Sum(a, b S) S

	// Product returns a · b.
	Product(a, b S) S
}

// Unital is a Ring that also exposes a multiplicative identity.
// matrix.Identity(n, r.Zero(), r.One()) is the neutral element of Times.
type Unital[S any] interface {
	Ring[S]

	// One returns the multiplicative identity.
	One() S
}
