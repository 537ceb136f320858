// Package ringmat is an in-memory library of immutable, generic matrices whose
// arithmetic is supplied by the caller as an algebraic ring.
//
// What is ringmat?
//
//	A small, pure-Go, allocation-predictable library that brings together:
//		• Index: immutable (row, column) coordinates, also used as size descriptors
//		• Dense: row-major, totally populated storage
//		• Sparse: coordinate-keyed storage that keeps only non-default entries
//		• Plus / Times parameterized by a ring.Ring[S] supplied per call
//		• Reference rings: Numeric, BigInt, Modular (Z/pZ), Boolean, MinPlus
//
// Why a ring?
//
//   - The same Times computes integer products, reachability (Boolean) and
//     shortest-path relaxation (MinPlus) without any change to the matrix code.
//   - Matrices stay agnostic of arithmetic; the ring travels with the call.
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/   — Index, Matrix, Dense, Sparse, construction, Plus/Times, errors
//	ring/     — the Ring capability and reference implementations
//	examples/ — runnable demo (tropical all-pairs shortest paths)
//
// Quick example:
//
//	a, _ := matrix.From([][]int{{1, 2}, {3, 4}})
//	id, _ := matrix.Identity(2, 0, 1)
//	p, _ := id.Times(a, ring.Int()) // p equals a
//
//	go get github.com/katalvlaran/ringmat
package ringmat
