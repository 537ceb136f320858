// SPDX-License-Identifier: MIT

// Package matrix: the storage-agnostic Matrix capability.
// Dense and Sparse both implement it; arithmetic accepts any implementation
// as the right-hand operand and dispatches on the receiver's strategy for the
// result.
package matrix

import "github.com/katalvlaran/ringmat/ring"

// Matrix is an immutable two-dimensional association from Index to S.
//
// Complexity notes: Size/Value/At are expected O(1) (hash lookup for Sparse);
// Plus is O(r*c); Times is O(n³).
type Matrix[S any] interface {
	// Size returns the largest valid coordinate (rows-1, columns-1).
	Size() Index

	// Value returns the entry at idx. The boolean is false when idx is out of
	// range or has no value; a default element is never invented.
	Value(idx Index) (S, bool)

	// At is Value(NewIndex(row, column)) with negative coordinates clamped to 0.
	At(row, column int) (S, bool)

	// Plus returns the elementwise sum under r.
	// Errors: ErrNilMatrix, ErrNilRing, *SizeError.
	Plus(other Matrix[S], r ring.Ring[S]) (Matrix[S], error)

	// Times returns the product under r of two equal-size square matrices.
	// Errors: ErrNilMatrix, ErrNilRing, *SizeError, *NonSquareError.
	Times(other Matrix[S], r ring.Ring[S]) (Matrix[S], error)

	// String renders tab-terminated cells, one newline-terminated line per row.
	String() string
}

// ValueOf looks up idx in an arbitrary matrix.
// It only forwards to m.Value after rejecting a nil matrix.
func ValueOf[S any](m Matrix[S], idx Index) (S, bool, error) {
	if err := ValidateNotNil(m); err != nil {
		var zero S
		return zero, false, matrixErrorf("ValueOf", err)
	}
	v, ok := m.Value(idx)

	return v, ok, nil
}

// clamp maps negative coordinates to 0.
func clamp(row, column int) Index {
	if row < 0 {
		row = 0
	}
	if column < 0 {
		column = 0
	}

	return NewIndex(row, column)
}
