// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (coordinate-keyed) strategy.
//
// Purpose:
//   - Keep only the coordinates that carry information; everything else falls
//     back to the policy documented in options.go.
//   - Share the Matrix capability with Dense so arithmetic mixes both freely.
//
// Complexity quicksheet:
//   - NewSparse/ToSparse: O(r*c) scan; Value/At: O(1) expected (hash lookup);
//     NNZ: O(1); Support: O(nnz); Plus: O(r*c); Times: O(n³).

package matrix

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/ringmat/ring"
)

const ctxNewSparse = "NewSparse" // ctor tag for NewSparse

// Sparse stores a subset of coordinates in a map keyed by Index.
type Sparse[S any] struct {
	size    Index            // largest valid coordinate
	entries map[Index]S      // stored (non-omitted) cells
	opts    sparseOptions[S] // inclusion and fallback policy
}

var (
	_ Matrix[int]  = (*Sparse[int])(nil)
	_ fmt.Stringer = (*Sparse[int])(nil)
)

// NewSparse scans every coordinate of a rows×columns rectangle in row-major
// order, calls fn once per coordinate and stores the values that the policy
// keeps (see options.go).
//
// fn reports (value, true) for a present value and (_, false) for "no value".
//
// Errors:
//   - *LengthError (CauseRow before CauseColumn), ErrNilGenerator.
func NewSparse[S any](rows, columns int, fn func(Index) (S, bool), opts ...SparseOption[S]) (*Sparse[S], error) {
	if err := ValidateShape(rows, columns); err != nil {
		return nil, matrixErrorf(ctxNewSparse, err)
	}
	if fn == nil {
		return nil, matrixErrorf(ctxNewSparse, ErrNilGenerator)
	}

	return buildSparse(rows, columns, fn, gatherSparseOptions(opts...)), nil
}

// buildSparse is the shared scanner behind NewSparse, ToSparse and sparse arithmetic.
// Shape is assumed valid.
func buildSparse[S any](rows, cols int, fn func(Index) (S, bool), o sparseOptions[S]) *Sparse[S] {
	entries := make(map[Index]S)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			idx := NewIndex(i, j)
			v, ok := fn(idx)
			if o.omit(v, ok) {
				continue
			}
			entries[idx] = v
		}
	}

	return &Sparse[S]{size: sizeOf(rows, cols), entries: entries, opts: o}
}

// Size returns (rows-1, columns-1).
func (m *Sparse[S]) Size() Index { return m.size }

// Rows returns the row count.
func (m *Sparse[S]) Rows() int { return m.size.Rows() }

// Columns returns the column count.
func (m *Sparse[S]) Columns() int { return m.size.Columns() }

// NNZ returns the number of stored entries.
func (m *Sparse[S]) NNZ() int { return len(m.entries) }

// Default returns the configured default element, if any.
func (m *Sparse[S]) Default() (S, bool) { return m.opts.def, m.opts.hasDefault }

// Support returns a fresh set of the stored coordinates.
// The set is not shared with m; callers may mutate it.
func (m *Sparse[S]) Support() mapset.Set[Index] {
	s := mapset.NewThreadUnsafeSet[Index]()
	for idx := range m.entries {
		s.Add(idx)
	}

	return s
}

// Value returns the entry at idx.
// MAIN DESCRIPTION:
//   - Stored cells return (v, true).
//   - In-range unstored cells return (default, true) when a default is
//     configured, otherwise (zero, false).
//   - Out-of-range coordinates always return (zero, false).
//
// Complexity:
//   - Time O(1) expected.
func (m *Sparse[S]) Value(idx Index) (S, bool) {
	var zero S
	if m == nil || !idx.within(m.size) {
		return zero, false
	}
	if v, ok := m.entries[idx]; ok {
		return v, true
	}
	if m.opts.hasDefault {
		return m.opts.def, true
	}

	return zero, false
}

// At returns Value at (row, column), clamping negative coordinates to 0.
func (m *Sparse[S]) At(row, column int) (S, bool) {
	return m.Value(clamp(row, column))
}

// String renders like Dense.String; unstored cells show the default or nothing.
func (m *Sparse[S]) String() string {
	return render[S](m.size, m.Value)
}

// Plus returns m + other under r as a *Sparse with m's policy.
// Errors: ErrNilMatrix, ErrNilRing, *SizeError.
// Complexity: O(r*c).
func (m *Sparse[S]) Plus(other Matrix[S], r ring.Ring[S]) (Matrix[S], error) {
	if err := validateOperands[S](m, other, r); err != nil {
		return nil, matrixErrorf(ctxPlus, err)
	}

	return m.rebuild(sumKernel[S](m, other, r)), nil
}

// Times returns m · other under r as a *Sparse with m's policy.
// Errors: ErrNilMatrix, ErrNilRing, *SizeError, *NonSquareError.
// Complexity: O(n³).
func (m *Sparse[S]) Times(other Matrix[S], r ring.Ring[S]) (Matrix[S], error) {
	if err := validateOperands[S](m, other, r); err != nil {
		return nil, matrixErrorf(ctxTimes, err)
	}
	if err := ValidateSquare(m.size); err != nil {
		return nil, matrixErrorf(ctxTimes, err)
	}

	return m.rebuild(productKernel[S](m, other, r)), nil
}

// rebuild wraps a full row-major result buffer into a Sparse with m's policy.
func (m *Sparse[S]) rebuild(data []S) *Sparse[S] {
	cols := m.size.Columns()

	return buildSparse(m.size.Rows(), cols, func(idx Index) (S, bool) {
		return data[idx.row*cols+idx.column], true
	}, m.opts)
}
