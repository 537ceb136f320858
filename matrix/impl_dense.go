// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Make "total population" structural: a nil presence bitmap means every cell is set.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Never panic at the public surface: lookups report absence, arithmetic returns errors.
//
// AI-Hints:
//   - Arithmetic kernels (ops_ring.go) read the flat data slice directly when the
//     operand is a fully populated *Dense.
//   - Use ToSparse to drop default-valued cells; the projection is one-way.
//
// Complexity quicksheet:
//   - New/Constant/Identity/From: O(r*c); Value/At: O(1); Plus: O(r*c); Times: O(n³).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/ringmat/ring"
)

// ---------- error context tags ----------

const (
	ctxNew         = "New"         // ctor tag for New
	ctxNewFromSize = "NewFromSize" // ctor tag for NewFromSize
	ctxConstant    = "Constant"    // ctor tag for Constant
	ctxIdentity    = "Identity"    // ctor tag for Identity
	ctxFrom        = "From"        // ctor tag for From
	ctxPlus        = "Plus"        // method tag used in error wrappers
	ctxTimes       = "Times"       // method tag used in error wrappers
)

// Dense is a concrete row-major matrix.
//   - rows,cols hold dimensions (both >= 1).
//   - data is a flat buffer of length rows*cols in row-major order (offset = i*cols + j).
//   - present is nil when every cell holds a value; otherwise present[off]
//     reports whether data[off] was set (only From can leave cells unset).
type Dense[S any] struct {
	rows, cols int    // row and column counts
	data       []S    // contiguous row-major storage (len == rows*cols)
	present    []bool // nil ⇒ total; else len == rows*cols
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[int]  = (*Dense[int])(nil)
	_ fmt.Stringer = (*Dense[int])(nil)
)

// Rows returns the row count. Complexity: O(1).
func (m *Dense[S]) Rows() int { return m.rows }

// Columns returns the column count. Complexity: O(1).
func (m *Dense[S]) Columns() int { return m.cols }

// Len returns rows*columns.
func (m *Dense[S]) Len() int { return len(m.data) }

// Size returns (rows-1, columns-1).
func (m *Dense[S]) Size() Index { return sizeOf(m.rows, m.cols) }

// Total reports whether every coordinate holds a value.
func (m *Dense[S]) Total() bool {
	if m.present == nil {
		return true
	}
	for _, ok := range m.present {
		if !ok {
			return false
		}
	}

	return true
}

// offset computes the row-major offset, or -1 when idx is out of range.
func (m *Dense[S]) offset(idx Index) int {
	if idx.row < 0 || idx.row >= m.rows || idx.column < 0 || idx.column >= m.cols {
		return -1
	}

	return idx.row*m.cols + idx.column
}

// Value returns the entry at idx.
// MAIN DESCRIPTION:
//   - Safe element read; reports (zero, false) for out-of-range or unset cells.
//
// Behavior highlights:
//   - Never panics, never substitutes a default element.
//   - A nil receiver behaves like an empty matrix.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[S]) Value(idx Index) (S, bool) {
	var zero S
	if m == nil {
		return zero, false
	}
	off := m.offset(idx)
	if off < 0 {
		return zero, false
	}
	if m.present != nil && !m.present[off] {
		return zero, false
	}

	return m.data[off], true
}

// At returns Value at (row, column), clamping negative coordinates to 0.
// At(-3, 1) therefore reads (0, 1); coordinates past the end are still absent.
func (m *Dense[S]) At(row, column int) (S, bool) {
	return m.Value(clamp(row, column))
}

// Do visits each coordinate in row-major order and calls f(idx, v, ok).
// ok is false for unset cells. Iteration stops when f returns false.
// Complexity: O(r*c), no allocations.
func (m *Dense[S]) Do(f func(idx Index, v S, ok bool) bool) {
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			ok := m.present == nil || m.present[base+j]
			if !f(NewIndex(i, j), m.data[base+j], ok) {
				return // early exit requested by caller
			}
		}
	}
}

// String renders each row as tab-terminated cells followed by '\n'.
// Unset cells render as the empty string.
func (m *Dense[S]) String() string {
	return render[S](m.Size(), m.Value)
}

// Plus returns the elementwise sum m + other under r as a *Dense.
// MAIN DESCRIPTION:
//   - result[idx] = r.Sum(m[idx], other[idx]) for every idx in the common size.
//
// Implementation:
//   - Stage 1: validate receiver, other, ring, sizes (validateOperands).
//   - Stage 2: run sumKernel over every coordinate (absent cells read as r.Zero()).
//
// Errors:
//   - ErrNilMatrix, ErrNilRing, *SizeError (errors.Is ErrInconsistentSize).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[S]) Plus(other Matrix[S], r ring.Ring[S]) (Matrix[S], error) {
	if err := validateOperands[S](m, other, r); err != nil {
		return nil, matrixErrorf(ctxPlus, err)
	}

	return &Dense[S]{rows: m.rows, cols: m.cols, data: sumKernel[S](m, other, r)}, nil
}

// Times returns the matrix product m · other under r as a *Dense.
// MAIN DESCRIPTION:
//   - result[i,j] = Σ_k r.Product(m[i,k], other[k,j]), folded from r.Zero().
//
// Implementation:
//   - Stage 1: validate receiver, other, ring, sizes.
//   - Stage 2: require a square common size.
//   - Stage 3: triple loop i→j→k (productKernel).
//
// Behavior highlights:
//   - Only equal-size square operands are accepted; rectangular products are
//     out of scope for this package.
//
// Errors:
//   - ErrNilMatrix, ErrNilRing, *SizeError, *NonSquareError.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (m *Dense[S]) Times(other Matrix[S], r ring.Ring[S]) (Matrix[S], error) {
	if err := validateOperands[S](m, other, r); err != nil {
		return nil, matrixErrorf(ctxTimes, err)
	}
	if err := ValidateSquare(m.Size()); err != nil {
		return nil, matrixErrorf(ctxTimes, err)
	}

	return &Dense[S]{rows: m.rows, cols: m.cols, data: productKernel[S](m, other, r)}, nil
}

// ToSparse projects m onto the sparse strategy.
// Every coordinate's current value is offered to the sparse builder; unset
// cells are never stored and, with a default configured (WithDefault), cells
// equal to the default are dropped as well.
// Complexity: O(r*c).
func (m *Dense[S]) ToSparse(opts ...SparseOption[S]) *Sparse[S] {
	return buildSparse(m.rows, m.cols, m.Value, gatherSparseOptions(opts...))
}
