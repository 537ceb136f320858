// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the private ring kernels (sumKernel, productKernel) shared by
//     Dense and Sparse, so each storage strategy only decides how to wrap the
//     result buffer.
//   - Keep all loops deterministic (i→j, i→j→k) with a flat-slice fast path for
//     fully populated *Dense operands.
//
// Absent operand cells (unset Dense cells from From, unstored Sparse cells
// without a default) are read as r.Zero(), so every result is total.
//
// Kernels assume validated inputs: non-nil operands and ring, equal sizes,
// and (for productKernel) a square size.

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ringmat/ring"
)

// ---------- Formatting literals ----------
const (
	_fmtCellSep  = "\t"
	_fmtRowClose = "\n"
)

// reader returns a (row, col) accessor over m that substitutes r.Zero() for
// absent cells. A fully populated *Dense is read straight from its buffer.
func reader[S any](m Matrix[S], r ring.Ring[S]) func(row, col int) S {
	if d, ok := m.(*Dense[S]); ok && d.present == nil {
		return func(row, col int) S { return d.data[row*d.cols+col] }
	}
	zero := r.Zero()

	return func(row, col int) S {
		if v, ok := m.Value(NewIndex(row, col)); ok {
			return v
		}

		return zero
	}
}

// sumKernel computes out[i,j] = r.Sum(a[i,j], b[i,j]) in row-major order.
// Time: O(r*c). Space: O(r*c).
func sumKernel[S any](a, b Matrix[S], r ring.Ring[S]) []S {
	size := a.Size()
	rows, cols := size.Rows(), size.Columns()
	at, bt := reader(a, r), reader(b, r)

	out := make([]S, rows*cols)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			out[base+j] = r.Sum(at(i, j), bt(i, j))
		}
	}

	return out
}

// productKernel computes out[i,j] = Σ_k r.Product(a[i,k], b[k,j]), each sum
// folded left from r.Zero() with k ascending.
// Time: O(n³). Space: O(n²).
func productKernel[S any](a, b Matrix[S], r ring.Ring[S]) []S {
	n := a.Size().Rows()
	at, bt := reader(a, r), reader(b, r)

	out := make([]S, n*n)
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			acc := r.Zero()
			for k = 0; k < n; k++ {
				acc = r.Sum(acc, r.Product(at(i, k), bt(k, j)))
			}
			out[i*n+j] = acc
		}
	}

	return out
}

// render writes every row of a size-shaped matrix as "%v\t" cells followed by
// a newline. Absent cells contribute an empty string before their tab.
// Intended for diagnostics, not as a persisted format.
func render[S any](size Index, value func(Index) (S, bool)) string {
	var b strings.Builder
	rows, cols := size.Rows(), size.Columns()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, ok := value(NewIndex(i, j)); ok {
				fmt.Fprintf(&b, "%v", v)
			}
			b.WriteString(_fmtCellSep)
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
