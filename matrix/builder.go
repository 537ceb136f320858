// SPDX-License-Identifier: MIT

// Package matrix: construction protocols for Dense.
// Every constructor validates before allocating, calls user code in row-major
// order, and returns an immutable *Dense.
package matrix

// fill allocates a rows×cols Dense and populates it from gen, row-major.
// Shape is assumed valid.
func fill[S any](rows, cols int, gen func(Index) S) *Dense[S] {
	data := make([]S, rows*cols)
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			data[base+j] = gen(NewIndex(i, j))
		}
	}

	return &Dense[S]{rows: rows, cols: cols, data: data}
}

// New builds a rows×columns matrix whose entry at idx is gen(idx).
// MAIN DESCRIPTION:
//   - gen is called exactly once per coordinate, in row-major order.
//
// Implementation:
//   - Stage 1: validate rows (CauseRow) then columns (CauseColumn).
//   - Stage 2: reject a nil generator.
//   - Stage 3: allocate and fill the flat buffer.
//
// Errors:
//   - *LengthError (errors.Is ErrInvalidLength), ErrNilGenerator.
//
// Complexity:
//   - Time O(r*c) plus generator cost, Space O(r*c).
func New[S any](rows, columns int, gen func(Index) S) (*Dense[S], error) {
	if err := ValidateShape(rows, columns); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if gen == nil {
		return nil, matrixErrorf(ctxNew, ErrNilGenerator)
	}

	return fill(rows, columns, gen), nil
}

// NewFromSize is New(size.Rows(), size.Columns(), gen).
func NewFromSize[S any](size Index, gen func(Index) S) (*Dense[S], error) {
	if gen == nil {
		return nil, matrixErrorf(ctxNewFromSize, ErrNilGenerator)
	}
	m, err := New(size.Rows(), size.Columns(), gen)
	if err != nil {
		return nil, matrixErrorf(ctxNewFromSize, err)
	}

	return m, nil
}

// Constant builds a size×size matrix with every entry equal to value.
// A nil pointer/interface/map/slice/func/chan value is rejected.
// Errors: *LengthError (CauseRow), ErrNilValue.
func Constant[S any](size int, value S) (*Dense[S], error) {
	if err := ValidateLength(CauseRow, size); err != nil {
		return nil, matrixErrorf(ctxConstant, err)
	}
	if isNil(value) {
		return nil, matrixErrorf(ctxConstant, ErrNilValue)
	}

	return fill(size, size, func(Index) S { return value }), nil
}

// Identity builds a size×size matrix with identity on the diagonal and zero elsewhere.
// Errors: *LengthError (CauseRow).
func Identity[S any](size int, zero, identity S) (*Dense[S], error) {
	if err := ValidateLength(CauseRow, size); err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}

	return fill(size, size, func(idx Index) S {
		if idx.AreDiagonal() {
			return identity
		}

		return zero
	}), nil
}

// From builds a matrix from explicit rows.
// MAIN DESCRIPTION:
//   - rows = len(values); columns = len(values[0]) (0 when there are no rows).
//
// Behavior highlights:
//   - A row shorter than the first leaves its trailing cells unset (absent).
//   - Entries past the first row's length are ignored.
//   - values is copied; later mutation of the slice does not affect the matrix.
//
// Errors:
//   - *LengthError with CauseRow (no rows) or CauseColumn (empty first row).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func From[S any](values [][]S) (*Dense[S], error) {
	rows := len(values)
	cols := 0
	if rows > 0 {
		cols = len(values[0])
	}
	if err := ValidateShape(rows, cols); err != nil {
		return nil, matrixErrorf(ctxFrom, err)
	}

	m := &Dense[S]{rows: rows, cols: cols, data: make([]S, rows*cols)}
	var present []bool
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		row := values[i]
		for j = 0; j < cols; j++ {
			if j < len(row) {
				m.data[base+j] = row[j]
				continue
			}
			// First gap: materialize the bitmap with everything so far marked set.
			if present == nil {
				present = make([]bool, rows*cols)
				for k := 0; k < base+j; k++ {
					present[k] = true
				}
			}
		}
		if present != nil {
			for j = 0; j < cols && j < len(row); j++ {
				present[base+j] = true
			}
		}
	}
	m.present = present

	return m, nil
}
