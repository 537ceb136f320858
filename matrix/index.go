// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Index is an immutable (row, column) coordinate.
//
// By convention a matrix size is encoded as the largest valid coordinate,
// i.e. Index{rows-1, columns-1}. Index is comparable and safe as a map key.
// No range validation happens here; callers check bounds.
type Index struct {
	row    int
	column int
}

// NewIndex returns the coordinate (row, column).
func NewIndex(row, column int) Index {
	return Index{row: row, column: column}
}

// sizeOf returns the size descriptor of a rows×columns matrix.
func sizeOf(rows, columns int) Index {
	return Index{row: rows - 1, column: columns - 1}
}

// Row returns the row coordinate.
func (i Index) Row() int { return i.row }

// Column returns the column coordinate.
func (i Index) Column() int { return i.column }

// AreDiagonal reports whether row == column.
func (i Index) AreDiagonal() bool { return i.row == i.column }

// Rows interprets i as a size descriptor and returns the row count.
func (i Index) Rows() int { return i.row + 1 }

// Columns interprets i as a size descriptor and returns the column count.
func (i Index) Columns() int { return i.column + 1 }

// String renders "(row,column)".
func (i Index) String() string {
	return fmt.Sprintf("(%d,%d)", i.row, i.column)
}

// within reports whether i lies inside the rectangle described by size.
func (i Index) within(size Index) bool {
	return i.row >= 0 && i.column >= 0 && i.row <= size.row && i.column <= size.column
}
