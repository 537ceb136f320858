// SPDX-License-Identifier: MIT

// Package matrix provides immutable, generic matrices whose arithmetic is
// driven by an injected ring.Ring.
//
// The matrix package provides:
//
//   - Index, an immutable (row, column) pair that doubles as a size descriptor
//     (rows-1, columns-1).
//   - Matrix[S], the capability shared by every storage strategy: size, lookup,
//     textual rendering, Plus and Times.
//   - Dense[S], a row-major, totally populated matrix built by New, NewFromSize,
//     Constant, Identity and From.
//   - Sparse[S], a coordinate-keyed matrix that stores only non-default entries,
//     built by NewSparse or projected from a Dense with ToSparse.
//
// Errors are sentinels (ErrInvalidLength, ErrInconsistentSize, ErrNonSquare,
// ErrNilArgument) plus typed payload errors (LengthError, SizeError,
// NonSquareError); match them with errors.Is / errors.As.
//
// Times is restricted to equal-size square operands. This is a property of the
// package, not a general rectangular multiplication rule.
package matrix
