// SPDX-License-Identifier: MIT
// Package matrix: error taxonomy.
// This file defines the package sentinels and the three payload-carrying error
// types. Every public operation returns one of these, wrapped with an operation
// tag; callers branch with errors.Is (kind) or errors.As (payload).
// No operation panics on user input and nothing here is logged.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grepping.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> invalid length (ROW before COLUMN) -> inconsistent size -> non-square.

var (
	// ErrInvalidLength is returned when a requested row or column count is <= 0.
	// The concrete error is a *LengthError carrying the Cause and the length.
	ErrInvalidLength = errors.New("matrix: invalid length")

	// ErrInconsistentSize is returned when Plus/Times operands differ in size.
	// The concrete error is a *SizeError carrying both sizes.
	ErrInconsistentSize = errors.New("matrix: inconsistent size")

	// ErrNonSquare is returned by Times when the common size has rows != columns.
	// The concrete error is a *NonSquareError carrying the size.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilArgument is the umbrella for every missing required argument.
	ErrNilArgument = errors.New("matrix: nil argument")
)

// Specific nil-argument kinds. Each satisfies errors.Is(err, ErrNilArgument).
var (
	ErrNilMatrix    error = nilArgumentError("matrix")
	ErrNilRing      error = nilArgumentError("ring")
	ErrNilGenerator error = nilArgumentError("generator")
	ErrNilValue     error = nilArgumentError("value")
)

// nilArgumentError names the missing argument.
type nilArgumentError string

func (e nilArgumentError) Error() string { return "matrix: nil " + string(e) }

func (e nilArgumentError) Unwrap() error { return ErrNilArgument }

// Cause tags which dimension of a construction request was invalid.
type Cause int

const (
	// CauseRow marks an invalid row count (or square size).
	CauseRow Cause = iota
	// CauseColumn marks an invalid column count.
	CauseColumn
)

// String returns "ROW" or "COLUMN".
func (c Cause) String() string {
	switch c {
	case CauseRow:
		return "ROW"
	case CauseColumn:
		return "COLUMN"
	default:
		return fmt.Sprintf("Cause(%d)", int(c))
	}
}

// LengthError reports a non-positive row or column count.
type LengthError struct {
	Cause  Cause
	Length int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("matrix: invalid length for %s: %d", e.Cause, e.Length)
}

// Unwrap makes errors.Is(err, ErrInvalidLength) hold.
func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// SizeError reports Plus/Times operands of different sizes.
// Sizes use the Index convention (rows-1, columns-1).
type SizeError struct {
	This  Index
	Other Index
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("matrix: inconsistent size: %s vs %s", e.This, e.Other)
}

// Unwrap makes errors.Is(err, ErrInconsistentSize) hold.
func (e *SizeError) Unwrap() error { return ErrInconsistentSize }

// NonSquareError reports a Times operand size that is not on the diagonal.
type NonSquareError struct {
	Size Index
}

func (e *NonSquareError) Error() string {
	return fmt.Sprintf("matrix: matrix is not square: %s", e.Size)
}

// Unwrap makes errors.Is(err, ErrNonSquare) hold.
func (e *NonSquareError) Unwrap() error { return ErrNonSquare }

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
