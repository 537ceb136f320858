// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for construction and
//    arithmetic preconditions.
//  - Return plain sentinel/typed errors (no wrapping) so public call sites wrap
//    uniformly with their operation tag.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Size → Square.
//  - Every check is O(1) and allocates only on failure.

package matrix

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/ringmat/ring"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateLength ensures a row/column count is strictly positive.
//
// Inputs: the dimension being checked and its requested length.
// Returns a *LengthError (errors.Is ErrInvalidLength) when length <= 0.
// Complexity: O(1).
func ValidateLength(cause Cause, length int) error {
	if length <= 0 {
		return &LengthError{Cause: cause, Length: length}
	}

	return nil
}

// ValidateShape checks rows then columns, so ROW wins when both are invalid.
func ValidateShape(rows, columns int) error {
	if err := ValidateLength(CauseRow, rows); err != nil {
		return err
	}

	return ValidateLength(CauseColumn, columns)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Both a nil interface and a typed nil pointer (e.g. (*Dense[int])(nil)) are
// rejected with ErrNilMatrix.
// Complexity: O(1).
func ValidateNotNil[S any](m Matrix[S]) error {
	if m == nil || isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameSize – Ensures a and b have equal sizes.
//
// Implementation: assumes a and b are not nil (caller must ensure).
// Return: nil or *SizeError carrying both sizes.
// Complexity: O(1).
func ValidateSameSize[S any](a, b Matrix[S]) error {
	if as, bs := a.Size(), b.Size(); as != bs {
		return &SizeError{This: as, Other: bs}
	}

	return nil
}

// ValidateSquare checks that size lies on the diagonal (rows == columns).
// Returns *NonSquareError otherwise.
func ValidateSquare(size Index) error {
	if !size.AreDiagonal() {
		return &NonSquareError{Size: size}
	}

	return nil
}

// validateOperands runs the shared Plus/Times preamble:
// receiver and other non-nil, ring non-nil, sizes equal.
func validateOperands[S any](a, b Matrix[S], r ring.Ring[S]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if r == nil || isNil(r) {
		return ErrNilRing
	}

	return ValidateSameSize(a, b)
}

// isNil reports whether v is nil or a typed nil of a nillable kind.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
