// SPDX-License-Identifier: MIT

package ring

import "golang.org/x/exp/constraints"

// Number is the set of built-in Go numeric types usable with Numeric.
type Number interface {
	constraints.Integer | constraints.Float
}

// Numeric is the ordinary (+, ·) ring over a built-in numeric type.
// Integer overflow wraps exactly as Go arithmetic does.
type Numeric[T Number] struct{}

var _ Unital[int] = Numeric[int]{}

// Int returns the integer ring over int.
func Int() Numeric[int] { return Numeric[int]{} }

// Int64 returns the integer ring over int64.
func Int64() Numeric[int64] { return Numeric[int64]{} }

// Float64 returns the real "ring" over float64 (approximate under rounding).
func Float64() Numeric[float64] { return Numeric[float64]{} }

// Zero returns 0.
func (Numeric[T]) Zero() T { return 0 }

// One returns 1.
func (Numeric[T]) One() T { return 1 }

// Sum returns a + b.
func (Numeric[T]) Sum(a, b T) T { return a + b }

// Product returns a * b.
func (Numeric[T]) Product(a, b T) T { return a * b }
