// SPDX-License-Identifier: MIT

package ring

import "math"

// MinPlus is the tropical semiring (min, +) over float64.
//
// MAIN DESCRIPTION:
//   - Zero is +Inf ("no path"), One is 0 ("stay in place").
//   - Sum picks the shorter of two distances, Product chains two hops.
//
// Behavior highlights:
//   - Squaring a distance matrix n-1 times under MinPlus gives all-pairs shortest
//     paths, the same fixed point Floyd–Warshall reaches by relaxation.
//   - NaN propagates through both operations (math.Min semantics).
//
// Complexity:
//   - All operations O(1).
type MinPlus struct{}

var _ Unital[float64] = MinPlus{}

// Zero returns +Inf.
func (MinPlus) Zero() float64 { return math.Inf(1) }

// One returns 0.
func (MinPlus) One() float64 { return 0 }

// Sum returns min(a, b).
func (MinPlus) Sum(a, b float64) float64 { return math.Min(a, b) }

// Product returns a + b, keeping +Inf absorbing.
func (MinPlus) Product(a, b float64) float64 {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.Inf(1)
	}

	return a + b
}
