// SPDX-License-Identifier: MIT

package ring

// Boolean is the (OR, AND) semiring over bool.
// Multiplying adjacency matrices under Boolean yields reachability in k steps.
type Boolean struct{}

var _ Unital[bool] = Boolean{}

// Zero returns false.
func (Boolean) Zero() bool { return false }

// One returns true.
func (Boolean) One() bool { return true }

// Sum returns a || b.
func (Boolean) Sum(a, b bool) bool { return a || b }

// Product returns a && b.
func (Boolean) Product(a, b bool) bool { return a && b }
