// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the sparse storage strategy.
// This file defines:
//   - SparseOption (functional option over the element type S),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherSparseOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...SparseOption[S].
//
// Inclusion policy (single source of truth, enforced in buildSparse):
//  1. A coordinate whose value is absent is never stored.
//  2. With a default configured, a value equal to it is not stored either.
//  3. Lookup of an in-range, unstored coordinate yields (default, true) when a
//     default is configured, otherwise (zero S, false).
package matrix

import "github.com/katalvlaran/ringmat/ring"

// DefaultSparseHasDefault: without options a Sparse only omits absent entries
// and reports unstored coordinates as absent.
const DefaultSparseHasDefault = false

const panicEqualNil = "matrix: WithDefault: equal must be non-nil"

// SparseOption mutates sparse build options. Safe to apply repeatedly; last wins.
type SparseOption[S any] func(*sparseOptions[S])

// sparseOptions is the effective sparse policy.
type sparseOptions[S any] struct {
	hasDefault bool              // DefaultSparseHasDefault
	def        S                 // default element (meaningful when hasDefault)
	equal      func(a, b S) bool // equality used to detect the default
}

// WithDefault sets the default element and the equality used to detect it.
// Implementation:
//   - Stage 1: reject a nil equality (panic; programmer error).
//   - Stage 2: return a setter that records value and equal.
//
// AI-Hints:
//   - Use WithComparableDefault for comparable element types.
func WithDefault[S any](value S, equal func(a, b S) bool) SparseOption[S] {
	if equal == nil {
		panic(panicEqualNil)
	}

	return func(o *sparseOptions[S]) {
		o.hasDefault = true
		o.def = value
		o.equal = equal
	}
}

// WithComparableDefault is WithDefault using ==.
func WithComparableDefault[S comparable](value S) SparseOption[S] {
	return WithDefault(value, func(a, b S) bool { return a == b })
}

// WithRingZero uses r.Zero() as the default element, compared with ==.
// This is the classic sparse matrix: zeros are implicit.
func WithRingZero[S comparable](r ring.Ring[S]) SparseOption[S] {
	return WithComparableDefault(r.Zero())
}

// gatherSparseOptions applies opts over the documented defaults.
func gatherSparseOptions[S any](opts ...SparseOption[S]) sparseOptions[S] {
	o := sparseOptions[S]{hasDefault: DefaultSparseHasDefault}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// omit reports whether v must not be stored.
func (o sparseOptions[S]) omit(v S, ok bool) bool {
	if !ok {
		return true
	}

	return o.hasDefault && o.equal(v, o.def)
}
