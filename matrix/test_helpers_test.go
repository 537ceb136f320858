// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities.
//   • Keep every helper generic over the element type so rings can be swapped.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ringmat/matrix"
	"github.com/stretchr/testify/require"
)

// MustFrom builds a *Dense from literal rows or fails the test.
func MustFrom[S any](t testing.TB, rows [][]S) *matrix.Dense[S] {
	t.Helper()
	m, err := matrix.From(rows)
	if err != nil {
		t.Fatalf("From(%v): %v", rows, err)
	}

	return m
}

// MustIdentity builds an n×n identity under (zero, one) or fails the test.
func MustIdentity[S any](t testing.TB, n int, zero, one S) *matrix.Dense[S] {
	t.Helper()
	m, err := matrix.Identity(n, zero, one)
	if err != nil {
		t.Fatalf("Identity(%d): %v", n, err)
	}

	return m
}

// Cells materializes a matrix as [][]S, failing on any absent in-range cell.
func Cells[S any](t require.TestingT, m matrix.Matrix[S]) [][]S {
	size := m.Size()
	out := make([][]S, size.Rows())
	for i := range out {
		out[i] = make([]S, size.Columns())
		for j := range out[i] {
			v, ok := m.Value(matrix.NewIndex(i, j))
			require.Truef(t, ok, "cell (%d,%d) unexpectedly absent", i, j)
			out[i][j] = v
		}
	}

	return out
}

// RequireCells asserts that m holds exactly want (shape and every value).
func RequireCells[S any](t require.TestingT, want [][]S, m matrix.Matrix[S]) {
	require.NotNil(t, m)
	require.Equal(t, matrix.NewIndex(len(want)-1, len(want[0])-1), m.Size())
	require.Equal(t, want, Cells(t, m))
}

// RequireSameCells asserts that a and b agree at every coordinate, presence included.
func RequireSameCells[S any](t require.TestingT, a, b matrix.Matrix[S]) {
	require.Equal(t, a.Size(), b.Size())
	size := a.Size()
	for i := 0; i < size.Rows(); i++ {
		for j := 0; j < size.Columns(); j++ {
			idx := matrix.NewIndex(i, j)
			av, aok := a.Value(idx)
			bv, bok := b.Value(idx)
			require.Equalf(t, aok, bok, "presence differs at %s", idx)
			require.Equalf(t, av, bv, "value differs at %s", idx)
		}
	}
}

// countingRing wraps integer arithmetic and counts Zero() calls, exposing how
// often a kernel had to substitute or seed with the additive identity.
type countingRing struct{ zeros int }

func (r *countingRing) Zero() int            { r.zeros++; return 0 }
func (r *countingRing) Sum(a, b int) int     { return a + b }
func (r *countingRing) Product(a, b int) int { return a * b }
