// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for sparse functional options.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ringmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestSparseOptionsLastWins ensures repeated options override earlier ones and
// nil options are ignored.
func TestSparseOptionsLastWins(t *testing.T) {
	t.Parallel()

	d := MustFrom(t, [][]int{{1, 2}, {2, 1}})

	s := d.ToSparse(matrix.WithComparableDefault(1), nil, matrix.WithComparableDefault(2))
	def, has := s.Default()
	require.True(t, has)
	require.Equal(t, 2, def)
	require.Equal(t, 2, s.NNZ()) // the two 1s are stored, the 2s are implicit
	RequireSameCells[int](t, d, s)
}

// TestSparseDefaultConstant ensures the documented default policy.
func TestSparseDefaultConstant(t *testing.T) {
	t.Parallel()

	require.False(t, matrix.DefaultSparseHasDefault)
	s := MustFrom(t, [][]int{{0}}).ToSparse()
	require.Equal(t, 1, s.NNZ()) // zero is only omitted when configured
}
