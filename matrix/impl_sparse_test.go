// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Sparse storage strategy and
// its inclusion policy.
package matrix_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/katalvlaran/ringmat/matrix"
	"github.com/katalvlaran/ringmat/ring"
	"github.com/stretchr/testify/require"
)

// diagonalOnly reports values on the diagonal and "no value" elsewhere.
func diagonalOnly(idx matrix.Index) (int, bool) {
	if idx.AreDiagonal() {
		return idx.Row() + 1, true
	}

	return 0, false
}

// TestNewSparseOmitsAbsent checks the default policy (no default element).
func TestNewSparseOmitsAbsent(t *testing.T) {
	t.Parallel()

	s, err := matrix.NewSparse(3, 3, diagonalOnly)
	require.NoError(t, err)
	require.Equal(t, matrix.NewIndex(2, 2), s.Size())
	require.Equal(t, 3, s.NNZ())
	require.Equal(t, 3, s.Rows())
	require.Equal(t, 3, s.Columns())

	v, ok := s.Value(matrix.NewIndex(1, 1))
	require.True(t, ok)
	require.Equal(t, 2, v)

	_, ok = s.Value(matrix.NewIndex(0, 1)) // in range, not stored
	require.False(t, ok)
	_, ok = s.Value(matrix.NewIndex(3, 3)) // out of range
	require.False(t, ok)

	_, has := s.Default()
	require.False(t, has)
}

// TestNewSparseDefaultOmission stores only entries different from the default.
func TestNewSparseDefaultOmission(t *testing.T) {
	t.Parallel()

	dense := MustFrom(t, [][]int{{0, 5, 0}, {0, 0, 0}, {7, 0, 0}})
	s := dense.ToSparse(matrix.WithComparableDefault(0))

	require.Equal(t, 2, s.NNZ())
	require.True(t, s.Support().Contains(matrix.NewIndex(0, 1), matrix.NewIndex(2, 0)))

	// Unstored in-range coordinates fall back to the default, reported present.
	v, ok := s.Value(matrix.NewIndex(1, 1))
	require.True(t, ok)
	require.Equal(t, 0, v)

	// Out of range stays absent even with a default.
	_, ok = s.Value(matrix.NewIndex(0, 3))
	require.False(t, ok)

	def, has := s.Default()
	require.True(t, has)
	require.Equal(t, 0, def)

	RequireSameCells[int](t, dense, s)
}

// TestSparseCustomEquality uses a non-comparable element type.
func TestSparseCustomEquality(t *testing.T) {
	t.Parallel()

	zero := func(a, b *big.Int) bool { return a.Cmp(b) == 0 }
	s, err := matrix.NewSparse(2, 2, func(idx matrix.Index) (*big.Int, bool) {
		return big.NewInt(int64(idx.Row() * idx.Column())), true
	}, matrix.WithDefault(new(big.Int), zero))
	require.NoError(t, err)
	require.Equal(t, 1, s.NNZ()) // only (1,1) = 1 is non-zero

	v, ok := s.At(1, 1)
	require.True(t, ok)
	require.Equal(t, int64(1), v.Int64())
}

// TestSparseRingZeroDefault drops +Inf under the tropical semiring.
func TestSparseRingZeroDefault(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	dense := MustFrom(t, [][]float64{{0, inf}, {2, 0}})
	s := dense.ToSparse(matrix.WithRingZero[float64](ring.MinPlus{}))
	require.Equal(t, 3, s.NNZ())
	require.False(t, s.Support().Contains(matrix.NewIndex(0, 1)))

	v, ok := s.At(0, 1)
	require.True(t, ok)
	require.True(t, math.IsInf(v, 1))
}

// TestToSparseNeverStoresUnset ensures unset Dense cells stay absent.
func TestToSparseNeverStoresUnset(t *testing.T) {
	t.Parallel()

	ragged := MustFrom(t, [][]int{{1, 2}, {3}})
	s := ragged.ToSparse()
	require.Equal(t, 3, s.NNZ())
	_, ok := s.Value(matrix.NewIndex(1, 1))
	require.False(t, ok)
	RequireSameCells[int](t, ragged, s)
}

// TestSparseSupportIsACopy ensures callers cannot mutate storage via Support.
func TestSparseSupportIsACopy(t *testing.T) {
	t.Parallel()

	s, err := matrix.NewSparse(2, 2, diagonalOnly)
	require.NoError(t, err)

	support := s.Support()
	require.Equal(t, 2, support.Cardinality())
	support.Add(matrix.NewIndex(0, 1))
	support.Remove(matrix.NewIndex(0, 0))

	require.Equal(t, 2, s.NNZ())
	require.True(t, s.Support().Contains(matrix.NewIndex(0, 0)))
}

// TestNewSparseErrors checks shape, nil generator and option validation.
func TestNewSparseErrors(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewSparse(2, 0, diagonalOnly)
	var le *matrix.LengthError
	require.ErrorAs(t, err, &le)
	require.Equal(t, matrix.CauseColumn, le.Cause)

	_, err = matrix.NewSparse[int](0, 2, nil)
	require.ErrorAs(t, err, &le)
	require.Equal(t, matrix.CauseRow, le.Cause)

	_, err = matrix.NewSparse[int](1, 1, nil)
	require.ErrorIs(t, err, matrix.ErrNilGenerator)

	require.Panics(t, func() { matrix.WithDefault[int](0, nil) })
}

// TestSparseAtAndString covers clamping and rendering of unstored cells.
func TestSparseAtAndString(t *testing.T) {
	t.Parallel()

	s, err := matrix.NewSparse(2, 2, diagonalOnly)
	require.NoError(t, err)

	v, ok := s.At(-1, -1)
	require.True(t, ok)
	require.Equal(t, 1, v)

	autogold.Expect("1\t\t\n\t2\t\n").Equal(t, s.String())

	withDefault, err := matrix.NewSparse(2, 2, diagonalOnly, matrix.WithComparableDefault(0))
	require.NoError(t, err)
	autogold.Expect("1\t0\t\n0\t2\t\n").Equal(t, withDefault.String())
}

// TestSparseArithmetic keeps the receiver's strategy and policy.
func TestSparseArithmetic(t *testing.T) {
	t.Parallel()

	a := MustFrom(t, [][]int{{1, 0}, {0, 0}}).ToSparse(matrix.WithRingZero[int](ring.Int()))
	b := MustFrom(t, [][]int{{-1, 0}, {0, 4}})

	sum, err := a.Plus(b, ring.Int())
	require.NoError(t, err)
	sp, ok := sum.(*matrix.Sparse[int])
	require.True(t, ok)
	require.Equal(t, 1, sp.NNZ()) // 1 + -1 cancels to the default
	RequireCells(t, [][]int{{0, 0}, {0, 4}}, sum)

	id := MustIdentity(t, 2, 0, 1)
	c := MustFrom(t, [][]int{{1, 2}, {3, 4}}).ToSparse(matrix.WithRingZero[int](ring.Int()))
	prod, err := c.Times(id, ring.Int())
	require.NoError(t, err)
	require.IsType(t, &matrix.Sparse[int]{}, prod)
	RequireCells(t, [][]int{{1, 2}, {3, 4}}, prod)

	// Mixed strategies: dense receiver, sparse operand.
	prod, err = id.Times(c, ring.Int())
	require.NoError(t, err)
	require.IsType(t, &matrix.Dense[int]{}, prod)
	RequireCells(t, [][]int{{1, 2}, {3, 4}}, prod)
}

// TestSparseArithmeticAbsentAsZero reads unstored cells as r.Zero() when no
// default is configured.
func TestSparseArithmeticAbsentAsZero(t *testing.T) {
	t.Parallel()

	s, err := matrix.NewSparse(2, 2, diagonalOnly) // [[1,·],[·,2]]
	require.NoError(t, err)
	full := MustFrom(t, [][]int{{1, 1}, {1, 1}})

	sum, err := s.Plus(full, ring.Int())
	require.NoError(t, err)
	RequireCells(t, [][]int{{2, 1}, {1, 3}}, sum)
}

// TestSparseArithmeticErrors mirrors the Dense validation order.
func TestSparseArithmeticErrors(t *testing.T) {
	t.Parallel()

	s, err := matrix.NewSparse(2, 3, func(matrix.Index) (int, bool) { return 1, true })
	require.NoError(t, err)
	sq := MustIdentity(t, 2, 0, 1)

	_, err = s.Plus(sq, ring.Int())
	require.ErrorIs(t, err, matrix.ErrInconsistentSize)

	_, err = s.Times(s, ring.Int())
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = s.Plus(nil, ring.Int())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = s.Times(s, nil)
	require.ErrorIs(t, err, matrix.ErrNilRing)

	var nilSparse *matrix.Sparse[int]
	_, err = nilSparse.Times(sq, ring.Int())
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, ok := nilSparse.Value(matrix.NewIndex(0, 0))
	require.False(t, ok)
}
