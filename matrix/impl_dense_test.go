// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fastica/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite verifies the NaN/Inf ingestion policy.
func TestSetRejectsNonFinite(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewDenseFromRows covers copy semantics and ragged input.
func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := fromRows(t, src)
	src[0][0] = 100 // later mutation must not leak into the matrix

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 1.0, mustAt(t, m, 0, 0))
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())

	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRaggedRows)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseFromLength checks the flat constructor length contract.
func TestNewDenseFromLength(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 3.0, mustAt(t, m, 1, 0))
}

// TestRawRowSharesStorage documents that RawRow is a live view while Row copies.
func TestRawRowSharesStorage(t *testing.T) {
	t.Parallel()

	m := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	m.RawRow(1)[0] = 9
	require.Equal(t, 9.0, mustAt(t, m, 1, 0))

	row, err := m.Row(0)
	require.NoError(t, err)
	row[0] = -1
	require.Equal(t, 1.0, mustAt(t, m, 0, 0))

	col, err := m.Col(1)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 4}, col)

	_, err = m.Col(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	m := fromRows(t, [][]float64{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0))

	require.Equal(t, 1.0, mustAt(t, m, 0, 0))
	require.Equal(t, 3.0, mustAt(t, clone, 0, 0))
}

// TestApply verifies in-place mapping and rejection of non-finite results.
func TestApply(t *testing.T) {
	t.Parallel()

	m := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * v }))
	require.Equal(t, [][]float64{{1, 4}, {9, 16}}, m.ToRows())

	err := m.Apply(func(_, _ int, v float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestAsDenseFallback copies a foreign Matrix into the flat layout.
func TestAsDenseFallback(t *testing.T) {
	t.Parallel()

	m := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	d, err := matrix.AsDense(hide{m})
	require.NoError(t, err)
	require.NotSame(t, m, d)
	require.Equal(t, m.ToRows(), d.ToRows())

	same, err := matrix.AsDense(m)
	require.NoError(t, err)
	require.Same(t, m, same)

	var nilDense *matrix.Dense
	_, err = matrix.AsDense(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
