package ica_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fastica/ica"
	"github.com/katalvlaran/fastica/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func computed(t *testing.T, opts ...ica.Option) (*ica.Analysis, *matrix.Dense) {
	t.Helper()
	_, observed := mixedSignals(t, 600)
	a, err := ica.New(observed, opts...)
	require.NoError(t, err)
	require.NoError(t, a.Compute())

	return a, observed
}

func TestSeparate_BeforeCompute(t *testing.T) {
	t.Parallel()

	_, observed := mixedSignals(t, 50)
	a, err := ica.New(observed)
	require.NoError(t, err)

	_, err = a.Separate(observed)
	assert.ErrorIs(t, err, ica.ErrNotComputed)
	_, err = a.SeparateRows(observed.ToRows())
	assert.ErrorIs(t, err, ica.ErrNotComputed)
	_, err = a.SeparateFloat32([][]float32{{1, 2}})
	assert.ErrorIs(t, err, ica.ErrNotComputed)
	_, err = a.Combine(observed)
	assert.ErrorIs(t, err, ica.ErrNotComputed)
	_, err = a.CombineRows(observed.ToRows())
	assert.ErrorIs(t, err, ica.ErrNotComputed)
	_, err = a.CombineFloat32([][]float32{{1, 2}})
	assert.ErrorIs(t, err, ica.ErrNotComputed)
	_, err = a.WhiteningMatrix()
	assert.ErrorIs(t, err, ica.ErrNotComputed)
	_, err = a.MixingMatrix()
	assert.ErrorIs(t, err, ica.ErrNotComputed)
	_, err = a.DemixingMatrix()
	assert.ErrorIs(t, err, ica.ErrNotComputed)
	_, err = a.Components()
	assert.ErrorIs(t, err, ica.ErrNotComputed)
}

// TestSeparate_ReproducesResult: separating the training data again yields
// the stored result bit for bit.
func TestSeparate_ReproducesResult(t *testing.T) {
	t.Parallel()

	for _, method := range []ica.Method{ica.Center, ica.Standardize} {
		a, observed := computed(t, ica.WithMethod(method))
		before := observed.ToRows()

		result, err := a.Result()
		require.NoError(t, err)
		sep, err := a.Separate(observed)
		require.NoError(t, err)
		assert.Equal(t, result.ToRows(), sep.ToRows())
		assert.Equal(t, before, observed.ToRows(), "Separate must not modify its input")

		rows, err := a.SeparateRows(observed.ToRows())
		require.NoError(t, err)
		assert.Equal(t, result.ToRows(), rows)
	}
}

// TestSeparate_UsesTrainingStatistics projects a shifted sample and checks
// the shift survives, which it would not if the sample were re-centered.
func TestSeparate_UsesTrainingStatistics(t *testing.T) {
	t.Parallel()

	a, _ := computed(t)
	means := a.Means()
	atMean, err := a.SeparateRows([][]float64{means})
	require.NoError(t, err)
	for _, v := range atMean[0] {
		assert.InDelta(t, 0, v, 1e-12)
	}

	shifted, err := a.SeparateRows([][]float64{{means[0] + 1, means[1]}})
	require.NoError(t, err)
	demixing, err := a.DemixingMatrix()
	require.NoError(t, err)
	row0, err := demixing.Row(0)
	require.NoError(t, err)
	assert.InDeltaSlice(t, row0, shifted[0], 1e-12)
}

func TestSeparate_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a, _ := computed(t)
	_, err := a.SeparateRows([][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ica.ErrDimensionMismatch)
	_, err = a.SeparateFloat32([][]float32{{1}})
	assert.ErrorIs(t, err, ica.ErrDimensionMismatch)
	_, err = a.CombineRows([][]float64{{1, 2, 3}})
	assert.ErrorIs(t, err, ica.ErrDimensionMismatch)
	_, err = a.CombineFloat32([][]float32{{1, 2, 3}})
	assert.ErrorIs(t, err, ica.ErrDimensionMismatch)
	_, err = a.Separate(nil)
	assert.ErrorIs(t, err, ica.ErrNilData)
	_, err = a.SeparateRows(nil)
	assert.ErrorIs(t, err, ica.ErrNilData)
}

// TestCombine_ReconstructsAdjustedData: with k = m, Combine(Result) is the
// adjusted training data up to one scalar (the two sum normalizations).
func TestCombine_ReconstructsAdjustedData(t *testing.T) {
	t.Parallel()

	a, observed := computed(t)
	result, err := a.Result()
	require.NoError(t, err)
	back, err := a.Combine(result)
	require.NoError(t, err)

	adjusted, _, err := matrix.CenterColumns(observed)
	require.NoError(t, err)

	x, y := adjusted.RawData(), back.RawData()
	var xy, xx, maxY float64
	for i := range x {
		xy += x[i] * y[i]
		xx += x[i] * x[i]
		maxY = math.Max(maxY, math.Abs(y[i]))
	}
	scale := xy / xx
	for i := range x {
		require.InDelta(t, scale*x[i], y[i], 1e-8*maxY)
	}
}

func maxAbs32(rows [][]float32) float64 {
	var m float64
	for _, r := range rows {
		for _, v := range r {
			m = math.Max(m, math.Abs(float64(v)))
		}
	}

	return m
}

func toFloat32(rows [][]float64) [][]float32 {
	out := make([][]float32, len(rows))
	for i, r := range rows {
		out[i] = make([]float32, len(r))
		for j, v := range r {
			out[i][j] = float32(v)
		}
	}

	return out
}

func TestFloat32_MatchesDoublePrecision(t *testing.T) {
	t.Parallel()

	a, observed := computed(t, ica.WithMethod(ica.Standardize))
	result, err := a.Result()
	require.NoError(t, err)

	sep32, err := a.SeparateFloat32(toFloat32(observed.ToRows()))
	require.NoError(t, err)
	tol := 1e-4 * maxAbs32(sep32)
	want := result.ToRows()
	for i := range want {
		for j := range want[i] {
			require.InDelta(t, want[i][j], float64(sep32[i][j]), tol)
		}
	}

	back, err := a.Combine(result)
	require.NoError(t, err)
	back32, err := a.CombineFloat32(toFloat32(result.ToRows()))
	require.NoError(t, err)
	tol = 1e-4 * maxAbs32(back32)
	wantBack := back.ToRows()
	for i := range wantBack {
		for j := range wantBack[i] {
			require.InDelta(t, wantBack[i][j], float64(back32[i][j]), tol)
		}
	}
}

// TestFloat32_CacheResetOnCompute recomputes with fewer components and checks
// the narrow path follows the new shape.
func TestFloat32_CacheResetOnCompute(t *testing.T) {
	t.Parallel()

	a, observed := computed(t)
	rows32 := toFloat32(observed.ToRows())

	out, err := a.SeparateFloat32(rows32)
	require.NoError(t, err)
	require.Len(t, out[0], 2)

	require.NoError(t, a.ComputeN(1))
	out, err = a.SeparateFloat32(rows32)
	require.NoError(t, err)
	require.Len(t, out[0], 1)

	_, err = a.CombineFloat32([][]float32{{1, 2}})
	assert.ErrorIs(t, err, ica.ErrDimensionMismatch)
	back, err := a.CombineFloat32([][]float32{{1}})
	require.NoError(t, err)
	require.Len(t, back[0], 2)
}
