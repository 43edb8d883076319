package ica_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/fastica/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

// mixedSignals returns two independent sub-Gaussian sources (sine and square
// wave) as columns of an n×2 matrix, and their mixture X = S·Aᵀ.
func mixedSignals(t *testing.T, n int) (sources, observed *matrix.Dense) {
	t.Helper()
	src := make([][]float64, n)
	obs := make([][]float64, n)
	var ts, s1, s2 float64
	for i := 0; i < n; i++ {
		ts = 8 * float64(i) / float64(n)
		s1 = math.Sin(2 * ts)
		s2 = math.Copysign(1, math.Sin(3*ts))
		src[i] = []float64{s1, s2}
		obs[i] = []float64{s1 + s2, 0.5*s1 + 2*s2}
	}
	var err error
	sources, err = matrix.NewDenseFromRows(src)
	require.NoError(t, err)
	observed, err = matrix.NewDenseFromRows(obs)
	require.NoError(t, err)

	return sources, observed
}

// column extracts column j or fails the test.
func column(t *testing.T, m *matrix.Dense, j int) []float64 {
	t.Helper()
	c, err := m.Col(j)
	require.NoError(t, err)

	return c
}

// absCorr is |Pearson correlation| of two equally long series.
func absCorr(a, b []float64) float64 {
	return math.Abs(stat.Correlation(a, b, nil))
}

// bestMatch returns, for every source column, the best |corr| against the
// recovered columns under the best one-to-one assignment of two columns.
func bestMatch2(t *testing.T, sources, recovered *matrix.Dense) (float64, float64) {
	t.Helper()
	s0, s1 := column(t, sources, 0), column(t, sources, 1)
	r0, r1 := column(t, recovered, 0), column(t, recovered, 1)
	straight0, straight1 := absCorr(s0, r0), absCorr(s1, r1)
	swapped0, swapped1 := absCorr(s0, r1), absCorr(s1, r0)
	if straight0+straight1 >= swapped0+swapped1 {
		return straight0, straight1
	}

	return swapped0, swapped1
}

// requireCovarianceScaledIdentity asserts that the columns of m are
// uncorrelated and share one variance.
func requireCovarianceScaledIdentity(t *testing.T, m *matrix.Dense, rtol float64) {
	t.Helper()
	cov, _, err := matrix.Covariance(m)
	require.NoError(t, err)
	k := cov.Rows()
	d0, err := cov.At(0, 0)
	require.NoError(t, err)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v, err := cov.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.InEpsilon(t, d0, v, rtol, "diagonal %d", i)
				continue
			}
			require.InDelta(t, 0, v/d0, rtol, "off-diagonal (%d,%d)", i, j)
		}
	}
}
