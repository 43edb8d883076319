// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fastica/matrix"
	"github.com/stretchr/testify/require"
)

// correlatedSample returns n rows of three correlated variables.
func correlatedSample(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	rows := make([][]float64, n)
	for i := range rows {
		a, b, c := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
		rows[i] = []float64{a + 0.5*b, 2*b - c, 0.3*a + c + 5}
	}

	return fromRows(t, rows)
}

func TestWhiten_IdentityCovariance(t *testing.T) {
	t.Parallel()

	X := correlatedSample(t, 500)
	wh, err := matrix.Whiten(X)
	require.NoError(t, err)

	// ZCA transform is symmetric
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			require.InDelta(t, mustAt(t, wh, i, j), mustAt(t, wh, j, i), 1e-10)
		}
	}

	Xc, _, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	Z, err := matrix.Mul(Xc, wh)
	require.NoError(t, err)
	cov, _, err := matrix.Covariance(Z)
	require.NoError(t, err)

	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	requireClose(t, I, cov, 1e-8)
}

func TestWhiten_DropsZeroVarianceDirection(t *testing.T) {
	t.Parallel()

	// second column is an exact copy of the first: rank 1 covariance
	X := fromRows(t, [][]float64{{1, 1}, {2, 2}, {4, 4}, {7, 7}})
	wh, err := matrix.Whiten(X)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v := mustAt(t, wh, i, j)
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		}
	}

	Xc, _, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	Z, err := matrix.Mul(Xc, wh)
	require.NoError(t, err)
	cov, _, err := matrix.Covariance(Z)
	require.NoError(t, err)

	// the surviving direction has unit variance, split evenly over both columns
	require.InDelta(t, 0.5, mustAt(t, cov, 0, 0), 1e-9)
	require.InDelta(t, 0.5, mustAt(t, cov, 1, 1), 1e-9)
}

func TestWhiten_TooFewRows(t *testing.T) {
	t.Parallel()

	_, err := matrix.Whiten(fromRows(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrTooFewRows)
}
