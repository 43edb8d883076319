// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Thin, intention-revealing entry points over the canonical kernels.
//   - No logic duplication: each facade delegates to one implementation.

package matrix

// NewIdentity returns I_n (n×n identity).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// CenterColumns subtracts the per-column mean and returns the centered copy
// together with the means.
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	return centerColumns(X)
}

// ScaleColumns returns a copy of X with column j multiplied by scale[j].
func ScaleColumns(X Matrix, scale []float64) (*Dense, error) {
	d, err := AsDense(X)
	if err != nil {
		return nil, matrixErrorf("ScaleColumns", err)
	}

	return ewScaleCols(d, scale)
}

// Covariance returns the sample covariance of the columns of X and the column means.
func Covariance(X Matrix) (*Dense, []float64, error) {
	return covariance(X)
}

// AllClose reports whether a and b have the same shape and every pair of
// elements satisfies |a-b| ≤ atol + rtol*|b|.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}
