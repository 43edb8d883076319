// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics the ICA preprocessing consumes (means,
//     sample standard deviations, centering, covariance) as deterministic
//     compositions over canonical kernels (Mul/Transpose/Scale) and ew* micro-kernels.
//
// Exposed API:
//   - ColumnStats(X)   -> (means, stds)   // per-column mean and sample std (gonum/stat)
//   - CenterColumns(X) -> (Xc, means)     // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)    // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - A single column buffer is reused while feeding gonum/stat.

package matrix

import "gonum.org/v1/gonum/stat"

// Operation name constants for unified error wrapping.
const (
	opColumnStats   = "ColumnStats"
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// ColumnStats returns the per-column mean and sample standard deviation
// (denominator r-1) of X.
//
// Implementation:
//   - Stage 1: Validate X, require r>=2 for a defined sample deviation.
//   - Stage 2: Gather each column into a reused buffer and call stat.MeanStdDev.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows.
//
// Complexity:
//   - Time O(r*c), Space O(r + c).
//
// Notes:
//   - A constant column yields std == 0 exactly; callers decide whether that is fatal.
func ColumnStats(X Matrix) (means, stds []float64, err error) {
	d, err := AsDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opColumnStats, err)
	}
	if d.r < 2 {
		return nil, nil, matrixErrorf(opColumnStats, ErrTooFewRows)
	}

	means = make([]float64, d.c)
	stds = make([]float64, d.c)
	col := make([]float64, d.r)
	var i, j int
	for j = 0; j < d.c; j++ {
		for i = 0; i < d.r; i++ {
			col[i] = d.data[i*d.c+j]
		}
		means[j], stds[j] = stat.MeanStdDev(col, nil)
		if allEqual(col) {
			stds[j] = 0 // MeanStdDev may leave rounding residue on constant input
		}
	}

	return means, stds, nil
}

// allEqual reports whether every element of v equals v[0].
func allEqual(v []float64) bool {
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}

	return true
}

// centerColumns subtracts the per-column mean from every element.
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func centerColumns(X Matrix) (*Dense, []float64, error) {
	d, err := AsDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	means := make([]float64, d.c)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(d.r)
	for j = 0; j < d.c; j++ {
		means[j] *= invR
	}

	Xc, err := ewBroadcastSubCols(d, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// covariance computes the sample covariance of columns: Cov = (Xcᵀ * Xc)/(r-1).
//
// Behavior highlights:
//   - Output is exactly symmetric: both triangles accumulate the same products in the same order.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows (r<2).
//
// Complexity:
//   - Time O(r*c^2), Space O(r*c + c^2).
func covariance(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrTooFewRows)
	}

	Xc, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Xct, err := Transpose(Xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	G, err := MulTransB(Xct, Xct)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	Cov, err := Scale(G, 1.0/float64(Xc.r-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	return Cov, means, nil
}
