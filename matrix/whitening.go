// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Build the symmetric (ZCA) whitening transform of a data matrix:
//     Wh = E · diag(1/sqrt(λ)) · Eᵀ, where Cov = E · diag(λ) · Eᵀ.
//   - Directions whose eigenvalue is numerically zero are dropped, so a rank
//     deficient covariance still yields a finite transform.
//
// Determinism:
//   - Covariance, Jacobi rotations and the final product use fixed loop orders.

package matrix

import "math"

const (
	opWhiten = "Whiten"

	// eigenTolScale scales the Jacobi off-diagonal threshold by the covariance magnitude.
	eigenTolScale = 1e-12

	// eigenFloorScale marks eigenvalues below eigenFloorScale*max(λ) as zero.
	eigenFloorScale = 1e-12
)

// Whiten returns the c×c whitening matrix of X (r×c, rows are observations).
// Multiplying centered data on the right by the result yields columns with
// identity covariance on the retained subspace.
//
// Implementation:
//   - Stage 1: Sample covariance of the columns (requires r >= 2).
//   - Stage 2: Jacobi eigen-decomposition with a magnitude-relative tolerance.
//   - Stage 3: Scale eigenvector columns by 1/sqrt(λ) (0 for dropped directions)
//     and form Es · Eᵀ.
//
// Errors:
//   - ErrNilMatrix, ErrTooFewRows, ErrMatrixEigenFailed.
//
// Complexity:
//   - Time O(r*c^2 + iters*c^2), Space O(r*c + c^2).
func Whiten(X Matrix) (*Dense, error) {
	cov, _, err := covariance(X)
	if err != nil {
		return nil, matrixErrorf(opWhiten, err)
	}

	return WhiteningFromCovariance(cov)
}

// WhiteningFromCovariance builds the ZCA transform from a symmetric covariance matrix.
func WhiteningFromCovariance(cov Matrix) (*Dense, error) {
	d, err := AsDense(cov)
	if err != nil {
		return nil, matrixErrorf(opWhiten, err)
	}
	n := d.r

	magnitude := 1.0
	for i := 0; i < n; i++ {
		magnitude = math.Max(magnitude, math.Abs(d.data[i*n+i]))
	}
	eigs, vecs, err := Eigen(d, eigenTolScale*magnitude, 100*n*n+100)
	if err != nil {
		return nil, matrixErrorf(opWhiten, err)
	}

	largest := 0.0
	for _, l := range eigs {
		largest = math.Max(largest, l)
	}
	floor := eigenFloorScale * largest
	invSqrt := make([]float64, n)
	for i, l := range eigs {
		if l <= floor {
			continue // zero variance direction: left out of the transform
		}
		invSqrt[i] = 1.0 / math.Sqrt(l)
	}

	scaled, err := ewScaleCols(vecs, invSqrt)
	if err != nil {
		return nil, matrixErrorf(opWhiten, err)
	}
	wh, err := MulTransB(scaled, vecs)
	if err != nil {
		return nil, matrixErrorf(opWhiten, err)
	}

	return wh, nil
}
