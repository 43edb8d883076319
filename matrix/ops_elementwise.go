// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide small, *private* element-wise and broadcast kernels (ew*) so that
//     statistics and comparison helpers share one tight loop each.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1) over the row-major buffer.
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.

package matrix

import "math"

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
// Time: O(r*c). Space: O(r*c).
func ewBroadcastSubCols(X *Dense, colMeans []float64) (*Dense, error) {
	if err := ValidateVecLen(colMeans, X.c); err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	out := X.cloneDense()
	var i, j, base int
	for i = 0; i < out.r; i++ {
		base = i * out.c
		for j = 0; j < out.c; j++ {
			out.data[base+j] -= colMeans[j]
		}
	}

	return out, nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Time: O(r*c). Space: O(r*c).
func ewScaleCols(X *Dense, scale []float64) (*Dense, error) {
	if err := ValidateVecLen(scale, X.c); err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	out := X.cloneDense()
	var i, j, base int
	for i = 0; i < out.r; i++ {
		base = i * out.c
		for j = 0; j < out.c; j++ {
			out.data[base+j] *= scale[j]
		}
	}

	return out, nil
}

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Time: O(r*c). Space: O(1).
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
//   - NaN never compares close; equal infinities do.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := AsDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := AsDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var av, bv float64
	for idx := range da.data {
		av, bv = da.data[idx], db.data[idx]
		if av == bv {
			continue // covers equal infinities
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) || math.IsNaN(av) || math.IsNaN(bv) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
