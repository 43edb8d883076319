// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Thin singular value decomposition and Moore–Penrose pseudo-inverse,
//     delegated to gonum/mat and converted back to the package's Dense layout.
//
// Notes:
//   - Singular values are returned in descending order (gonum convention).
//   - The pseudo-inverse drops singular values below max(r,c)*eps*σmax.

package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opSVD  = "SVD"
	opPinv = "PseudoInverse"
)

// toGonum copies m into a freshly allocated *mat.Dense.
func toGonum(m Matrix) (*mat.Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, err
	}
	buf := make([]float64, len(d.data))
	copy(buf, d.data)

	return mat.NewDense(d.r, d.c, buf), nil
}

// fromGonum copies a gonum matrix into a Dense, honoring its stride.
func fromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}

// SVD computes the thin decomposition m = U · diag(s) · Vᵀ.
//
// Returns:
//   - []float64: singular values, descending (len = min(r,c)).
//   - *Dense: U (r×min(r,c)).
//   - *Dense: V (c×min(r,c)).
//
// Errors:
//   - ErrNilMatrix, ErrDecomposition.
func SVD(m Matrix) ([]float64, *Dense, *Dense, error) {
	g, err := toGonum(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDThin); !ok {
		return nil, nil, nil, matrixErrorf(opSVD, ErrDecomposition)
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	return svd.Values(nil), fromGonum(&u), fromGonum(&v), nil
}

// PseudoInverse returns the c×r Moore–Penrose inverse of an r×c matrix:
// pinv(m) = V · diag(1/s) · Uᵀ over the singular values above the cutoff.
//
// Errors:
//   - ErrNilMatrix, ErrDecomposition.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func PseudoInverse(m Matrix) (*Dense, error) {
	s, u, v, err := SVD(m)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	if len(s) == 0 {
		return nil, matrixErrorf(opPinv, ErrDecomposition)
	}

	r, c := u.r, v.r
	cutoff := float64(max(r, c)) * eps * s[0]
	inv := make([]float64, len(s))
	for i, sv := range s {
		if sv > cutoff {
			inv[i] = 1.0 / sv
		}
	}

	vs, err := ewScaleCols(v, inv)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	p, err := MulTransB(vs, u)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	return p, nil
}

// eps is the float64 machine epsilon.
var eps = math.Nextafter(1, 2) - 1
