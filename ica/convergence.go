package ica

import (
	"math"

	"github.com/katalvlaran/fastica/matrix"
	"gonum.org/v1/gonum/floats"
)

// maxChange returns max_i |a[i] - b[i]|. Lengths must match.
func maxChange(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// maxChangeMatrix is maxChange over every entry of two equally shaped matrices.
func maxChangeMatrix(a, b *matrix.Dense) float64 {
	return maxChange(a.RawData(), b.RawData())
}
