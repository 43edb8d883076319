package ica

import (
	"github.com/katalvlaran/fastica/matrix"
	"gonum.org/v1/gonum/floats"
)

// workspace holds the per-observation scratch buffers of one fixed-point update.
// A workspace must not be shared between goroutines.
type workspace struct {
	proj, g, dg []float64
}

func newWorkspace(n int) *workspace {
	return &workspace{
		proj: make([]float64, n),
		g:    make([]float64, n),
		dg:   make([]float64, n),
	}
}

// fixedPointStep writes into out the update
//
//	out = E[x·g(w0·x)] - E[g'(w0·x)]·w0
//
// where the expectations run over the rows x of the whitened data z (n×m).
// out and w0 must not alias.
func fixedPointStep(z *matrix.Dense, w0, out []float64, c Contrast, ws *workspace) {
	n := z.Rows()
	for i := 0; i < n; i++ {
		ws.proj[i] = floats.Dot(z.RawRow(i), w0)
	}
	c.Evaluate(ws.proj, ws.g, ws.dg)

	for j := range out {
		out[j] = 0
	}
	for i := 0; i < n; i++ {
		floats.AddScaled(out, ws.g[i], z.RawRow(i))
	}
	inv := 1.0 / float64(n)
	floats.Scale(inv, out)
	floats.AddScaled(out, -floats.Sum(ws.dg)*inv, w0)
}

// normalize scales w to unit Euclidean norm. A zero vector is left unchanged.
func normalize(w []float64) {
	norm := floats.Norm(w, 2)
	if norm == 0 {
		return
	}
	floats.Scale(1/norm, w)
}
