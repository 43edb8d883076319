package ica

import (
	"github.com/katalvlaran/fastica/matrix"
	"gonum.org/v1/gonum/floats"
)

// solveDeflation extracts k directions one at a time from the whitened data z.
//
// Component i starts from row i of init. Every pass removes the projections on
// the rows already solved, renormalises, and measures the change against the
// previous iterate. The loop keeps going while the change exceeds
// tolerance·lastChange and the iteration cap is not reached; otherwise the
// current (deflated, normalised) vector is stored as row i. Later components
// always deflate against all earlier ones.
//
// The vector deflated on each pass is the freshly updated candidate w, not
// the previous iterate w0, so the fixed-point update is kept for i > 0.
//
// Returns the k×m direction matrix and one ComponentReport per row.
func solveDeflation(z, init *matrix.Dense, opts Options) (*matrix.Dense, []ComponentReport, error) {
	k, m := init.Rows(), init.Cols()
	W, err := matrix.NewDense(k, m)
	if err != nil {
		return nil, nil, err
	}

	ws := newWorkspace(z.Rows())
	reports := make([]ComponentReport, k)
	w := make([]float64, m)
	w0 := make([]float64, m)
	log := opts.Logger.WithName("deflation")

	var (
		i, u, iter        int
		delta, lastChange float64
		row               []float64
	)
	for i = 0; i < k; i++ {
		copy(w, init.RawRow(i))
		copy(w0, w)
		lastChange, iter = 1.0, 0

		for {
			for u = 0; u < i; u++ {
				row = W.RawRow(u)
				floats.AddScaled(w, -floats.Dot(w, row), row)
			}
			normalize(w)

			delta = maxChange(w, w0)
			if !(delta > opts.Tolerance*lastChange && iter < opts.Iterations) {
				break
			}

			copy(w0, w)
			lastChange = delta
			iter++
			fixedPointStep(z, w0, w, opts.Contrast, ws)
		}

		copy(W.RawRow(i), w)
		reports[i] = ComponentReport{
			Iterations:  iter,
			Converged:   delta <= opts.Tolerance*lastChange,
			FinalChange: delta,
		}
		log.V(2).Info("component solved", "component", i, "iterations", iter,
			"converged", reports[i].Converged, "change", delta)
	}

	return W, reports, nil
}
