package ica

import (
	"github.com/katalvlaran/fastica/matrix"
	"golang.org/x/sync/errgroup"
)

// solveSymmetric updates all k directions together.
//
// Each sweep first decorrelates W symmetrically, W ← (W·Wᵀ)^(-1/2)·W, then
// compares it against the previous iterate. It stops once the change drops
// below tolerance·lastChange or the iteration cap is reached. Otherwise every
// row receives a fixed-point update computed from the previous iterate; rows
// are fanned out over an errgroup limited to opts.Workers and joined before
// the next decorrelation.
func solveSymmetric(z, init *matrix.Dense, opts Options) (*matrix.Dense, []ComponentReport, error) {
	k := init.Rows()
	W := init.Copy()
	W0 := init.Copy()

	workspaces := make([]*workspace, k)
	for r := range workspaces {
		workspaces[r] = newWorkspace(z.Rows())
	}

	var (
		delta      float64
		lastChange = 1.0
		iter       int
		err        error
	)
	for {
		if W, err = decorrelate(W); err != nil {
			return nil, nil, err
		}
		delta = maxChangeMatrix(W, W0)
		opts.Logger.V(2).Info("symmetric sweep", "iteration", iter, "change", delta)
		if delta < opts.Tolerance*lastChange || iter >= opts.Iterations {
			break
		}

		W, W0 = W0, W
		lastChange = delta
		iter++

		var g errgroup.Group
		g.SetLimit(opts.Workers)
		for r := 0; r < k; r++ {
			g.Go(func() error {
				fixedPointStep(z, W0.RawRow(r), W.RawRow(r), opts.Contrast, workspaces[r])
				return nil
			})
		}
		if err = g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	converged := delta < opts.Tolerance*lastChange
	reports := make([]ComponentReport, k)
	for r := range reports {
		reports[r] = ComponentReport{Iterations: iter, Converged: converged, FinalChange: delta}
	}

	return W, reports, nil
}

// decorrelate returns K·W with K = U·diag(1/S)·Uᵀ from the SVD of W.
// Singular values equal to zero contribute nothing.
func decorrelate(W *matrix.Dense) (*matrix.Dense, error) {
	s, u, _, err := matrix.SVD(W)
	if err != nil {
		return nil, err
	}
	inv := make([]float64, len(s))
	for i, sv := range s {
		if sv != 0 {
			inv[i] = 1 / sv
		}
	}
	us, err := matrix.ScaleColumns(u, inv)
	if err != nil {
		return nil, err
	}
	K, err := matrix.MulTransB(us, u)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(K, W)
}
