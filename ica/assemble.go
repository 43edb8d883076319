package ica

import (
	"math"

	"github.com/go-logr/logr"
	"github.com/katalvlaran/fastica/matrix"
)

// assemble runs the whole pipeline for k components and commits the results.
// The caller holds the write lock.
//
// Stages:
//  1. adjust the source (in place under Overwrite),
//  2. whiten it,
//  3. solve for k directions in whitened space from a seeded uniform guess,
//  4. demixing = whitening·Wᵀ, divided by the sum of its entries,
//  5. mixing = pinv(demixing), divided by the sum of its entries,
//  6. result = adjusted·demixing,
//  7. one Component per direction.
func (a *Analysis) assemble(k int) error {
	log := a.opts.Logger
	m := a.source.Cols()

	adjusted := a.source
	if !a.sourceAdjusted {
		var err error
		if adjusted, err = a.adjust(a.source, a.opts.Overwrite); err != nil {
			return err
		}
		if a.opts.Overwrite {
			a.sourceAdjusted = true
			for i, row := range a.rows {
				copy(row, adjusted.RawRow(i))
			}
		}
	}

	whitening, err := matrix.Whiten(adjusted)
	if err != nil {
		return err
	}
	z, err := matrix.Mul(adjusted, whitening)
	if err != nil {
		return err
	}
	init, err := matrix.Random(k, m, rngFromSeed(a.opts.Seed))
	if err != nil {
		return err
	}

	var (
		W       *matrix.Dense
		reports []ComponentReport
	)
	switch a.opts.Algorithm {
	case Deflation:
		W, reports, err = solveDeflation(z, init, a.opts)
	default:
		W, reports, err = solveSymmetric(z, init, a.opts)
	}
	if err != nil {
		return err
	}

	demixing, err := matrix.MulTransB(whitening, W)
	if err != nil {
		return err
	}
	if demixing, err = normalizeBySum(demixing, "demixing", log); err != nil {
		return err
	}
	mixing, err := matrix.PseudoInverse(demixing)
	if err != nil {
		return err
	}
	if mixing, err = normalizeBySum(mixing, "mixing", log); err != nil {
		return err
	}
	result, err := matrix.Mul(adjusted, demixing)
	if err != nil {
		return err
	}

	a.whitening, a.demixing, a.mixing, a.result = whitening, demixing, mixing, result
	a.report = Report{Algorithm: a.opts.Algorithm, Components: reports}
	a.generation++
	a.components = make([]*Component, k)
	for i := range a.components {
		a.components[i] = &Component{owner: a, index: i, generation: a.generation}
	}
	a.computed = true
	a.narrow.reset()

	log.V(1).Info("compute finished", "components", k, "algorithm", a.opts.Algorithm.String(),
		"converged", a.report.Converged())

	return nil
}

// normalizeBySum divides every entry of d by the sum of all entries.
// When that sum is zero (or too small to invert) d is returned unchanged and
// a message is logged.
func normalizeBySum(d *matrix.Dense, name string, log logr.Logger) (*matrix.Dense, error) {
	sum, err := matrix.Sum(d)
	if err != nil {
		return nil, err
	}
	inv := 1 / sum
	if sum == 0 || math.IsInf(inv, 0) {
		log.Info("sum normalization skipped: entries sum to zero", "matrix", name)
		return d, nil
	}

	return matrix.Scale(d, inv)
}
