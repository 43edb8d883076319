package ica

import (
	"sync"

	"github.com/katalvlaran/fastica/matrix"
)

// ComponentReport describes how the solve of one component ended.
// Iterations counts fixed-point updates; Converged is false when the
// iteration cap stopped the solver first.
type ComponentReport struct {
	Iterations  int
	Converged   bool
	FinalChange float64
}

// Report summarizes the latest Compute.
type Report struct {
	Algorithm  Algorithm
	Components []ComponentReport
}

// Converged reports whether every component met the tolerance.
func (r Report) Converged() bool {
	for _, c := range r.Components {
		if !c.Converged {
			return false
		}
	}

	return true
}

// Analysis is a FastICA model over one observation matrix.
//
// Column statistics are taken once in New and reused for every adjustment,
// including data passed to Separate later. Compute (re)derives the whitening,
// demixing, mixing and result matrices and replaces the component views.
//
// An Analysis is safe for concurrent use: Compute excludes every other call,
// readers share access.
type Analysis struct {
	mu   sync.RWMutex
	opts Options

	source         *matrix.Dense
	rows           [][]float64 // caller rows when built by NewFromRows
	sourceAdjusted bool        // Overwrite already applied to source
	means, stds    []float64

	computed   bool
	generation uint64
	whitening  *matrix.Dense // m×m
	demixing   *matrix.Dense // m×k
	mixing     *matrix.Dense // k×m
	result     *matrix.Dense // n×k
	components []*Component
	report     Report

	narrow narrowCache
}

// New builds an Analysis over data (rows are observations, columns are variables).
// data is referenced, not copied; it is only modified by Compute with WithOverwrite(true).
//
// Errors:
//   - ErrNilData for a nil matrix.
//   - ErrBadOption for invalid options.
//   - matrix.ErrTooFewRows when fewer than two observations are supplied.
func New(data matrix.Matrix, opts ...Option) (*Analysis, error) {
	if matrix.ValidateNotNil(data) != nil {
		return nil, icaErrorf("New", ErrNilData)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if err := o.validate(); err != nil {
		return nil, icaErrorf("New", err)
	}

	src, err := matrix.AsDense(data)
	if err != nil {
		return nil, icaErrorf("New", err)
	}
	means, stds, err := matrix.ColumnStats(src)
	if err != nil {
		return nil, icaErrorf("New", err)
	}
	o.Logger.V(1).Info("analysis created", "observations", src.Rows(), "variables", src.Cols(),
		"method", o.Method.String(), "algorithm", o.Algorithm.String())

	return &Analysis{opts: o, source: src, means: means, stds: stds}, nil
}

// NewFromRows builds an Analysis from row vectors. The rows are copied;
// with WithOverwrite(true) Compute writes the adjusted values back into them.
func NewFromRows(rows [][]float64, opts ...Option) (*Analysis, error) {
	if len(rows) == 0 {
		return nil, icaErrorf("NewFromRows", ErrNilData)
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, icaErrorf("NewFromRows", err)
	}
	a, err := New(d, opts...)
	if err != nil {
		return nil, err
	}
	a.rows = rows

	return a, nil
}

// Compute extracts as many components as there are variables.
func (a *Analysis) Compute() error {
	return a.ComputeN(a.source.Cols())
}

// ComputeN extracts k components (1 ≤ k ≤ variables). Previous results,
// component views and float32 caches are replaced on success and kept on failure.
func (a *Analysis) ComputeN(k int) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if k <= 0 {
		return icaErrorf("Compute", ErrBadOption)
	}
	if k > a.source.Cols() {
		return icaErrorf("Compute", ErrTooManyComponents)
	}
	if err := a.assemble(k); err != nil {
		return icaErrorf("Compute", err)
	}

	return nil
}

// Options returns the effective configuration.
func (a *Analysis) Options() Options {
	return a.opts
}

// Means returns a copy of the training column means.
func (a *Analysis) Means() []float64 {
	return append([]float64(nil), a.means...)
}

// StandardDeviations returns a copy of the training column standard deviations.
func (a *Analysis) StandardDeviations() []float64 {
	return append([]float64(nil), a.stds...)
}

// snapshot returns a copy of a computed matrix under the read lock.
func (a *Analysis) snapshot(op string, pick func() *matrix.Dense) (*matrix.Dense, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.computed {
		return nil, icaErrorf(op, ErrNotComputed)
	}

	return pick().Copy(), nil
}

// WhiteningMatrix returns a copy of the m×m whitening transform.
func (a *Analysis) WhiteningMatrix() (*matrix.Dense, error) {
	return a.snapshot("WhiteningMatrix", func() *matrix.Dense { return a.whitening })
}

// DemixingMatrix returns a copy of the m×k demixing matrix; column j maps
// adjusted observations onto component j.
func (a *Analysis) DemixingMatrix() (*matrix.Dense, error) {
	return a.snapshot("DemixingMatrix", func() *matrix.Dense { return a.demixing })
}

// MixingMatrix returns a copy of the k×m mixing matrix, the pseudo-inverse
// of the demixing matrix.
func (a *Analysis) MixingMatrix() (*matrix.Dense, error) {
	return a.snapshot("MixingMatrix", func() *matrix.Dense { return a.mixing })
}

// Result returns a copy of the n×k component signals of the training data.
func (a *Analysis) Result() (*matrix.Dense, error) {
	return a.snapshot("Result", func() *matrix.Dense { return a.result })
}

// Components returns the component views of the latest Compute, in index order.
func (a *Analysis) Components() ([]*Component, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.computed {
		return nil, icaErrorf("Components", ErrNotComputed)
	}

	return append([]*Component(nil), a.components...), nil
}

// Report returns the solver outcome of the latest Compute.
func (a *Analysis) Report() (Report, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.computed {
		return Report{}, icaErrorf("Report", ErrNotComputed)
	}
	r := a.report
	r.Components = append([]ComponentReport(nil), a.report.Components...)

	return r, nil
}
