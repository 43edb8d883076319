package ica

import (
	"github.com/katalvlaran/fastica/matrix"
	"gonum.org/v1/gonum/floats"
)

// adjust applies the training statistics to m: subtract the column means and,
// under Standardize, divide by the column standard deviations. With inPlace
// false m is left untouched and a fresh matrix is returned.
//
// A zero standard deviation under Standardize fails before anything is written.
func (a *Analysis) adjust(m *matrix.Dense, inPlace bool) (*matrix.Dense, error) {
	if m.Cols() != len(a.means) {
		return nil, ErrDimensionMismatch
	}
	standardize := a.opts.Method == Standardize
	if standardize {
		if err := a.checkStdDevs(); err != nil {
			return nil, err
		}
	}

	out := m
	if !inPlace {
		out = m.Copy()
	}
	var row []float64
	for i := 0; i < out.Rows(); i++ {
		row = out.RawRow(i)
		floats.Sub(row, a.means)
		if standardize {
			floats.Div(row, a.stds)
		}
	}

	return out, nil
}

// adjust32 is the reduced-precision variant of adjust. It always allocates.
func (a *Analysis) adjust32(rows [][]float32) ([][]float32, error) {
	standardize := a.opts.Method == Standardize
	if standardize {
		if err := a.checkStdDevs(); err != nil {
			return nil, err
		}
	}

	m := len(a.means)
	out := make([][]float32, len(rows))
	var v float64
	for i, src := range rows {
		if len(src) != m {
			return nil, ErrDimensionMismatch
		}
		out[i] = make([]float32, m)
		for j, x := range src {
			v = float64(x) - a.means[j]
			if standardize {
				v /= a.stds[j]
			}
			out[i][j] = float32(v)
		}
	}

	return out, nil
}

// checkStdDevs reports the first column whose standard deviation is exactly zero.
func (a *Analysis) checkStdDevs() error {
	for j, sd := range a.stds {
		if sd == 0 {
			return &ZeroStdDevError{Column: j}
		}
	}

	return nil
}
