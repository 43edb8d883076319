package ica

import (
	"sync"

	"github.com/katalvlaran/fastica/matrix"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// Separate adjusts data with the training statistics and projects it through
// the demixing matrix. data must have as many columns as the training data;
// it is never modified. The result is n×k.
func (a *Analysis) Separate(data matrix.Matrix) (*matrix.Dense, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out, err := a.separate(data)
	if err != nil {
		return nil, icaErrorf("Separate", err)
	}

	return out, nil
}

// SeparateRows is Separate for row vectors.
func (a *Analysis) SeparateRows(rows [][]float64) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, icaErrorf("SeparateRows", ErrNilData)
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, icaErrorf("SeparateRows", err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	out, err := a.separate(d)
	if err != nil {
		return nil, icaErrorf("SeparateRows", err)
	}

	return out.ToRows(), nil
}

func (a *Analysis) separate(data matrix.Matrix) (*matrix.Dense, error) {
	if !a.computed {
		return nil, ErrNotComputed
	}
	if matrix.ValidateNotNil(data) != nil {
		return nil, ErrNilData
	}
	d, err := matrix.AsDense(data)
	if err != nil {
		return nil, err
	}
	adjusted, err := a.adjust(d, false)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(adjusted, a.demixing)
}

// Combine maps component signals (n×k) back to the observation space (n×m)
// through the mixing matrix. The training means are not added back.
func (a *Analysis) Combine(components matrix.Matrix) (*matrix.Dense, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out, err := a.combine(components)
	if err != nil {
		return nil, icaErrorf("Combine", err)
	}

	return out, nil
}

// CombineRows is Combine for row vectors.
func (a *Analysis) CombineRows(rows [][]float64) ([][]float64, error) {
	if len(rows) == 0 {
		return nil, icaErrorf("CombineRows", ErrNilData)
	}
	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, icaErrorf("CombineRows", err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	out, err := a.combine(d)
	if err != nil {
		return nil, icaErrorf("CombineRows", err)
	}

	return out.ToRows(), nil
}

func (a *Analysis) combine(components matrix.Matrix) (*matrix.Dense, error) {
	if !a.computed {
		return nil, ErrNotComputed
	}
	if matrix.ValidateNotNil(components) != nil {
		return nil, ErrNilData
	}
	if components.Cols() != a.mixing.Rows() {
		return nil, ErrDimensionMismatch
	}

	return matrix.Mul(components, a.mixing)
}

// SeparateFloat32 is Separate in single precision. The demixing matrix is
// narrowed once, then cached until the next Compute.
func (a *Analysis) SeparateFloat32(rows [][]float32) ([][]float32, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.computed {
		return nil, icaErrorf("SeparateFloat32", ErrNotComputed)
	}

	adjusted, err := a.adjust32(rows)
	if err != nil {
		return nil, icaErrorf("SeparateFloat32", err)
	}

	return project32(adjusted, a.narrow.demixing32(a.demixing)), nil
}

// CombineFloat32 is Combine in single precision, backed by a cached
// narrowed copy of the mixing matrix.
func (a *Analysis) CombineFloat32(rows [][]float32) ([][]float32, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.computed {
		return nil, icaErrorf("CombineFloat32", ErrNotComputed)
	}
	k := a.mixing.Rows()
	for _, r := range rows {
		if len(r) != k {
			return nil, icaErrorf("CombineFloat32", ErrDimensionMismatch)
		}
	}

	return project32(rows, a.narrow.mixing32(a.mixing)), nil
}

// project32 returns in·p, where every row of in has p.Rows entries.
func project32(in [][]float32, p blas32.General) [][]float32 {
	out := make([][]float32, len(in))
	if len(in) == 0 {
		return out
	}

	x := blas32.General{Rows: len(in), Cols: p.Rows, Stride: p.Rows, Data: make([]float32, len(in)*p.Rows)}
	for i, row := range in {
		copy(x.Data[i*x.Stride:], row)
	}
	y := blas32.General{Rows: len(in), Cols: p.Cols, Stride: p.Cols, Data: make([]float32, len(in)*p.Cols)}
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1, x, p, 0, y)

	for i := range out {
		out[i] = y.Data[i*y.Stride : (i+1)*y.Stride : (i+1)*y.Stride]
	}

	return out
}

// narrowCache memoizes float32 copies of the demixing and mixing matrices.
// It has its own lock because readers of Analysis fill it lazily.
type narrowCache struct {
	mu       sync.Mutex
	demixing blas32.General
	mixing   blas32.General
}

func (c *narrowCache) reset() {
	c.mu.Lock()
	c.demixing, c.mixing = blas32.General{}, blas32.General{}
	c.mu.Unlock()
}

func (c *narrowCache) demixing32(src *matrix.Dense) blas32.General {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.demixing.Data == nil {
		c.demixing = narrow32(src)
	}

	return c.demixing
}

func (c *narrowCache) mixing32(src *matrix.Dense) blas32.General {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mixing.Data == nil {
		c.mixing = narrow32(src)
	}

	return c.mixing
}

// narrow32 converts src to a row-major float32 matrix.
func narrow32(src *matrix.Dense) blas32.General {
	r, c := src.Shape()
	g := blas32.General{Rows: r, Cols: c, Stride: c, Data: make([]float32, r*c)}
	for i, v := range src.RawData() {
		g.Data[i] = float32(v)
	}

	return g
}
