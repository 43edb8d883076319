package ica

// Component is a read-only view of one extracted component.
//
// It refers back to its Analysis without owning it. Once Compute runs again
// every accessor returns ErrStaleComponent; fetch fresh views from Components.
type Component struct {
	owner      *Analysis
	index      int
	generation uint64
}

// Index returns the component position, 0..k-1.
func (c *Component) Index() int { return c.index }

// view runs pick under the owner's read lock after the staleness check.
func (c *Component) view(op string, pick func(a *Analysis) []float64) ([]float64, error) {
	a := c.owner
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.generation != c.generation {
		return nil, icaErrorf(op, ErrStaleComponent)
	}

	return pick(a), nil
}

// Demixing returns column Index of the demixing matrix (length m): the
// weights that turn an adjusted observation into this component.
func (c *Component) Demixing() ([]float64, error) {
	return c.view("Component.Demixing", func(a *Analysis) []float64 {
		col, _ := a.demixing.Col(c.index)
		return col
	})
}

// Mixing returns row Index of the k×m mixing matrix (length m): the
// contribution of this component to every observed variable.
func (c *Component) Mixing() ([]float64, error) {
	return c.view("Component.Mixing", func(a *Analysis) []float64 {
		row, _ := a.mixing.Row(c.index)
		return row
	})
}

// Whitening returns column Index of the whitening matrix (length m).
func (c *Component) Whitening() ([]float64, error) {
	return c.view("Component.Whitening", func(a *Analysis) []float64 {
		col, _ := a.whitening.Col(c.index)
		return col
	})
}

// Signal returns column Index of the result matrix (length n).
func (c *Component) Signal() ([]float64, error) {
	return c.view("Component.Signal", func(a *Analysis) []float64 {
		col, _ := a.result.Col(c.index)
		return col
	})
}

// Report returns the solver outcome for this component.
func (c *Component) Report() (ComponentReport, error) {
	a := c.owner
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.generation != c.generation {
		return ComponentReport{}, icaErrorf("Component.Report", ErrStaleComponent)
	}

	return a.report.Components[c.index], nil
}
