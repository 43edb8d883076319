package ica

import (
	"fmt"
	"math"
	"runtime"
	"strings"

	"github.com/go-logr/logr"
)

// Method selects how columns are adjusted before whitening.
//
//   - Center: subtract the training mean of every column.
//   - Standardize: subtract the mean, then divide by the training standard deviation.
type Method int

const (
	// Center subtracts column means only.
	Center Method = iota

	// Standardize subtracts column means and divides by column standard deviations.
	Standardize
)

// String returns the lower-case name used in configuration files.
func (m Method) String() string {
	switch m {
	case Center:
		return "center"
	case Standardize:
		return "standardize"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod converts a configuration name into a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center":
		return Center, nil
	case "standardize":
		return Standardize, nil
	default:
		return 0, fmt.Errorf("%w: unknown method %q", ErrBadOption, s)
	}
}

// Algorithm selects the solver.
//
//   - Parallel: all directions updated together, symmetric decorrelation between sweeps.
//   - Deflation: one direction at a time, Gram–Schmidt against the ones already found.
type Algorithm int

const (
	// Parallel runs the symmetric solver.
	Parallel Algorithm = iota

	// Deflation runs the sequential solver.
	Deflation
)

// String returns the lower-case name used in configuration files.
func (a Algorithm) String() string {
	switch a {
	case Parallel:
		return "parallel"
	case Deflation:
		return "deflation"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm converts a configuration name into an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "parallel", "symmetric":
		return Parallel, nil
	case "deflation":
		return Deflation, nil
	default:
		return 0, fmt.Errorf("%w: unknown algorithm %q", ErrBadOption, s)
	}
}

// Default option values.
const (
	DefaultIterations = 100
	DefaultTolerance  = 1e-3
)

// Options configures an Analysis.
//
// Fields:
//   - Method: column adjustment (Center or Standardize).
//   - Algorithm: solver (Parallel or Deflation).
//   - Iterations: cap on solver loop count per solve (>0).
//   - Tolerance: relative convergence threshold (>0, finite).
//   - Contrast: nonlinearity used by the fixed-point update (non-nil).
//   - Overwrite: adjust the source buffer in place during Compute.
//   - Seed: seed of the initial guess; 0 selects a fixed default seed.
//   - Workers: goroutine limit for the parallel row updates (>0).
//   - Logger: structured logger; the zero value is replaced by logr.Discard().
type Options struct {
	Method     Method
	Algorithm  Algorithm
	Iterations int
	Tolerance  float64
	Contrast   Contrast
	Overwrite  bool
	Seed       int64
	Workers    int
	Logger     logr.Logger
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Method:     Center,
		Algorithm:  Parallel,
		Iterations: DefaultIterations,
		Tolerance:  DefaultTolerance,
		Contrast:   LogCosh{Alpha: 1},
		Workers:    runtime.GOMAXPROCS(0),
		Logger:     logr.Discard(),
	}
}

// Option mutates Options; applied in order by New.
type Option func(*Options)

// WithMethod selects Center or Standardize.
func WithMethod(m Method) Option { return func(o *Options) { o.Method = m } }

// WithAlgorithm selects Parallel or Deflation.
func WithAlgorithm(a Algorithm) Option { return func(o *Options) { o.Algorithm = a } }

// WithIterations caps the solver loop count.
func WithIterations(n int) Option { return func(o *Options) { o.Iterations = n } }

// WithTolerance sets the relative convergence threshold.
func WithTolerance(tol float64) Option { return func(o *Options) { o.Tolerance = tol } }

// WithContrast sets the nonlinearity.
func WithContrast(c Contrast) Option { return func(o *Options) { o.Contrast = c } }

// WithOverwrite lets Compute adjust the source buffer in place.
func WithOverwrite(b bool) Option { return func(o *Options) { o.Overwrite = b } }

// WithSeed fixes the initial guess; 0 means the default seed.
func WithSeed(seed int64) Option { return func(o *Options) { o.Seed = seed } }

// WithWorkers limits concurrent row updates in the parallel solver.
func WithWorkers(n int) Option { return func(o *Options) { o.Workers = n } }

// WithLogger sets the structured logger.
func WithLogger(l logr.Logger) Option { return func(o *Options) { o.Logger = l } }

// validate rejects values the solvers cannot run with.
func (o *Options) validate() error {
	switch {
	case o.Method != Center && o.Method != Standardize:
		return fmt.Errorf("%w: method %v", ErrBadOption, o.Method)
	case o.Algorithm != Parallel && o.Algorithm != Deflation:
		return fmt.Errorf("%w: algorithm %v", ErrBadOption, o.Algorithm)
	case o.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be > 0, got %d", ErrBadOption, o.Iterations)
	case !(o.Tolerance > 0) || math.IsInf(o.Tolerance, 0):
		return fmt.Errorf("%w: tolerance must be positive and finite, got %g", ErrBadOption, o.Tolerance)
	case o.Contrast == nil:
		return fmt.Errorf("%w: nil contrast function", ErrBadOption)
	case o.Workers <= 0:
		return fmt.Errorf("%w: workers must be > 0, got %d", ErrBadOption, o.Workers)
	}
	if o.Logger.GetSink() == nil {
		o.Logger = logr.Discard()
	}

	return nil
}
