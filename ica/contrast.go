package ica

import (
	"fmt"
	"math"
	"strings"
)

// Contrast is the nonlinearity of the fixed-point update.
//
// Evaluate writes g(u[i]) into g[i] and g'(u[i]) into dg[i]. All three slices
// have the same length. Implementations must be stateless so that concurrent
// calls on disjoint buffers are safe.
type Contrast interface {
	Evaluate(u, g, dg []float64)
}

// LogCosh is the log-cosh contrast: g(u) = tanh(αu), g'(u) = α(1 - tanh²(αu)).
// A general purpose choice; Alpha is usually in [1, 2].
type LogCosh struct {
	Alpha float64
}

// Evaluate implements Contrast.
func (c LogCosh) Evaluate(u, g, dg []float64) {
	var t float64
	for i, x := range u {
		t = math.Tanh(c.Alpha * x)
		g[i] = t
		dg[i] = c.Alpha * (1 - t*t)
	}
}

// Exponential is the Gaussian contrast: g(u) = u·exp(-αu²/2),
// g'(u) = (1 - αu²)·exp(-αu²/2). Robust when sources are highly super-Gaussian.
type Exponential struct {
	Alpha float64
}

// Evaluate implements Contrast.
func (c Exponential) Evaluate(u, g, dg []float64) {
	var sq, e float64
	for i, x := range u {
		sq = x * x
		e = math.Exp(-c.Alpha * sq / 2)
		g[i] = x * e
		dg[i] = (1 - c.Alpha*sq) * e
	}
}

// Kurtosis is the cubic contrast: g(u) = u³, g'(u) = 3u².
type Kurtosis struct{}

// Evaluate implements Contrast.
func (Kurtosis) Evaluate(u, g, dg []float64) {
	var sq float64
	for i, x := range u {
		sq = x * x
		g[i] = sq * x
		dg[i] = 3 * sq
	}
}

// ContrastByName returns the contrast registered under name
// ("logcosh", "exp", "kurtosis"). alpha is ignored by Kurtosis and
// defaults to 1 when zero.
func ContrastByName(name string, alpha float64) (Contrast, error) {
	if alpha == 0 {
		alpha = 1
	}
	if !(alpha > 0) || math.IsInf(alpha, 0) {
		return nil, fmt.Errorf("%w: contrast alpha must be positive, got %g", ErrBadOption, alpha)
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "logcosh", "tanh":
		return LogCosh{Alpha: alpha}, nil
	case "exp", "exponential", "gauss":
		return Exponential{Alpha: alpha}, nil
	case "kurtosis", "cube":
		return Kurtosis{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown contrast %q", ErrBadOption, name)
	}
}
