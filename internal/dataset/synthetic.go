package dataset

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/fastica/matrix"
)

// Waveform names a synthetic source signal.
type Waveform string

const (
	Sine     Waveform = "sine"
	Square   Waveform = "square"
	Sawtooth Waveform = "sawtooth"
	Laplace  Waveform = "laplace"
)

// Waveforms lists the supported source signals in demo order.
var Waveforms = []Waveform{Sine, Square, Sawtooth, Laplace}

// Mixture is a synthetic ICA problem: Observed = Sources · Mixingᵀ.
type Mixture struct {
	Sources  *matrix.Dense // n×k
	Mixing   *matrix.Dense // m×k
	Observed *matrix.Dense // n×m
}

// Synthetic builds n samples of the given waveforms over t ∈ [0, 8) and mixes
// them with a random m×k matrix (entries in [0.5, 1.5)). seed 0 selects seed 1.
func Synthetic(n, m int, waves []Waveform, seed int64) (*Mixture, error) {
	k := len(waves)
	if n < 2 || k == 0 || m < k {
		return nil, fmt.Errorf("dataset: need n >= 2, at least one waveform and m >= k (n=%d m=%d k=%d)", n, m, k)
	}
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))

	sources, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, err
	}
	var ts float64
	for i := 0; i < n; i++ {
		ts = 8 * float64(i) / float64(n)
		row := sources.RawRow(i)
		for j, w := range waves {
			v, err := sample(w, ts, rng)
			if err != nil {
				return nil, err
			}
			row[j] = v
		}
	}

	mixing, err := matrix.Random(m, k, rng)
	if err != nil {
		return nil, err
	}
	if err = mixing.Apply(func(_, _ int, v float64) float64 { return v + 0.5 }); err != nil {
		return nil, err
	}
	observed, err := matrix.MulTransB(sources, mixing)
	if err != nil {
		return nil, err
	}

	return &Mixture{Sources: sources, Mixing: mixing, Observed: observed}, nil
}

func sample(w Waveform, t float64, rng *rand.Rand) (float64, error) {
	switch w {
	case Sine:
		return math.Sin(2 * t), nil
	case Square:
		return math.Copysign(1, math.Sin(3*t)), nil
	case Sawtooth:
		return 2*(1.5*t-math.Floor(1.5*t)) - 1, nil
	case Laplace:
		return rng.ExpFloat64() * math.Copysign(1, rng.Float64()-0.5), nil
	default:
		return 0, fmt.Errorf("dataset: unknown waveform %q", w)
	}
}

// ParseWaveforms maps names to waveforms, rejecting unknown ones.
func ParseWaveforms(names []string) ([]Waveform, error) {
	out := make([]Waveform, len(names))
	for i, n := range names {
		w := Waveform(n)
		if _, err := sample(w, 0, rand.New(rand.NewSource(1))); err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}
