// SPDX-License-Identifier: MIT
// Package: matrix
//
// Random matrices for iterative solvers that need a reproducible starting point.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; callers own the stream they pass in.

package matrix

import "math/rand"

// defaultRandomSeed seeds the stream used when Random is handed a nil source.
const defaultRandomSeed int64 = 1

// Random returns a rows×cols matrix with entries drawn uniformly from [0,1),
// filled in row-major order from rng. A nil rng falls back to a fixed seed.
//
// Errors:
//   - ErrInvalidDimensions.
func Random(rows, cols int, rng *rand.Rand) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf("Random", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultRandomSeed))
	}
	for idx := range m.data {
		m.data[idx] = rng.Float64()
	}

	return m, nil
}
