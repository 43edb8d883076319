// Package fastica is a batch FastICA toolkit: it separates linearly mixed
// signals into statistically independent components.
//
// What is in the module?
//
//   - ica: the engine. Center or standardize observations, whiten them,
//     run the fixed-point solver (Deflation or Parallel) and assemble the
//     demixing and mixing matrices. Trained models separate new data with
//     the training statistics, and per-component views expose each
//     direction.
//   - matrix: the dense linear-algebra layer under the engine (products,
//     covariance, Jacobi eigen-decomposition, ZCA whitening, SVD and
//     pseudo-inverse).
//   - cmd/fastica: a command-line front end that reads CSV, writes the
//     recovered sources and can draw them as ASCII or PNG plots.
//
// Quick start:
//
//	a, err := ica.New(x, ica.WithSeed(7))
//	if err != nil { ... }
//	if err := a.Compute(); err != nil { ... }
//	sources, _ := a.Result()
//
// Installation:
//
//	go get github.com/katalvlaran/fastica/ica
package fastica
