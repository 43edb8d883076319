// Package ica separates linearly mixed signals into statistically
// independent components with the FastICA fixed-point algorithm.
//
// What it does:
//
//	Given observations X (n rows × m variables) assumed to be X = S·A with
//	independent, non-Gaussian sources S, it estimates a demixing matrix D so
//	that X·D recovers the sources up to order, sign and scale.
//
// Pipeline (Compute):
//   - adjust: subtract training column means (Center) and optionally divide
//     by training standard deviations (Standardize);
//   - whiten: ZCA transform from the covariance eigen-decomposition;
//   - solve: fixed-point iteration w ← E[x·g(w·x)] − E[g'(w·x)]·w with either
//     Deflation (one direction at a time, Gram–Schmidt) or Parallel (all
//     directions, symmetric decorrelation via SVD, rows updated concurrently);
//   - assemble: demixing = whitening·Wᵀ, mixing = pinv(demixing), both
//     divided by the sum of their entries; result = adjusted·demixing.
//
// Usage:
//
//	a, err := ica.New(x, ica.WithAlgorithm(ica.Deflation), ica.WithSeed(42))
//	if err != nil { ... }
//	if err := a.Compute(); err != nil { ... }
//	sources, _ := a.Result()
//	fresh, _ := a.Separate(y) // y is adjusted with the statistics of x
//
// Contrast functions: LogCosh (default), Exponential, Kurtosis, or any type
// implementing Contrast.
//
// Non-convergence is not an error: the solvers stop at the iteration cap and
// Report tells which components met the tolerance.
package ica
