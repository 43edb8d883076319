// Package matrix is the dense linear-algebra layer under the ICA engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors and
//     raw row views for hot loops.
//   - Products (Mul, MulTransB, MatVec), Transpose, Scale and Sum.
//   - Column statistics (ColumnStats, CenterColumns, Covariance).
//   - A Jacobi eigen-solver for symmetric matrices and the ZCA whitening
//     transform built on it (Whiten).
//   - Thin SVD and the Moore–Penrose pseudo-inverse, backed by gonum.
//   - Seeded uniform random matrices (Random).
//
// Every kernel validates its operands and reports failures through the
// sentinel errors in errors.go, wrapped with the failing operation's name.
// Loop orders are fixed, so identical inputs give bit-identical outputs.
package matrix
