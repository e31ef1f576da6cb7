// Package gauss solves square linear systems assembled with eqset, using
// Gaussian elimination with partial pivoting followed by back-substitution.
//
// The gauss package provides:
//
//   - Solve: the unique solution vector of a Ready EquationSet, or a
//     definite failure classification (ErrNotReady, ErrSingular).
//   - Triangularize: the row-echelon form after forward elimination, for
//     callers that want the intermediate upper-triangular system.
//   - Determinant and Residual: cheap by-products of the same kernels.
//
// Numerical policy: all arithmetic is float64, and singularity detection
// uses a relative tolerance — a pivot counts as zero when its magnitude is
// at or below Epsilon × max|a[i][j]| over the whole matrix, so ill-scaled
// systems do not spuriously pass or fail. The default Epsilon is
// DefaultEpsilon; see Options.
//
// Every entry point works on a private Snapshot copy of the input set and
// holds no state across calls, so independent solves may run concurrently
// on distinct EquationSets without coordination.
//
// Pivoting swaps rows (equations), never columns (unknowns): the i-th
// component of the returned vector always corresponds to the i-th unknown
// in the order declared at construction.
package gauss
