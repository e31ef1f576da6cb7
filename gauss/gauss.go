// SPDX-License-Identifier: MIT
// Package gauss: Gaussian elimination kernels.
//
// Purpose:
//   - Declare the canonical solve-family entry points (Solve, Triangularize,
//     Determinant) and the shared elimination/substitution kernels.
//   - Keep numeric policy (tolerance resolution) and error wrapping uniform.
//
// Notes:
//   - All entry points work on eqset.Snapshot copies; inputs are never
//     mutated and no state survives a call.
//   - Kernels return plain sentinels; facades wrap via gaussErrorf.

package gauss

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linsolve/eqset"
)

// ZeroSum is the initial accumulator value for substitution loops.
const ZeroSum = 0.0

// NormZero is the additive identity for magnitude scans.
const NormZero = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSolve         = "Solve"
	opTriangularize = "Triangularize"
	opDeterminant   = "Determinant"
	opResidual      = "Residual"
)

// gaussErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is/As keep matching the underlying sentinel. Call only
// with err != nil.
func gaussErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// snapshot validates the input set and extracts private working copies.
// Returns the flat row-major coefficient copy, the rhs copy and the
// dimension, or ErrNilSystem / ErrNotReady as plain sentinels.
// Complexity: O(n²) time and memory for the copies.
func snapshot(set *eqset.EquationSet) (a, b []float64, n int, err error) {
	if set == nil {
		return nil, nil, 0, ErrNilSystem
	}
	if !set.IsReady() {
		return nil, nil, 0, ErrNotReady
	}
	a, b = set.Snapshot()

	return a, b, set.Dimension(), nil
}

// Solve computes the unique solution vector x of a Ready EquationSet such
// that A·x = b, or determines definitively that no unique solution exists.
//
// Implementation:
//   - Stage 1: Resolve numeric policy; snapshot the set into private copies.
//   - Stage 2: Forward elimination with partial pivoting (forwardEliminate):
//     per column, swap the largest-magnitude remaining entry into pivot
//     position, then zero the column below it.
//   - Stage 3: Back-substitution (backSubstitute) from the last row upward.
//
// Behavior highlights:
//   - The EquationSet is never mutated; each call is independent and may
//     run concurrently with solves on distinct sets.
//   - Pivoting swaps equations, never unknowns, so x[i] corresponds to the
//     i-th unknown in original insertion order with no re-mapping.
//
// Inputs:
//   - set  : Ready *eqset.EquationSet (n equations of n coefficients).
//   - opts : numeric policy; nil selects DefaultOptions.
//
// Returns:
//   - []float64: solution vector of length set.Dimension().
//
// Errors:
//   - ErrNilSystem, ErrNotReady, ErrBadEpsilon.
//   - ErrSingular (as ErrDependent or ErrInconsistent) when no pivot above
//     the relative tolerance exists in some column.
//
// Determinism:
//   - Fixed column order and deterministic pivot choice (first maximal
//     row wins ties) produce identical results for identical inputs.
//
// Complexity:
//   - Time O(n³), Space O(n²) for the working copy.
//
// AI-Hints:
//   - Verify solutions cheaply with Residual(set, x) instead of re-solving.
//   - Relax or tighten Options.Epsilon rather than pre-scaling the matrix;
//     the threshold already scales with max|a[i][j]|.
func Solve(set *eqset.EquationSet, opts *Options) ([]float64, error) {
	// Resolve numeric policy first: a bad epsilon fails before any work.
	eps, err := resolveEpsilon(opts)
	if err != nil {
		return nil, gaussErrorf(opSolve, err)
	}
	// Extract private working copies (validates nil/readiness).
	a, b, n, err := snapshot(set)
	if err != nil {
		return nil, gaussErrorf(opSolve, err)
	}

	// Forward elimination with partial pivoting.
	if _, err = forwardEliminate(a, b, n, eps); err != nil {
		return nil, gaussErrorf(opSolve, err)
	}

	// Back-substitution on the now upper-triangular system.
	return backSubstitute(a, b, n), nil
}

// Triangularize runs forward elimination with partial pivoting and returns
// the resulting row-echelon system: the upper-triangular coefficient matrix
// (flat, row-major, length n²) and the correspondingly transformed
// right-hand-side vector (length n). The input set is not mutated.
//
// Errors: ErrNilSystem, ErrNotReady, ErrBadEpsilon, ErrSingular
// (ErrDependent / ErrInconsistent).
// Complexity: Time O(n³), Space O(n²).
func Triangularize(set *eqset.EquationSet, opts *Options) ([]float64, []float64, error) {
	eps, err := resolveEpsilon(opts)
	if err != nil {
		return nil, nil, gaussErrorf(opTriangularize, err)
	}
	a, b, n, err := snapshot(set)
	if err != nil {
		return nil, nil, gaussErrorf(opTriangularize, err)
	}
	if _, err = forwardEliminate(a, b, n, eps); err != nil {
		return nil, nil, gaussErrorf(opTriangularize, err)
	}

	return a, b, nil
}

// Determinant computes det(A) of a Ready EquationSet from the same
// elimination: the product of the pivots, negated once per row swap. A
// system classified singular under the configured tolerance reports a
// determinant of exactly 0 with no error.
//
// Errors: ErrNilSystem, ErrNotReady, ErrBadEpsilon.
// Complexity: Time O(n³), Space O(n²).
func Determinant(set *eqset.EquationSet, opts *Options) (float64, error) {
	eps, err := resolveEpsilon(opts)
	if err != nil {
		return 0, gaussErrorf(opDeterminant, err)
	}
	a, b, n, err := snapshot(set)
	if err != nil {
		return 0, gaussErrorf(opDeterminant, err)
	}

	swaps, err := forwardEliminate(a, b, n, eps)
	if err != nil {
		// No usable pivot means a numerically zero determinant.
		if errors.Is(err, ErrSingular) {
			return 0, nil
		}

		return 0, gaussErrorf(opDeterminant, err)
	}

	// det = (-1)^swaps × Π pivots, fixed left-to-right order.
	det := 1.0
	for k := 0; k < n; k++ {
		det *= a[k*n+k]
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det, nil
}

// forwardEliminate reduces the flat row-major system (a, b) of dimension n
// to upper-triangular form in place, using partial pivoting. Returns the
// number of row swaps performed (for determinant sign recovery).
//
// Implementation:
//   - Stage 1: Compute the pivot threshold tol = eps × max|a[i][j]| over
//     the whole matrix (relative tolerance; an all-zero matrix is
//     classified immediately).
//   - Stage 2: For each column k: scan rows k..n-1 for the largest
//     absolute entry in column k; below tol → classifySingular. Swap the
//     winning row into position k (both a and b), then subtract
//     f = a[r][k]/a[k][k] times the pivot row from every row r below.
//
// Determinism: fixed k order, first maximal pivot wins ties, fixed r→c
// elimination order.
// Complexity: Time O(n³), Space O(1) beyond the caller's buffers.
func forwardEliminate(a, b []float64, n int, eps float64) (swaps int, err error) {
	// Relative tolerance: scale with the largest magnitude in the matrix.
	scale := NormZero
	for i := 0; i < n*n; i++ {
		if v := math.Abs(a[i]); v > scale {
			scale = v
		}
	}
	if scale == NormZero {
		// Zero matrix: every column fails immediately.
		return 0, classifySingular(a, b, n, 0, 0)
	}
	tol := eps * scale

	var (
		k, r, c     int     // column / row / cell iterators
		p           int     // current best pivot row
		best, cand  float64 // pivot magnitudes
		f           float64 // elimination factor
		pivotOffset int     // flat base offset of the pivot row
		rowOffset   int     // flat base offset of the row being reduced
	)
	for k = 0; k < n; k++ {
		// Partial pivoting: pick the largest |a[r][k]| among rows k..n-1.
		p = k
		best = math.Abs(a[k*n+k])
		for r = k + 1; r < n; r++ {
			cand = math.Abs(a[r*n+k])
			if cand > best {
				p, best = r, cand
			}
		}
		if best <= tol {
			return swaps, classifySingular(a, b, n, k, tol)
		}
		// Swap the winning equation into pivot position. Swapping rows
		// preserves equation identity, never unknown identity.
		if p != k {
			pivotOffset, rowOffset = k*n, p*n
			for c = 0; c < n; c++ {
				a[pivotOffset+c], a[rowOffset+c] = a[rowOffset+c], a[pivotOffset+c]
			}
			b[k], b[p] = b[p], b[k]
			swaps++
		}
		// Eliminate column k from every row below the pivot.
		pivotOffset = k * n
		for r = k + 1; r < n; r++ {
			rowOffset = r * n
			f = a[rowOffset+k] / a[pivotOffset+k]
			if f == 0 {
				continue // row already has a zero in this column
			}
			a[rowOffset+k] = 0 // exact zero, not a rounded difference
			for c = k + 1; c < n; c++ {
				a[rowOffset+c] -= f * a[pivotOffset+c]
			}
			b[r] -= f * b[k]
		}
	}

	return swaps, nil
}

// backSubstitute solves the upper-triangular system (a, b) bottom-up:
// x[i] = (b[i] − Σ_{j>i} a[i][j]·x[j]) / a[i][i]. Diagonal entries are
// above tolerance by the time this runs (forwardEliminate guarantees it).
// Determinism: fixed i↓, j↑ order. Complexity: Time O(n²), Space O(n).
func backSubstitute(a, b []float64, n int) []float64 {
	x := make([]float64, n)
	var (
		i, j int
		sum  float64
		base int // flat base offset of row i
	)
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for j = i + 1; j < n; j++ {
			sum += a[base+j] * x[j]
		}
		x[i] = (b[i] - sum) / a[base+i]
	}

	return x
}

// classifySingular inspects the degenerate remainder of a failed
// elimination (no pivot above tol in column k) and picks the sentinel:
// a row whose remaining coefficients are all within tolerance but whose
// right-hand side is not has no solution at all (ErrInconsistent);
// otherwise the equations are dependent and solutions are infinite
// (ErrDependent). Both wrap ErrSingular.
// Complexity: O((n−k)²).
func classifySingular(a, b []float64, n, k int, tol float64) error {
	var r, c int
	var degenerate bool
	for r = k; r < n; r++ {
		degenerate = true
		for c = k; c < n; c++ {
			if math.Abs(a[r*n+c]) > tol {
				degenerate = false
				break
			}
		}
		if degenerate && math.Abs(b[r]) > tol {
			return ErrInconsistent
		}
	}

	return ErrDependent
}
