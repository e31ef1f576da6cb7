// Package eqset provides the EquationSet accumulator for square linear
// systems. EquationSet is a concrete, row-major container storing the
// coefficient matrix in a flat slice for performance and cache friendliness.
package eqset

import (
	"fmt"
	"math"
	"strings"
)

// eqsetErrorf wraps an underlying error with EquationSet method context.
func eqsetErrorf(method string, err error) error {
	return fmt.Errorf("EquationSet.%s: %w", method, err)
}

// EquationSet accumulates exactly dim equations of a square linear system.
// dim is the declared dimension (fixed at construction), rows counts the
// accepted equations, coeff holds dim*dim coefficients in row-major order
// (row order = insertion order) and rhs holds the dim right-hand sides,
// index-aligned with coeff rows.
//
// Lifecycle: Empty → Filling (0 < rows < dim) → Ready (rows == dim).
// AddEquation is legal only before Ready; Reset is the only transition back
// to Empty. An EquationSet is owned exclusively by its creator; it is not
// safe for concurrent mutation, but independent sets may be built and
// solved in parallel with no coordination.
type EquationSet struct {
	dim   int       // declared dimension, never changes
	rows  int       // accepted equations, 0 <= rows <= dim
	coeff []float64 // flat backing storage, length == dim*dim
	rhs   []float64 // right-hand sides, length == dim
}

// New constructs an empty EquationSet for a declared positive dimension.
// Stage 1 (Validate): ensure dimension > 0.
// Stage 2 (Prepare): allocate flat coefficient and rhs storage.
// Stage 3 (Finalize): return new set or ErrInvalidDimension.
// Complexity: O(dim²) time and memory.
func New(dimension int) (*EquationSet, error) {
	// Validate dimension before any allocation
	if dimension < 1 {
		return nil, eqsetErrorf("New", ErrInvalidDimension)
	}

	// Return initialized set in the Empty state
	return &EquationSet{
		dim:   dimension,
		coeff: make([]float64, dimension*dimension),
		rhs:   make([]float64, dimension),
	}, nil
}

// AddEquation accepts one equation: a row of exactly Dimension() finite
// coefficients and one finite right-hand-side scalar.
//
// Implementation:
//   - Stage 1: Reject when the set is already full (ErrSetFull).
//   - Stage 2: Reject a row of the wrong length (ErrDimensionMismatch).
//   - Stage 3: Reject NaN/±Inf anywhere in the input (ErrNaNInf).
//   - Stage 4: Copy the row into the flat storage, record rhs, advance rows.
//
// Every rejected call leaves the set exactly as it was; the supplied slice
// is copied, so the caller may reuse it freely afterwards.
//
// Errors: ErrSetFull, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(dim) time, no allocations.
func (s *EquationSet) AddEquation(coeffs []float64, rhs float64) error {
	// Full sets accept nothing further.
	if s.rows == s.dim {
		return eqsetErrorf("AddEquation", ErrSetFull)
	}
	// Exact row length is mandatory (nil counts as length 0).
	if len(coeffs) != s.dim {
		return eqsetErrorf("AddEquation", ErrDimensionMismatch)
	}
	// Validate finiteness before touching state: no partial row is accepted.
	for _, v := range coeffs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return eqsetErrorf("AddEquation", ErrNaNInf)
		}
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return eqsetErrorf("AddEquation", ErrNaNInf)
	}

	// Commit: copy the row into its flat slot and advance the fill count.
	copy(s.coeff[s.rows*s.dim:(s.rows+1)*s.dim], coeffs)
	s.rhs[s.rows] = rhs
	s.rows++

	return nil
}

// IsReady reports whether the set holds exactly Dimension() equations.
// Pure query, no side effects. Complexity: O(1).
func (s *EquationSet) IsReady() bool {
	return s.rows == s.dim
}

// Dimension returns the declared dimension N, fixed at construction.
// Complexity: O(1).
func (s *EquationSet) Dimension() int {
	return s.dim // return stored dimension
}

// Rows returns the number of equations accepted so far.
// Complexity: O(1).
func (s *EquationSet) Rows() int {
	return s.rows // return current fill count
}

// Snapshot returns deep copies of the coefficient storage (flat, row-major,
// length Dimension()²) and the right-hand-side vector (length Dimension()).
// Mutating the returned slices never affects the set; solvers work on these
// private copies so the original system survives a solve untouched.
// Complexity: O(dim²) time and memory.
func (s *EquationSet) Snapshot() (coeff, rhs []float64) {
	// Allocate fresh slices and copy all elements.
	coeff = make([]float64, len(s.coeff))
	copy(coeff, s.coeff)
	rhs = make([]float64, len(s.rhs))
	copy(rhs, s.rhs)

	return coeff, rhs
}

// Reset discards every accepted equation and returns the set to the Empty
// state. The declared dimension is kept; storage is zeroed so a later
// Snapshot of a partially refilled set never leaks stale rows.
// Complexity: O(dim²).
func (s *EquationSet) Reset() {
	s.rows = 0
	for i := range s.coeff {
		s.coeff[i] = 0
	}
	for i := range s.rhs {
		s.rhs[i] = 0
	}
}

// String implements fmt.Stringer for easy debugging: one accepted equation
// per line, rendered as "[c0, c1, ...] = rhs".
// Complexity: O(rows·dim) for string construction.
func (s *EquationSet) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < s.rows; i++ { // iterate over accepted rows only
		sb.WriteByte('[')
		for j = 0; j < s.dim; j++ {
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%g", s.coeff[i*s.dim+j])
			if j < s.dim-1 {
				sb.WriteString(", ")
			}
		}
		fmt.Fprintf(&sb, "] = %g\n", s.rhs[i])
	}

	return sb.String()
}
