// SPDX-License-Identifier: MIT
// Package gauss: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the gauss
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package gauss

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "gauss: ..." for consistency and to allow
// easy grepping across logs. ErrDependent and ErrInconsistent deliberately
// wrap ErrSingular: errors.Is(err, ErrSingular) holds for every singularity
// classification, so callers that only care about "no unique solution" need
// a single check.

var (
	// ErrNilSystem indicates that a nil *eqset.EquationSet was passed in.
	ErrNilSystem = errors.New("gauss: nil equation set")

	// ErrNotReady indicates that solving was attempted before the set
	// accumulated its full dimension of equations. No computation is
	// performed.
	ErrNotReady = errors.New("gauss: equation set is not fully assembled")

	// ErrBadEpsilon indicates a non-finite or negative Options.Epsilon.
	ErrBadEpsilon = errors.New("gauss: epsilon must be finite and non-negative")

	// ErrDimensionMismatch indicates that a supplied vector's length does
	// not match the system dimension (Residual).
	ErrDimensionMismatch = errors.New("gauss: dimension mismatch")

	// ErrSingular is returned when no pivot above the relative tolerance
	// exists in some column during elimination: the system has no unique
	// solution. Retrying with the same input reproduces the same result.
	ErrSingular = errors.New("gauss: singular system")

	// ErrDependent classifies a singular system whose degenerate rows have
	// negligible right-hand sides: the equations are linearly dependent and
	// infinitely many solutions exist. Wraps ErrSingular.
	ErrDependent = fmt.Errorf("%w: dependent equations", ErrSingular)

	// ErrInconsistent classifies a singular system with a degenerate row
	// whose right-hand side is not negligible: the equations contradict each
	// other and no solution exists. Wraps ErrSingular.
	ErrInconsistent = fmt.Errorf("%w: inconsistent equations", ErrSingular)
)
