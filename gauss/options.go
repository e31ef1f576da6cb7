// Package gauss: numeric policy configuration.
package gauss

import "math"

// DefaultEpsilon is the relative singularity tolerance applied when Options
// is nil or carries a zero Epsilon. A pivot candidate counts as zero when
// its magnitude is at or below Epsilon × max|a[i][j]| over the working
// matrix; 1e-12 keeps tiny-but-real pivots usable at float64 precision
// while still rejecting numerically dependent rows.
const DefaultEpsilon = 1e-12

// Options configures the solver's numeric policy.
//
// Fields:
//   - Epsilon — relative singularity tolerance. The effective pivot
//     threshold is Epsilon × max|a[i][j]| over the whole matrix, so the
//     policy scales with the data instead of using an unsafe absolute
//     cutoff. Zero selects DefaultEpsilon; NaN, ±Inf and negative values
//     are rejected with ErrBadEpsilon.
//
// Example:
//
//	opts := gauss.DefaultOptions()
//	opts.Epsilon = 1e-9 // stricter: treat near-dependent rows as singular
//	x, err := gauss.Solve(set, &opts)
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the documented default numeric policy.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// resolveEpsilon applies defaults and validates the configured tolerance.
// A nil Options or zero Epsilon selects DefaultEpsilon (zero-value behavior
// mirrors DefaultOptions); anything non-finite or negative is a caller
// error reported as ErrBadEpsilon.
func resolveEpsilon(opts *Options) (float64, error) {
	if opts == nil {
		return DefaultEpsilon, nil
	}
	eps := opts.Epsilon
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return 0, ErrBadEpsilon
	}
	if eps == 0 {
		return DefaultEpsilon, nil
	}

	return eps, nil
}
