package gauss

import "github.com/katalvlaran/linsolve/eqset"

// Residual computes r = A·x − b for a Ready EquationSet and a candidate
// solution x, one flat row-major dot-product per row.
//
// Contract: set Ready; len(x) == set.Dimension().
// Determinism: fixed i→j loop order.
// Complexity: Time O(n²), Space O(n) for r.
//
// Errors:
//   - ErrNilSystem, ErrNotReady (input set).
//   - ErrDimensionMismatch (wrong x length).
//
// AI-Hints:
//   - max|r[i]| is the cheap post-solve sanity check: for a well-conditioned
//     system and x from Solve it sits near machine epsilon times the data
//     scale.
func Residual(set *eqset.EquationSet, x []float64) ([]float64, error) {
	a, b, n, err := snapshot(set)
	if err != nil {
		return nil, gaussErrorf(opResidual, err)
	}
	if len(x) != n {
		return nil, gaussErrorf(opResidual, ErrDimensionMismatch)
	}

	r := make([]float64, n)
	var (
		i, j, base int
		acc        float64
	)
	for i = 0; i < n; i++ {
		acc = ZeroSum
		base = i * n
		for j = 0; j < n; j++ {
			acc += a[base+j] * x[j]
		}
		r[i] = acc - b[i]
	}

	return r, nil
}
