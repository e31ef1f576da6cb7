package gauss_test

import (
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/gauss"
)

// TestSolve_ConcurrentIndependentSets verifies the no-shared-state
// contract: many goroutines building and solving distinct EquationSets in
// parallel need no coordination and all observe correct results.
func TestSolve_ConcurrentIndependentSets(t *testing.T) {
	const workers = 16
	const iterations = 50

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for it := 0; it < iterations; it++ {
				rows, rhs := randomSystem(int64(w*iterations+it), 4)
				set, ok := fillSet(rows, rhs)
				if !ok {
					errs[w] = fmt.Errorf("worker %d: fixture %d rejected", w, it)
					return
				}
				x, err := gauss.Solve(set, nil)
				if err != nil {
					errs[w] = fmt.Errorf("worker %d: solve %d: %w", w, it, err)
					return
				}
				r, err := gauss.Residual(set, x)
				if err != nil {
					errs[w] = fmt.Errorf("worker %d: residual %d: %w", w, it, err)
					return
				}
				for i, ri := range r {
					if math.Abs(ri) > propTol {
						errs[w] = fmt.Errorf("worker %d: system %d row %d residual %g", w, it, i, ri)
						return
					}
				}
			}
		}(w)
	}
	wg.Wait()

	for w, err := range errs {
		require.NoError(t, err, "worker %d must solve its private systems cleanly", w)
	}
}
