package gauss_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/linsolve/eqset"
	"github.com/katalvlaran/linsolve/gauss"
)

// propTol is looser than the unit-test tolerance: randomized systems are
// merely diagonally dominant, not perfectly conditioned.
const propTol = 1e-8

// randomSystem derives a dim×dim diagonally dominant system from a seed.
// Diagonal dominance (|a[i][i]| > Σ|a[i][j]|) guarantees non-singularity,
// so every generated system has a unique solution.
func randomSystem(seed int64, dim int) (rows [][]float64, rhs []float64) {
	rng := rand.New(rand.NewSource(seed))
	rows = make([][]float64, dim)
	rhs = make([]float64, dim)
	for i := 0; i < dim; i++ {
		row := make([]float64, dim)
		sum := 0.0
		for j := 0; j < dim; j++ {
			if j == i {
				continue
			}
			row[j] = rng.Float64()*2 - 1 // off-diagonal in [-1, 1)
			sum += math.Abs(row[j])
		}
		row[i] = sum + 1 // strictly dominant diagonal
		if rng.Intn(2) == 1 {
			row[i] = -row[i] // dominance is about magnitude, not sign
		}
		rows[i] = row
		rhs[i] = rng.Float64()*20 - 10
	}

	return rows, rhs
}

// fillSet builds a ready EquationSet from rows/rhs, failing the property on
// any rejected row.
func fillSet(rows [][]float64, rhs []float64) (*eqset.EquationSet, bool) {
	set, err := eqset.New(len(rows))
	if err != nil {
		return nil, false
	}
	for i, row := range rows {
		if err = set.AddEquation(row, rhs[i]); err != nil {
			return nil, false
		}
	}

	return set, true
}

// TestSolve_Properties exercises the solver on randomized diagonally
// dominant systems: the solution must satisfy every equation within
// tolerance, and the insertion order of equations must not matter.
func TestSolve_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("residual of Solve(A,b) is ~0 for every row", prop.ForAll(
		func(seed int64, dim int) bool {
			rows, rhs := randomSystem(seed, dim)
			set, ok := fillSet(rows, rhs)
			if !ok {
				return false
			}
			x, err := gauss.Solve(set, nil)
			if err != nil {
				return false // diagonally dominant systems never go singular
			}
			r, err := gauss.Residual(set, x)
			if err != nil {
				return false
			}
			for _, ri := range r {
				if math.Abs(ri) > propTol {
					return false
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(1, 8),
	))

	properties.Property("permuting equation insertion order preserves the solution", prop.ForAll(
		func(seed int64, dim int) bool {
			rows, rhs := randomSystem(seed, dim)
			set, ok := fillSet(rows, rhs)
			if !ok {
				return false
			}
			base, err := gauss.Solve(set, nil)
			if err != nil {
				return false
			}

			// Shuffle the equations (content untouched) and solve again.
			perm := rand.New(rand.NewSource(seed + 1)).Perm(dim)
			permRows := make([][]float64, dim)
			permRHS := make([]float64, dim)
			for i, p := range perm {
				permRows[i] = rows[p]
				permRHS[i] = rhs[p]
			}
			permSet, ok := fillSet(permRows, permRHS)
			if !ok {
				return false
			}
			x, err := gauss.Solve(permSet, nil)
			if err != nil {
				return false
			}
			for i := range base {
				if math.Abs(base[i]-x[i]) > propTol {
					return false
				}
			}

			return true
		},
		gen.Int64(),
		gen.IntRange(2, 8),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
