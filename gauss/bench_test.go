package gauss_test

import (
	"testing"

	"github.com/katalvlaran/linsolve/eqset"
	"github.com/katalvlaran/linsolve/gauss"
)

// benchmarkSolve assembles one diagonally dominant dim×dim system outside
// the timer, then measures repeated Solve calls on it.
func benchmarkSolve(b *testing.B, dim int) {
	rows, rhs := randomSystem(42, dim)
	set, err := eqset.New(dim)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	for i, row := range rows {
		if err = set.AddEquation(row, rhs[i]); err != nil {
			b.Fatalf("AddEquation(%d) failed: %v", i, err)
		}
	}

	b.ResetTimer() // ignore assembly time
	for i := 0; i < b.N; i++ {
		if _, err = gauss.Solve(set, nil); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks an 8×8 system.
func BenchmarkSolve_Small(b *testing.B) {
	benchmarkSolve(b, 8)
}

// BenchmarkSolve_Medium benchmarks a 32×32 system.
func BenchmarkSolve_Medium(b *testing.B) {
	benchmarkSolve(b, 32)
}

// BenchmarkSolve_Large benchmarks a 128×128 system.
func BenchmarkSolve_Large(b *testing.B) {
	benchmarkSolve(b, 128)
}

// BenchmarkAddEquation measures the per-row assembly cost at dim 128.
func BenchmarkAddEquation(b *testing.B) {
	const dim = 128
	rows, rhs := randomSystem(42, dim)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set, err := eqset.New(dim)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for j, row := range rows {
			if err = set.AddEquation(row, rhs[j]); err != nil {
				b.Fatalf("AddEquation(%d) failed: %v", j, err)
			}
		}
	}
}
