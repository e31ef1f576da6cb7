// Package linsolve is a small toolkit for building and solving square
// systems of linear equations — assembled incrementally, one equation at a
// time, and solved with numerically stable Gaussian elimination.
//
// 🚀 What is linsolve?
//
//	A focused, pure-Go numeric library that brings together:
//		• eqset — a fixed-dimension equation accumulator with strict shape
//		  and finiteness checks and a simple Empty → Filling → Ready lifecycle
//		• gauss — Gaussian elimination with partial pivoting, back-substitution,
//		  relative-tolerance singularity detection, plus Triangularize,
//		  Determinant and Residual helpers
//
// ✨ Why choose linsolve?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics, inputs never mutated
//   - Pure Go – no cgo, no hidden deps
//   - Concurrency-safe by construction – solvers hold no state; independent
//     systems build and solve in parallel with no locks
//
// Everything is organized under two subpackages:
//
//	eqset/ — EquationSet accumulator: New, AddEquation, IsReady, Snapshot, Reset
//	gauss/ — Solve, Triangularize, Determinant, Residual + numeric policy (Options)
//
// Quick example:
//
//	set, _ := eqset.New(2)
//	_ = set.AddEquation([]float64{8, -6}, 2) // 8x − 6y = 2
//	_ = set.AddEquation([]float64{2, 3}, 2)  // 2x + 3y = 2
//	x, err := gauss.Solve(set, nil)          // → [0.5, 0.333...]
//
// Dive into the package examples for tolerance policy, singularity
// classification (dependent vs inconsistent) and residual checking.
//
//	go get github.com/katalvlaran/linsolve
package linsolve
