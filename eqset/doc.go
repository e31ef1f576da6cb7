// Package eqset assembles a square system of linear equations one row at a
// time and guarantees a well-shaped system before solving is attempted.
//
// The eqset package provides:
//
//   - EquationSet, a fixed-dimension accumulator for N coefficient rows and
//     their right-hand sides, stored row-major in a flat slice for cache
//     friendliness.
//   - Strict ingestion checks: every accepted row has exactly N finite
//     coefficients, and no row can be added once the set is full.
//   - A simple lifecycle: Empty → Filling → Ready. Solving (see the gauss
//     package) is legal only once IsReady reports true; Reset is the only
//     way back to Empty.
//
// All user-triggered failures are reported through package sentinel errors
// and matched with errors.Is; rejected operations leave prior state exactly
// as it was.
//
// See the examples in this package and gauss for usage patterns.
package eqset
