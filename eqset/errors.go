// SPDX-License-Identifier: MIT
// Package eqset: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the eqset
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error
// conditions.

package eqset

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "eqset: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimension is returned by New when the requested dimension is
	// not a positive integer. No partial set is created.
	ErrInvalidDimension = errors.New("eqset: dimension must be > 0")

	// ErrDimensionMismatch indicates that a supplied row's coefficient count
	// does not equal the declared dimension. The set is left unchanged.
	ErrDimensionMismatch = errors.New("eqset: dimension mismatch")

	// ErrSetFull indicates that an equation was added after the set already
	// reached its declared dimension. The set is left unchanged.
	ErrSetFull = errors.New("eqset: equation set is full")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (AddEquation ingestion).
	ErrNaNInf = errors.New("eqset: NaN or Inf encountered")
)
