// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation should panic on user-triggered error
// conditions. Panics are reserved for programmer errors in private helpers.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> dimensions -> row index -> column index -> shape mismatch
// -> value policy -> builder state.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRowOutOfRange indicates a row index outside [0, Rows).
	// Public indexers (At/Set) MUST return this, not panic.
	ErrRowOutOfRange = errors.New("matrix: row index out of range")

	// ErrColumnOutOfRange indicates a column index outside [0, Cols).
	ErrColumnOutOfRange = errors.New("matrix: column index out of range")

	// ErrIndexOutOfRange indicates a linear cell index outside [0, Size).
	ErrIndexOutOfRange = errors.New("matrix: linear index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands
	// of a binary elementwise operation.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilValue indicates a nil decimal where a value is required.
	// The scalar domain is finite decimals; nil is never a value.
	ErrNilValue = errors.New("matrix: nil decimal value")

	// ErrValueCount indicates a flat-value constructor received a value
	// slice whose length differs from rows*cols.
	ErrValueCount = errors.New("matrix: wrong number of values")

	// ErrBuilderReleased indicates a Builder was used after Build consumed
	// it. A released builder owns no matrix and accepts no mutation.
	ErrBuilderReleased = errors.New("matrix: builder already released")
)
