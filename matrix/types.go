// SPDX-License-Identifier: MIT

// Package matrix: the public read surface shared by all matrix forms.
// This file intentionally contains ONLY the Matrix interface and the
// linear-index helpers. Errors live in errors.go, validators in
// validators.go, concrete forms in sparse.go / dense.go.
package matrix

import "github.com/cockroachdb/apd/v3"

// Matrix is the read-only surface shared by the Sparse and Dense forms.
// Implementations are frozen: no method observable here mutates state,
// so any number of goroutines may read one Matrix concurrently.
//
// Returned decimals are defensive copies; callers may mutate them freely
// without affecting the matrix.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int

	// Cols returns the number of columns. Complexity: O(1).
	Cols() int

	// Size returns Rows()*Cols(), the total cell count. Complexity: O(1).
	Size() int

	// At returns the value of cell (row, col).
	// Returns ErrRowOutOfRange or ErrColumnOutOfRange for invalid
	// coordinates; the row index is validated first.
	// Complexity: O(1) for both forms.
	At(row, col int) (*apd.Decimal, error)
}

// linearIndex maps (row, col) to the row-major linear index row*cols+col.
// The bijection onto [0, rows*cols) is the storage key for every sparse
// entry and the traversal order for every deterministic reduction.
func linearIndex(row, cols, col int) int {
	return row*cols + col
}

// copyDec returns a fresh decimal with v's numeric value.
// Storage never aliases caller memory and At never leaks storage memory.
func copyDec(v *apd.Decimal) *apd.Decimal {
	return new(apd.Decimal).Set(v)
}
