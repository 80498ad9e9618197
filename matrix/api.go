// SPDX-License-Identifier: MIT
// Package matrix — public constructors.
//
// Purpose:
//   - Provide thin, well-documented entry points that build frozen
//     matrices in one call. Each constructor validates eagerly, writes
//     every cell through the canonical set, and returns an immutable
//     result. For incremental construction use NewBuilder (builder.go).
//
// Determinism & Policy:
//   - Flat values and generators are consumed in row-major order, cell
//     (r, c) at linear index r*cols+c.
//   - A value numerically equal to the default (0 here) is simply never
//     stored; constructors cannot violate the canonicalization invariant.

package matrix

import "github.com/cockroachdb/apd/v3"

// Zeros returns an empty rows×cols Sparse: default 0, no stored cells.
// Every cell reads as 0 and FilledCount is 0.
// Errors: ErrInvalidDimensions. Complexity: O(1).
func Zeros(rows, cols int) (*Sparse, error) {
	b, err := NewBuilder(rows, cols)
	if err != nil {
		return nil, err
	}

	return b.release(), nil
}

// SparseOf builds a frozen Sparse from exactly rows*cols flat values in
// row-major order. Values equal to the default 0 are elided, so a mostly
// zero input compresses on construction.
// Errors: ErrInvalidDimensions, ErrValueCount, ErrNilValue (checked
// before any cell is written). Complexity: O(rows*cols).
func SparseOf(rows, cols int, values ...*apd.Decimal) (*Sparse, error) {
	b, err := NewBuilder(rows, cols)
	if err != nil {
		return nil, err
	}
	// Eager validation: length and nils first, zero side effects on failure.
	if len(values) != rows*cols {
		return nil, validatorErrorf("SparseOf", ErrValueCount)
	}
	for _, v := range values {
		if err = CheckValue(v); err != nil {
			return nil, err
		}
	}

	// Row-major write through the canonical set (index i is already linear).
	for i, v := range values {
		b.setIndex(i, v)
	}

	return b.release(), nil
}

// SparseFromFunc builds a frozen Sparse by invoking fn once per cell in
// row-major order — all rows*cols cells, even though the result may still
// compress well; this path costs O(rows*cols), not O(filled).
// A nil result from fn is rejected with ErrNilValue.
// Errors: ErrInvalidDimensions, ErrNilValue. Complexity: O(rows*cols).
func SparseFromFunc(rows, cols int, fn func(row, col int) *apd.Decimal) (*Sparse, error) {
	b, err := NewBuilder(rows, cols)
	if err != nil {
		return nil, err
	}

	// Fixed row→col order; the generator sees every cell exactly once.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := fn(r, c)
			if err = CheckValue(v); err != nil {
				return nil, err
			}
			b.setIndex(linearIndex(r, cols, c), v)
		}
	}

	return b.release(), nil
}

// DenseOf builds a frozen Dense from exactly rows*cols flat values in
// row-major order.
// Errors: ErrInvalidDimensions, ErrValueCount, ErrNilValue (checked
// before any cell is written). Complexity: O(rows*cols).
func DenseOf(rows, cols int, values ...*apd.Decimal) (*Dense, error) {
	if err := CheckRows(rows); err != nil {
		return nil, err
	}
	if err := CheckCols(cols); err != nil {
		return nil, err
	}
	if len(values) != rows*cols {
		return nil, validatorErrorf("DenseOf", ErrValueCount)
	}
	for _, v := range values {
		if err := CheckValue(v); err != nil {
			return nil, err
		}
	}

	out := newDense(rows, cols)
	for i, v := range values {
		out.set(i, v)
	}

	return out, nil
}

// DenseFromFunc builds a frozen Dense by invoking fn once per cell in
// row-major order. A nil result from fn is rejected with ErrNilValue.
// Errors: ErrInvalidDimensions, ErrNilValue. Complexity: O(rows*cols).
func DenseFromFunc(rows, cols int, fn func(row, col int) *apd.Decimal) (*Dense, error) {
	if err := CheckRows(rows); err != nil {
		return nil, err
	}
	if err := CheckCols(cols); err != nil {
		return nil, err
	}

	out := newDense(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v := fn(r, c)
			if err := CheckValue(v); err != nil {
				return nil, err
			}
			out.set(linearIndex(r, cols, c), v)
		}
	}

	return out, nil
}
