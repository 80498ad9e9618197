// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/constructors minimal by delegating shape/bounds/nil checks here.
//  - Return plain sentinel errors (tag-wrapped) so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//  - Every check is O(1).
//
// Note:
//  - Composite callers follow a fixed sequence (NotNil → Shape → Index) so
//    the reported sentinel is deterministic when several conditions hold.

package matrix

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// CheckRows ensures a requested row count is strictly positive.
// Returns wrapped ErrInvalidDimensions otherwise.
func CheckRows(rows int) error {
	if rows <= 0 {
		return validatorErrorf("CheckRows", ErrInvalidDimensions)
	}

	return nil
}

// CheckCols ensures a requested column count is strictly positive.
// Returns wrapped ErrInvalidDimensions otherwise.
func CheckCols(cols int) error {
	if cols <= 0 {
		return validatorErrorf("CheckCols", ErrInvalidDimensions)
	}

	return nil
}

// CheckRow ensures 0 <= row < m.Rows().
// Assumes m is not nil (caller must ensure).
// Returns wrapped ErrRowOutOfRange on violation.
func CheckRow(m Matrix, row int) error {
	if row < 0 || row >= m.Rows() {
		return validatorErrorf("CheckRow", ErrRowOutOfRange)
	}

	return nil
}

// CheckCol ensures 0 <= col < m.Cols().
// Assumes m is not nil (caller must ensure).
// Returns wrapped ErrColumnOutOfRange on violation.
func CheckCol(m Matrix, col int) error {
	if col < 0 || col >= m.Cols() {
		return validatorErrorf("CheckCol", ErrColumnOutOfRange)
	}

	return nil
}

// CheckNotNil ensures the matrix reference is non-nil.
// Use as the first step in composite validations.
func CheckNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("CheckNotNil", ErrNilMatrix)
	}

	return nil
}

// CheckSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Row counts are compared before column counts; the first mismatch wins.
func CheckSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("CheckSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("CheckSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// CheckValue ensures a scalar argument is an actual decimal value.
// nil is rejected eagerly so kernels never dereference it mid-operation.
func CheckValue(v *apd.Decimal) error {
	if v == nil {
		return validatorErrorf("CheckValue", ErrNilValue)
	}

	return nil
}
