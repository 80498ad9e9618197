// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the *private* generic elementwise kernels (ew*) backing
//     ops.go whenever an operand is not sparse (or Product lacks the
//     context its sparse closed form needs).
//
// Design:
//   - All ew* are UNEXPORTED by design (internal fallback kernels).
//   - Kernels read operands only through the Matrix interface, so any
//     form — Sparse, Dense, or a future one — can flow through them.
//   - ops.go owns validation; kernels assume non-nil operands of equal,
//     valid shape, which is why interface At errors are impossible here
//     and reported as internal if they ever surface.
//
// Determinism & Performance:
//   - Fixed row→col loops (linear index 0..n-1). O(r*c) scalar ops,
//     one output allocation; operands are never written.

package matrix

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmat/dec"
)

// ewBinary computes out[r,c] = op(a[r,c], b[r,c]) into a fresh Dense.
// Time: O(r*c) scalar ops. Space: O(r*c).
func ewBinary(a, b Matrix, op scalarOp, ctx *dec.Context, tag string) (*Dense, error) {
	rows, cols := a.Rows(), a.Cols()
	out := newDense(rows, cols)

	var av, bv, v *apd.Decimal
	var err error
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			// Read both operands via the interface (bounds already valid).
			if av, err = a.At(r, c); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			if bv, err = b.At(r, c); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			// One scalar op per cell under the caller's context.
			if v, err = op(av, bv, ctx); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			out.set(linearIndex(r, cols, c), v)
		}
	}

	return out, nil
}

// ewScale computes out[r,c] = m[r,c] * alpha into a fresh Dense.
// Time: O(r*c) scalar ops. Space: O(r*c).
func ewScale(m Matrix, alpha *apd.Decimal, ctx *dec.Context) (*Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	out := newDense(rows, cols)

	var mv, v *apd.Decimal
	var err error
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if mv, err = m.At(r, c); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			if v, err = dec.Mul(mv, alpha, ctx); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			out.set(linearIndex(r, cols, c), v)
		}
	}

	return out, nil
}

// ewSum accumulates every cell additively in row-major order, starting
// from 0. The order matches ascending linear index, the same contract as
// the sparse reduction. Time: O(r*c) scalar ops.
func ewSum(m Matrix, ctx *dec.Context) (*apd.Decimal, error) {
	rows, cols := m.Rows(), m.Cols()
	acc := dec.Zero()

	var mv *apd.Decimal
	var err error
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if mv, err = m.At(r, c); err != nil {
				return nil, matrixErrorf(opSum, err)
			}
			if acc, err = dec.Add(acc, mv, ctx); err != nil {
				return nil, matrixErrorf(opSum, err)
			}
		}
	}

	return acc, nil
}

// ewProduct accumulates every cell multiplicatively in row-major order,
// starting from 1 (the empty product). A nil ctx is fine here: each step
// is a plain multiplication, exact when unbounded. Time: O(r*c).
func ewProduct(m Matrix, ctx *dec.Context) (*apd.Decimal, error) {
	rows, cols := m.Rows(), m.Cols()
	acc := dec.One()

	var mv *apd.Decimal
	var err error
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if mv, err = m.At(r, c); err != nil {
				return nil, matrixErrorf(opProduct, err)
			}
			if acc, err = dec.Mul(acc, mv, ctx); err != nil {
				return nil, matrixErrorf(opProduct, err)
			}
		}
	}

	return acc, nil
}
