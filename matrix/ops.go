// SPDX-License-Identifier: MIT
// Package matrix — public arithmetic operations.
//
// Purpose:
//   - Provide the five operations of the engine: elementwise Add/Sub,
//     scalar Scale, and the Sum/Product reductions.
//   - Each operation validates eagerly (nil, shape) before any scalar
//     work, dispatches to a sparse fast path when the operand forms allow
//     it, and otherwise falls back to the generic elementwise kernels.
//
// Policy & Contracts:
//   - Operands are NEVER mutated; every result is a freshly allocated,
//     frozen matrix (Sparse on the fast paths, Dense on the fallbacks).
//   - ctx may be nil, selecting exact semantics where defined (see the dec
//     package); Product without a context cannot use the sparse
//     exponentiation closed form and is routed to the generic traversal.
//   - Scalar-primitive failures propagate unchanged, wrapped only with the
//     operation tag.
//
// Determinism:
//   - Sparse kernels visit stored indexes in ascending order; generic
//     kernels run fixed row→col loops. Under a bounded-precision context
//     the traversal order is part of the contract, not an implementation
//     detail: rounding makes accumulation order-sensitive.

package matrix

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmat/dec"
)

// Operation tags used in wrapped errors.
const (
	opAdd     = "Add"
	opSub     = "Sub"
	opScale   = "Scale"
	opSum     = "Sum"
	opProduct = "Product"
)

// matrixErrorf tags an underlying error with the public operation name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("matrix: %s: %w", tag, err)
}

// scalarOp is the shape of a binary dec kernel (dec.Add / dec.Sub).
type scalarOp func(a, b *apd.Decimal, ctx *dec.Context) (*apd.Decimal, error)

// Add computes the elementwise sum C[r,c] = A[r,c] + B[r,c] under ctx and
// returns a fresh frozen result.
//
// Fast path (both operands *Sparse): the result default is computed once
// as defA+defB, covering every cell that is default in both operands;
// only the union of stored indexes is visited. Cost O(|A ∪ B|) scalar
// additions, independent of rows*cols. Any other operand mix takes the
// generic kernel at O(rows*cols).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (validated before any
// computation; no partial result exists on failure); dec errors propagate.
func Add(a, b Matrix, ctx *dec.Context) (Matrix, error) { return addSub(a, b, dec.Add, ctx, opAdd) }

// Sub computes the elementwise difference C[r,c] = A[r,c] - B[r,c] under
// ctx. Same dispatch, cost and error contract as Add, with the result
// default defA-defB on the sparse fast path.
func Sub(a, b Matrix, ctx *dec.Context) (Matrix, error) { return addSub(a, b, dec.Sub, ctx, opSub) }

// addSub validates and dispatches the two elementwise binary operations.
// Validation order is fixed: a nil → b nil → shape; the first violation
// wins and nothing has been computed or written at that point.
func addSub(a, b Matrix, op scalarOp, ctx *dec.Context, tag string) (Matrix, error) {
	if err := CheckNotNil(a); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := CheckNotNil(b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := CheckSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Fast path: both operands sparse → union merge, O(|A ∪ B|).
	if sa, ok := a.(*Sparse); ok {
		if sb, ok2 := b.(*Sparse); ok2 {
			return addSubSparse(sa, sb, op, ctx, tag)
		}
	}

	// Generic fallback: full row-major traversal into a Dense.
	return ewBinary(a, b, op, ctx, tag)
}

// Scale multiplies every cell of m by alpha under ctx and returns a fresh
// frozen result. Sparse fast path: the result default is def*alpha
// (computed once) and each stored entry is rescaled — O(|store|) scalar
// multiplications. Generic fallback costs O(rows*cols).
//
// Errors: ErrNilMatrix, ErrNilValue; dec errors propagate.
func Scale(m Matrix, alpha *apd.Decimal, ctx *dec.Context) (Matrix, error) {
	if err := CheckNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if err := CheckValue(alpha); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if s, ok := m.(*Sparse); ok {
		return scaleSparse(s, alpha, ctx)
	}

	return ewScale(m, alpha, ctx)
}

// Sum reduces m to the single value Σ m[r,c] under ctx.
//
// Sparse fast path: the default cells contribute in closed form as
// (Size-FilledCount) × default — one scaled multiplication — and stored
// values are then added in ascending linear-index order. Generic fallback
// adds every cell in row-major order. Both orders are fixed: under a
// bounded context, addition order shows in the low-order digits.
//
// A nil ctx computes the exact sum on either path.
// Errors: ErrNilMatrix; dec errors propagate.
func Sum(m Matrix, ctx *dec.Context) (*apd.Decimal, error) {
	if err := CheckNotNil(m); err != nil {
		return nil, matrixErrorf(opSum, err)
	}

	if s, ok := m.(*Sparse); ok {
		return sumSparse(s, ctx)
	}

	return ewSum(m, ctx)
}

// Product reduces m to the single value Π m[r,c] under ctx.
//
// Sparse fast path (requires ctx): the default cells contribute as
// default^(Size-FilledCount) via the context-aware integer power, then
// stored values multiply in ascending linear-index order. With a nil
// ctx exact exponentiation is not available, so the operation delegates
// to the generic row-major traversal (exact multiplications) instead —
// same value conventions, including x^0 == 1 and 0^0 == 1.
//
// Errors: ErrNilMatrix; dec errors propagate.
func Product(m Matrix, ctx *dec.Context) (*apd.Decimal, error) {
	if err := CheckNotNil(m); err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	// The closed form needs dec.Pow, which needs a context.
	if s, ok := m.(*Sparse); ok && ctx != nil {
		return productSparse(s, ctx)
	}

	return ewProduct(m, ctx)
}
