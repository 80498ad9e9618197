// SPDX-License-Identifier: MIT
// Package matrix — sparse fast-path kernels.
//
// Purpose:
//   - Implement the operations of ops.go at a cost proportional to the
//     number of STORED cells, never to rows*cols. This is the point of the
//     whole representation: default cells are handled in closed form.
//
// Design:
//   - All kernels here are UNEXPORTED; ops.go owns validation and
//     dispatch, so every kernel may assume non-nil operands of equal,
//     valid shape.
//   - Binary kernels compute the result default ONCE from the operand
//     defaults, then merge only the union of stored indexes; the canonical
//     set prunes any merged value that collapses back to the new default.
//
// Determinism:
//   - Union and store traversals run in ascending linear-index order.
//     For reductions under a bounded context this is load-bearing
//     (rounding is order-sensitive); for merges it costs little and keeps
//     every path reproducible.

package matrix

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmat/dec"
)

// addSubSparse merges two sparse operands of identical shape under op.
//
// Closed form: result default = op(defA, defB) — one scalar operation
// covering every cell that is default in BOTH operands, without visiting
// them. Explicit work: for each index in the ascending union of stores,
// op over the operands' effective values, written through the canonical
// set. Indexes outside the union are correct by construction.
// Complexity: O(u log u) index work + O(u) scalar ops, u = |A ∪ B|.
func addSubSparse(a, b *Sparse, op scalarOp, ctx *dec.Context, tag string) (*Sparse, error) {
	// Closed-form default for the result, computed exactly once.
	def, err := op(a.def, b.def, ctx)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	res := newBuilder(a.rows, a.cols)
	res.m.def = def

	// Merge only the cells explicit in at least one operand.
	var v *apd.Decimal
	for _, idx := range unionIndexes(a, b) {
		if v, err = op(a.at(idx), b.at(idx), ctx); err != nil {
			return nil, matrixErrorf(tag, err)
		}
		res.setIndex(idx, v) // canonical set prunes values equal to def
	}

	return res.release(), nil
}

// scaleSparse rescales a sparse matrix by alpha.
// Default: def*alpha once; entries: one multiplication each.
// Complexity: O(k log k) for k stored cells (ordered walk ensures the
// same dec error, if any, surfaces for the same input every run).
func scaleSparse(s *Sparse, alpha *apd.Decimal, ctx *dec.Context) (*Sparse, error) {
	def, err := dec.Mul(s.def, alpha, ctx)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := newBuilder(s.rows, s.cols)
	res.m.def = def

	var v *apd.Decimal
	for _, idx := range s.sortedIndexes() {
		if v, err = dec.Mul(s.data[idx], alpha, ctx); err != nil {
			return nil, matrixErrorf(opScale, err)
		}
		res.setIndex(idx, v) // e.g. alpha==0 collapses every entry into def
	}

	return res.release(), nil
}

// sumSparse reduces a sparse matrix additively.
// Default contribution: (Size-FilledCount) × default, one scaled multiply.
// Stored values then accumulate in ascending index order.
// Complexity: O(k log k), k = FilledCount.
func sumSparse(s *Sparse, ctx *dec.Context) (*apd.Decimal, error) {
	// EmptyCount() fits int64 by construction (it is at most Size()).
	empties := apd.New(int64(s.EmptyCount()), 0)
	acc, err := dec.Mul(empties, s.def, ctx)
	if err != nil {
		return nil, matrixErrorf(opSum, err)
	}

	for _, idx := range s.sortedIndexes() {
		if acc, err = dec.Add(acc, s.data[idx], ctx); err != nil {
			return nil, matrixErrorf(opSum, err)
		}
	}

	return acc, nil
}

// productSparse reduces a sparse matrix multiplicatively, ctx != nil.
// Default contribution: default^(Size-FilledCount) via dec.Pow (which
// fixes 0^0 == 1; the generic traversal needs no such convention because
// an exponent of zero means there are no default cells to multiply).
// Stored values then accumulate in ascending index order.
// Complexity: O(log Size) for the power + O(k log k) for the entries.
func productSparse(s *Sparse, ctx *dec.Context) (*apd.Decimal, error) {
	acc, err := dec.Pow(s.def, int64(s.EmptyCount()), ctx)
	if err != nil {
		return nil, matrixErrorf(opProduct, err)
	}

	for _, idx := range s.sortedIndexes() {
		if acc, err = dec.Mul(acc, s.data[idx], ctx); err != nil {
			return nil, matrixErrorf(opProduct, err)
		}
	}

	return acc, nil
}
