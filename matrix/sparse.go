// SPDX-License-Identifier: MIT
// Package matrix: the frozen sparse form.
//
// Purpose:
//   - Sparse is the canonical compressed representation: shape + one default
//     value + a store of only the cells that differ from it.
//   - The type has NO exported mutators. Mutation exists only on Builder;
//     Build transfers ownership here, so "frozen" is enforced by the type
//     system, not by a runtime flag.
//
// Invariant (canonicalization):
//   - For every stored entry (i, v): v is NOT numerically equal to the
//     default value. Every path that writes entries routes through the one
//     choke point setIndex (builder.go), which enforces this.
//
// Determinism:
//   - The store itself is an unordered hash map; any precision-sensitive
//     traversal (reductions) iterates sortedIndexes() in ascending order.

package matrix

import (
	"sort"

	"github.com/cockroachdb/apd/v3"
)

// Sparse is a frozen rows×cols matrix holding defaultValue in every cell
// absent from its store. Zero bytes of storage are spent on default cells.
// Safe for concurrent reads; produced only by constructors, Builder.Build,
// and arithmetic operations.
type Sparse struct {
	rows, cols int
	def        *apd.Decimal         // value of every absent cell; never nil
	data       map[int]*apd.Decimal // linear index -> explicit value
}

// newSparse allocates an unfrozen shell for internal construction.
// Callers must have validated rows/cols already.
func newSparse(rows, cols int) *Sparse {
	return &Sparse{
		rows: rows,
		cols: cols,
		def:  new(apd.Decimal), // default defaults to 0
		data: make(map[int]*apd.Decimal),
	}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Sparse) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Sparse) Cols() int { return m.cols }

// Size returns the total cell count rows*cols. Complexity: O(1).
func (m *Sparse) Size() int { return m.rows * m.cols }

// At returns the value of cell (row, col): the stored value if the cell is
// filled, the default value otherwise. The result is a fresh copy.
// Errors: ErrRowOutOfRange, ErrColumnOutOfRange (row validated first).
// Complexity: O(1) expected. No side effects.
func (m *Sparse) At(row, col int) (*apd.Decimal, error) {
	// Validate bounds before computing the index (row first, fixed order).
	if err := CheckRow(m, row); err != nil {
		return nil, err
	}
	if err := CheckCol(m, col); err != nil {
		return nil, err
	}

	return copyDec(m.at(linearIndex(row, m.cols, col))), nil
}

// DefaultValue returns the value implicitly held by every empty cell,
// as a fresh copy. Complexity: O(1).
func (m *Sparse) DefaultValue() *apd.Decimal {
	return copyDec(m.def)
}

// FilledCount returns the number of explicitly stored cells.
// Complexity: O(1).
func (m *Sparse) FilledCount() int {
	return len(m.data)
}

// EmptyCount returns the number of cells carried by the default value.
// Complexity: O(1).
func (m *Sparse) EmptyCount() int {
	return m.Size() - m.FilledCount()
}

// EmptyRatio returns EmptyCount/Size as a float64 — the compression ratio
// diagnostic. Defined as 0 when Size is 0. Complexity: O(1).
func (m *Sparse) EmptyRatio() float64 {
	if m.Size() == 0 {
		return 0.0
	}

	return float64(m.EmptyCount()) / float64(m.Size())
}

// at returns the explicit value at a linear index, or the default value.
// Internal read: the returned pointer aliases storage and MUST NOT be
// mutated or escape to callers.
func (m *Sparse) at(index int) *apd.Decimal {
	if v, ok := m.data[index]; ok {
		return v
	}

	return m.def
}

// sortedIndexes returns the stored linear indexes in ascending order.
// Reductions traverse this order so that context-rounded results are
// reproducible run to run; the order is part of the contract.
// Complexity: O(k log k) for k stored cells.
func (m *Sparse) sortedIndexes() []int {
	idx := make([]int, 0, len(m.data))
	for i := range m.data {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	return idx
}

// unionIndexes returns the ascending union of both operands' stored
// indexes — exactly the cells a binary sparse kernel must visit; every
// other cell is default in both operands and covered by the closed-form
// default of the result.
// Complexity: O((ka+kb) log(ka+kb)).
func unionIndexes(a, b *Sparse) []int {
	seen := make(map[int]struct{}, len(a.data)+len(b.data))
	for i := range a.data {
		seen[i] = struct{}{}
	}
	for i := range b.data {
		seen[i] = struct{}{}
	}
	idx := make([]int, 0, len(seen))
	for i := range seen {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	return idx
}
