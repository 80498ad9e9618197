// SPDX-License-Identifier: MIT
// Package matrix: the mutable construction form and the canonical set.
//
// Purpose:
//   - Builder is the ONLY type exposing mutation. It owns an unfrozen
//     Sparse exclusively; Build transfers that ownership out and releases
//     the builder, completing the type-state transition
//     Constructed (builder) → [Set]* → Frozen (Sparse).
//
// Policy & Contracts:
//   - setIndex is the single choke point for the canonicalization
//     invariant: a value numerically equal to the current default is a
//     delete, anything else is an insert of a private copy. Every entry in
//     every Sparse in this package was written through it.
//   - SetDefault re-prunes entries equal to the new default so the
//     invariant holds after every mutation, but it cannot resurrect cells
//     that were elided against the old default; set the default before the
//     cells when both change.
//
// Concurrency:
//   - A Builder is not safe for concurrent use; it is construction-local
//     state. The Sparse it builds is safe for concurrent reads.

package matrix

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmat/dec"
)

// Builder accumulates cells into a not-yet-published Sparse matrix.
// Create with NewBuilder; freeze with Build. After Build the builder is
// released and every method returns ErrBuilderReleased.
type Builder struct {
	m *Sparse // nil once released
}

// NewBuilder returns a Builder for a rows×cols matrix with default 0 and
// no stored cells.
// Errors: ErrInvalidDimensions when rows or cols is not positive.
// Complexity: O(1).
func NewBuilder(rows, cols int) (*Builder, error) {
	// Validate shape before any allocation (rows first, fixed order).
	if err := CheckRows(rows); err != nil {
		return nil, err
	}
	if err := CheckCols(cols); err != nil {
		return nil, err
	}

	return &Builder{m: newSparse(rows, cols)}, nil
}

// newBuilder is the internal constructor for arithmetic kernels whose
// shape is already known valid (taken from an existing operand).
func newBuilder(rows, cols int) *Builder {
	return &Builder{m: newSparse(rows, cols)}
}

// Set writes value v into cell (row, col) through the canonical set:
// a v equal to the default removes any stored entry, any other v stores
// a private copy. Errors: ErrBuilderReleased, ErrRowOutOfRange,
// ErrColumnOutOfRange, ErrNilValue. Zero side effects on error.
// Complexity: O(1) expected.
func (b *Builder) Set(row, col int, v *apd.Decimal) error {
	if b.m == nil {
		return ErrBuilderReleased
	}
	// Bounds first, value policy second; nothing written on failure.
	if err := CheckRow(b.m, row); err != nil {
		return err
	}
	if err := CheckCol(b.m, col); err != nil {
		return err
	}
	if err := CheckValue(v); err != nil {
		return err
	}

	b.setIndex(linearIndex(row, b.m.cols, col), v)

	return nil
}

// SetIndex writes value v at a linear cell index (row-major), the keyed
// form used when the caller already works in index space.
// Errors: ErrBuilderReleased, ErrIndexOutOfRange, ErrNilValue.
// Complexity: O(1) expected.
func (b *Builder) SetIndex(index int, v *apd.Decimal) error {
	if b.m == nil {
		return ErrBuilderReleased
	}
	if index < 0 || index >= b.m.Size() {
		return validatorErrorf("SetIndex", ErrIndexOutOfRange)
	}
	if err := CheckValue(v); err != nil {
		return err
	}

	b.setIndex(index, v)

	return nil
}

// SetDefault replaces the default value — the value of every cell absent
// from the store. Stored entries equal to the new default are pruned so
// the canonicalization invariant holds immediately after the call.
//
// Note: cells previously elided against the OLD default are not
// materialized; when changing both the default and cells, set the default
// first. Errors: ErrBuilderReleased, ErrNilValue.
// Complexity: O(filled).
func (b *Builder) SetDefault(v *apd.Decimal) error {
	if b.m == nil {
		return ErrBuilderReleased
	}
	if err := CheckValue(v); err != nil {
		return err
	}

	b.m.def = copyDec(v)
	// Re-canonicalize: entries equal to the new default are now redundant.
	for i, stored := range b.m.data {
		if dec.Equal(stored, b.m.def) {
			delete(b.m.data, i)
		}
	}

	return nil
}

// Build freezes the accumulated matrix and releases the builder.
// The returned Sparse owns the store exclusively; the builder keeps no
// reference and every later call on it returns ErrBuilderReleased.
// Complexity: O(1).
func (b *Builder) Build() (*Sparse, error) {
	if b.m == nil {
		return nil, ErrBuilderReleased
	}
	m := b.m
	b.m = nil // ownership transferred; builder is now inert

	return m, nil
}

// release is Build for internal kernels: shape and writes are already
// known good, so the error branch cannot trigger.
func (b *Builder) release() *Sparse {
	m := b.m
	b.m = nil

	return m
}

// setIndex is the canonical set: the ONE routine allowed to touch the
// store. It compares v to the current default with numeric equality
// (compare == 0, never representation equality — 1.50 must elide against
// a default of 1.5) and deletes-or-stores accordingly.
func (b *Builder) setIndex(index int, v *apd.Decimal) {
	if dec.Equal(v, b.m.def) {
		delete(b.m.data, index) // collapses back to default: prune
		return
	}
	b.m.data[index] = copyDec(v) // store a private copy, never aliased
}
