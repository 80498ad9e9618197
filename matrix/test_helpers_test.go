// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for the matrix test-suite.
// Keep helpers tiny; tests stay the single place where expectations live.
package matrix_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decmat/dec"
	"github.com/katalvlaran/decmat/matrix"
)

// d parses a decimal literal for test data; panics on malformed input.
func d(s string) *apd.Decimal { return dec.MustParse(s) }

// ds parses a flat list of decimal literals in row-major order.
func ds(ss ...string) []*apd.Decimal {
	out := make([]*apd.Decimal, len(ss))
	for i, s := range ss {
		out[i] = d(s)
	}

	return out
}

// mustSparse builds a Sparse from flat literals and fails the test on error.
func mustSparse(t *testing.T, rows, cols int, ss ...string) *matrix.Sparse {
	t.Helper()
	m, err := matrix.SparseOf(rows, cols, ds(ss...)...)
	require.NoError(t, err) // construction must succeed for test data

	return m
}

// requireCell asserts that m[row,col] equals the literal want numerically.
func requireCell(t *testing.T, m matrix.Matrix, row, col int, want string) {
	t.Helper()
	got, err := m.At(row, col)
	require.NoError(t, err) // in-bounds read must succeed
	require.Zero(t, got.Cmp(d(want)),
		"cell (%d,%d): got %s, want %s", row, col, got, want) // numeric, not string, equality
}

// requireSameCells asserts a and b agree numerically on every cell.
func requireSameCells(t *testing.T, a, b matrix.Matrix) {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows()) // shapes must match first
	require.Equal(t, a.Cols(), b.Cols())
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			av, err := a.At(r, c)
			require.NoError(t, err)
			bv, err := b.At(r, c)
			require.NoError(t, err)
			require.Zero(t, av.Cmp(bv), "cell (%d,%d): %s vs %s", r, c, av, bv)
		}
	}
}
