// Package matrix_test contains unit tests for the one-call constructors:
// flat-value and generator forms, for both Sparse and Dense.
package matrix_test

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decmat/matrix"
)

// TestSparseOfCompresses verifies flat construction routes through the
// canonical set: zeros are never stored.
func TestSparseOfCompresses(t *testing.T) {
	m := mustSparse(t, 2, 3,
		"0", "1.5", "0",
		"0", "0", "-2")

	require.Equal(t, 2, m.FilledCount()) // only the two non-zero cells
	require.Equal(t, 4, m.EmptyCount())
	requireCell(t, m, 0, 1, "1.5")
	requireCell(t, m, 1, 2, "-2")
	requireCell(t, m, 1, 0, "0") // implicit default
}

// TestSparseOfValueCount ensures the flat form demands exactly rows*cols
// values and fails without side effects otherwise.
func TestSparseOfValueCount(t *testing.T) {
	_, err := matrix.SparseOf(2, 2, ds("1", "2", "3")...) // one short
	require.ErrorIs(t, err, matrix.ErrValueCount)

	_, err = matrix.SparseOf(2, 2, ds("1", "2", "3", "4", "5")...) // one over
	require.ErrorIs(t, err, matrix.ErrValueCount)

	_, err = matrix.SparseOf(0, 2, ds("1", "2")...) // shape validated first
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestSparseOfNilValue ensures nil values are rejected before any write.
func TestSparseOfNilValue(t *testing.T) {
	vals := ds("1", "2", "3", "4")
	vals[2] = nil

	_, err := matrix.SparseOf(2, 2, vals...)
	require.ErrorIs(t, err, matrix.ErrNilValue)
}

// TestSparseFromFuncRowMajor verifies the generator runs once per cell in
// row-major order over all rows*cols cells, and that its results still
// compress through the canonical set.
func TestSparseFromFuncRowMajor(t *testing.T) {
	var visits [][2]int // record of generator invocations, in order

	m, err := matrix.SparseFromFunc(2, 3, func(r, c int) *apd.Decimal {
		visits = append(visits, [2]int{r, c})
		if r == c {
			return d("1") // identity-like pattern
		}
		return d("0.0") // default, representation differs, still elided
	})
	require.NoError(t, err)

	// Generator saw every cell exactly once, row-major.
	require.Equal(t, [][2]int{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}, visits)

	require.Equal(t, 2, m.FilledCount()) // only the diagonal cells stored
	requireCell(t, m, 0, 0, "1")
	requireCell(t, m, 1, 1, "1")
	requireCell(t, m, 0, 2, "0")
}

// TestSparseFromFuncNil ensures a nil generator result is a policy error.
func TestSparseFromFuncNil(t *testing.T) {
	_, err := matrix.SparseFromFunc(2, 2, func(r, c int) *apd.Decimal {
		return nil
	})
	require.ErrorIs(t, err, matrix.ErrNilValue)
}

// TestDenseOf verifies the dense constructor and its frozen read surface.
func TestDenseOf(t *testing.T) {
	m, err := matrix.DenseOf(2, 2, ds("1", "2", "3", "4")...)
	require.NoError(t, err)

	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, 4, m.Size())
	requireCell(t, m, 0, 0, "1")
	requireCell(t, m, 1, 1, "4")

	_, err = m.At(0, 5)
	require.ErrorIs(t, err, matrix.ErrColumnOutOfRange)

	_, err = matrix.DenseOf(2, 2, ds("1")...)
	require.ErrorIs(t, err, matrix.ErrValueCount)
}

// TestDenseFromFunc verifies the dense generator form fills row-major.
func TestDenseFromFunc(t *testing.T) {
	m, err := matrix.DenseFromFunc(2, 2, func(r, c int) *apd.Decimal {
		return apd.New(int64(r*2+c), 0) // cell value == linear index
	})
	require.NoError(t, err)

	requireCell(t, m, 0, 0, "0")
	requireCell(t, m, 0, 1, "1")
	requireCell(t, m, 1, 0, "2")
	requireCell(t, m, 1, 1, "3")
}
