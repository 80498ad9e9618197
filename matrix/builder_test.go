// Package matrix_test contains unit tests for Builder: the canonical set,
// the canonicalization round-trip, default management and the type-state
// transition into a frozen Sparse.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/decmat/matrix"
)

// TestBuilderCanonicalRoundTrip verifies the core invariant round-trip:
// setting a non-default value stores exactly one entry; setting the cell
// back to the default prunes it again.
func TestBuilderCanonicalRoundTrip(t *testing.T) {
	b, err := matrix.NewBuilder(2, 3)
	require.NoError(t, err)

	require.NoError(t, b.Set(1, 2, d("7.5"))) // non-default value: stored
	require.NoError(t, b.Set(1, 2, d("0")))   // equal to default: pruned again
	require.NoError(t, b.Set(0, 1, d("42")))  // and one entry that stays

	m, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, 1, m.FilledCount()) // only (0,1) survived canonicalization
	requireCell(t, m, 1, 2, "0")         // pruned cell reads the default
	requireCell(t, m, 0, 1, "42")
}

// TestBuilderNumericEquality ensures elision uses value equality, never
// representation equality: 5.00 must prune against a default of 5.
func TestBuilderNumericEquality(t *testing.T) {
	b, err := matrix.NewBuilder(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.SetDefault(d("5"))) // default is now 5

	require.NoError(t, b.Set(0, 0, d("5.00")))  // same value, different scale
	require.NoError(t, b.Set(0, 1, d("5.01")))  // genuinely different

	m, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, 1, m.FilledCount()) // 5.00 was elided, 5.01 stored
	requireCell(t, m, 0, 0, "5")
	requireCell(t, m, 0, 1, "5.01")
}

// TestBuilderSetBounds ensures coordinate and index writes validate
// eagerly with zero side effects.
func TestBuilderSetBounds(t *testing.T) {
	b, err := matrix.NewBuilder(2, 2)
	require.NoError(t, err)

	require.ErrorIs(t, b.Set(2, 0, d("1")), matrix.ErrRowOutOfRange)     // row too large
	require.ErrorIs(t, b.Set(0, -1, d("1")), matrix.ErrColumnOutOfRange) // negative col
	require.ErrorIs(t, b.Set(0, 0, nil), matrix.ErrNilValue)             // nil value policy
	require.ErrorIs(t, b.SetIndex(4, d("1")), matrix.ErrIndexOutOfRange) // index == size
	require.ErrorIs(t, b.SetIndex(-1, d("1")), matrix.ErrIndexOutOfRange)

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 0, m.FilledCount()) // none of the failed writes landed
}

// TestBuilderSetIndexRowMajor verifies the linear-index form writes the
// same cell as the (row, col) form: index = row*cols + col.
func TestBuilderSetIndexRowMajor(t *testing.T) {
	b, err := matrix.NewBuilder(2, 3)
	require.NoError(t, err)
	require.NoError(t, b.SetIndex(5, d("9"))) // 5 = 1*3 + 2

	m, err := b.Build()
	require.NoError(t, err)
	requireCell(t, m, 1, 2, "9")
}

// TestBuilderSetDefaultPrunes ensures changing the default immediately
// re-canonicalizes: entries equal to the new default vanish.
func TestBuilderSetDefaultPrunes(t *testing.T) {
	b, err := matrix.NewBuilder(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, d("3")))   // stored against default 0
	require.NoError(t, b.Set(1, 1, d("4")))

	require.NoError(t, b.SetDefault(d("3.0"))) // numerically equal to the (0,0) entry

	m, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 1, m.FilledCount())          // (0,0) collapsed into the default
	require.Zero(t, m.DefaultValue().Cmp(d("3"))) // default changed
	requireCell(t, m, 0, 0, "3")                  // now served implicitly
	requireCell(t, m, 0, 1, "3")                  // empty cells follow the new default
	requireCell(t, m, 1, 1, "4")
}

// TestBuilderReleased ensures Build consumes the builder: every later
// call fails with ErrBuilderReleased and the frozen matrix is unaffected.
func TestBuilderReleased(t *testing.T) {
	b, err := matrix.NewBuilder(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.Set(0, 0, d("1")))

	m, err := b.Build()
	require.NoError(t, err)

	require.ErrorIs(t, b.Set(0, 1, d("2")), matrix.ErrBuilderReleased)   // mutation after freeze
	require.ErrorIs(t, b.SetIndex(1, d("2")), matrix.ErrBuilderReleased)
	require.ErrorIs(t, b.SetDefault(d("2")), matrix.ErrBuilderReleased)
	_, err = b.Build()                                                   // double Build
	require.ErrorIs(t, err, matrix.ErrBuilderReleased)

	require.Equal(t, 1, m.FilledCount()) // the frozen result never moved
	requireCell(t, m, 0, 0, "1")
}

// TestBuilderStoresCopies ensures the builder copies values on write, so
// later caller-side mutation cannot corrupt the store.
func TestBuilderStoresCopies(t *testing.T) {
	b, err := matrix.NewBuilder(1, 2)
	require.NoError(t, err)

	v := d("8")
	require.NoError(t, b.Set(0, 0, v))
	v.SetInt64(-1) // mutate the caller's decimal after the write

	m, err := b.Build()
	require.NoError(t, err)
	requireCell(t, m, 0, 0, "8") // store kept its own copy
}
