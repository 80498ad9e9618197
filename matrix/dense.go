// Package matrix: Dense is the frozen row-major fallback form.
// Dense stores every cell explicitly in a flat slice; it is the result
// shape of generic elementwise kernels whose operands are not both
// sparse, and the shape of choice for fully irregular data.
package matrix

import "github.com/cockroachdb/apd/v3"

// Dense is a frozen rows×cols matrix of decimals in row-major order.
// Like Sparse it exposes no mutators: construct it fully via DenseOf or
// DenseFromFunc, then read it from any number of goroutines.
type Dense struct {
	rows, cols int
	data       []apd.Decimal // flat backing storage, length rows*cols
}

// newDense allocates a zero-filled shell for internal construction.
// The zero value of apd.Decimal is 0, so no per-cell init is needed.
// Callers must have validated rows/cols already.
func newDense(rows, cols int) *Dense {
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]apd.Decimal, rows*cols),
	}
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.cols }

// Size returns the total cell count rows*cols. Complexity: O(1).
func (m *Dense) Size() int { return m.rows * m.cols }

// At returns a fresh copy of the value at (row, col).
// Errors: ErrRowOutOfRange, ErrColumnOutOfRange (row validated first).
// Complexity: O(1).
func (m *Dense) At(row, col int) (*apd.Decimal, error) {
	if err := CheckRow(m, row); err != nil {
		return nil, err
	}
	if err := CheckCol(m, col); err != nil {
		return nil, err
	}

	return copyDec(&m.data[linearIndex(row, m.cols, col)]), nil
}

// set writes v at a linear index. Internal: only construction kernels in
// this package may call it, before the Dense is published.
func (m *Dense) set(index int, v *apd.Decimal) {
	m.data[index].Set(v)
}
