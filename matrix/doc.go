// Package matrix offers sparse and dense matrices of arbitrary-precision
// decimal values, with elementwise arithmetic and reductions.
//
// The matrix package provides:
//
//   - Sparse, a frozen matrix storing one shared default value plus only
//     the cells that differ from it (canonical compression: no stored
//     cell is ever numerically equal to the default).
//   - Builder, the mutable construction form; Build freezes it into a
//     Sparse, after which no mutation entry point exists.
//   - Dense, a frozen row-major form used as the fallback result when an
//     operand is not sparse or an operation has no sparse closed form.
//   - Elementwise Add/Sub/Scale and the Sum/Product reductions, costed by
//     the number of stored cells on the sparse fast paths.
//
// Sparse matrices are best when the overwhelming majority of cells share
// one value; a fully irregular matrix belongs in Dense.
//
// All scalar arithmetic runs through the dec package under an explicit
// precision/rounding context (nil context = exact where defined).
package matrix
