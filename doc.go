// Package decmat is a compact engine for sparse matrices of
// arbitrary-precision decimal values — store only what differs from a
// shared default, and pay for arithmetic in proportion to what you stored.
//
// 🚀 What is decmat?
//
//	A small, deterministic library that brings together:
//		• Sparse storage: one default value + a map of the cells that differ
//		• Canonical compression: no stored cell ever equals the default
//		• Elementwise arithmetic: add, subtract, scalar scale over the
//		  union of stored cells — never over the full r×c grid
//		• Reductions: sum and product with closed-form default handling
//		• Precision contexts: every scalar op runs under an explicit
//		  precision/rounding context, or exactly when none is given
//
// ✨ Why choose decmat?
//
//   - Decimal-exact – built on cockroachdb/apd, no float64 drift
//   - Predictable – fixed traversal orders, reproducible rounding
//   - Frozen results – arithmetic returns immutable matrices; mutation
//     lives only on the Builder, before the matrix is published
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under two subpackages:
//
//	dec/    — context-aware scalar primitives (Add/Sub/Mul/Pow, equality)
//	matrix/ — sparse & dense matrix forms, builders, kernels, reductions
//
// Quick sketch: a 1000×1000 matrix holding 0 everywhere except three
// cells costs three map entries, and adding two such matrices costs a
// handful of decimal additions — not a million.
//
// Dive into README.md for full examples and the numeric-policy notes.
//
//	go get github.com/katalvlaran/decmat
package decmat
