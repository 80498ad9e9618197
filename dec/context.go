// SPDX-License-Identifier: MIT
// Package dec: precision/rounding context construction.
//
// Purpose:
//   - Keep context construction in one place so every caller inherits the
//     same exponent range and trap policy (apd.BaseContext).
//   - Make "no context" a first-class state: a nil *Context means exact,
//     unbounded semantics wherever an exact result exists.

package dec

import "github.com/cockroachdb/apd/v3"

// Context governs the precision (significant digit count) and rounding
// policy of a scalar operation. It is apd's context verbatim; dec adds no
// state of its own. A nil *Context selects exact semantics (see ops.go).
type Context = apd.Context

// New returns a Context with the given precision and rounding mode,
// inheriting exponent limits and traps from apd.BaseContext.
//
// precision must be >= 1; New panics otherwise (programmer error, same
// policy as nonsensical option values elsewhere in this module).
// Complexity: O(1).
func New(precision uint32, rounding apd.Rounder) *Context {
	// Zero precision is not a meaningful rounding policy; reject loudly.
	if precision == 0 {
		panic("dec: context precision must be >= 1")
	}
	// Copy BaseContext (exponent range, traps) and override the two knobs.
	c := apd.BaseContext.WithPrecision(precision)
	c.Rounding = rounding

	return c
}

// Zero returns a fresh decimal holding 0.
// The zero value of apd.Decimal is 0; this exists for call-site clarity.
func Zero() *apd.Decimal { return new(apd.Decimal) }

// One returns a fresh decimal holding 1.
func One() *apd.Decimal { return apd.New(1, 0) }
