// Package dec provides the scalar arithmetic primitives used by the
// matrix layer: context-aware Add, Sub, Mul and integer Pow over
// arbitrary-precision decimal values, plus numeric equality.
//
// The package is a thin, policy-bearing facade over
// github.com/cockroachdb/apd: apd supplies the decimal type and the
// General Decimal Arithmetic semantics; dec fixes the conventions the
// rest of this module relies on:
//
//   - A nil *Context selects exact, unbounded semantics for Add, Sub and
//     Mul (their exact results are always finite, so a sufficient working
//     precision is derived from the operands).
//   - Pow requires a context: exact exponentiation of an arbitrary base
//     is intentionally not offered. Callers that cannot supply a context
//     must compute their product another way.
//   - x^0 == 1 for every x, including 0^0 == 1.
//   - Equality is numeric (compare == 0), never representational: 1.50
//     and 1.5 are the same value.
//
// Operands are never mutated; every primitive allocates a fresh result.
package dec
