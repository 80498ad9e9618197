// SPDX-License-Identifier: MIT
// Package dec: scalar kernels (Add/Sub/Mul/Pow) and numeric equality.
//
// Purpose:
//   - Provide the four primitives the matrix layer composes, total over
//     finite decimals, each returning a freshly allocated result.
//   - Centralize the nil-context-means-exact policy: for Add/Sub/Mul the
//     exact result is finite, so a sufficient working precision is derived
//     from the operands and no rounding ever occurs.
//
// Determinism:
//   - Every kernel is a pure function of its operands and context; there is
//     no global state and no randomness.
//   - Pow uses binary squaring with a fixed reduction order, so a given
//     (base, exp, ctx) triple always rounds identically.

package dec

import (
	"errors"
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// ErrNoContext is returned by Pow when no rounding context is supplied.
// Exact exponentiation of an arbitrary decimal base is not offered.
var ErrNoContext = errors.New("dec: operation requires a rounding context")

// ErrNegativeExponent is returned by Pow for exponents below zero; the
// integer-power primitive covers non-negative exponents only.
var ErrNegativeExponent = errors.New("dec: negative exponent")

// opErrorf wraps an underlying apd error with the kernel tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("dec: %s: %w", op, err)
}

// Add returns a + b under ctx. A nil ctx computes the exact sum.
// Operands are not mutated. Complexity: O(digits).
func Add(a, b *apd.Decimal, ctx *Context) (*apd.Decimal, error) {
	c := ctx
	if c == nil {
		c = exactLinearContext(a, b) // precision wide enough for an exact sum
	}
	z := new(apd.Decimal)
	if _, err := c.Add(z, a, b); err != nil {
		return nil, opErrorf("add", err)
	}

	return z, nil
}

// Sub returns a - b under ctx. A nil ctx computes the exact difference.
// Operands are not mutated. Complexity: O(digits).
func Sub(a, b *apd.Decimal, ctx *Context) (*apd.Decimal, error) {
	c := ctx
	if c == nil {
		c = exactLinearContext(a, b) // same digit bound as addition
	}
	z := new(apd.Decimal)
	if _, err := c.Sub(z, a, b); err != nil {
		return nil, opErrorf("sub", err)
	}

	return z, nil
}

// Mul returns a * b under ctx. A nil ctx computes the exact product:
// the result never needs more digits than the operands carry combined.
// Operands are not mutated. Complexity: O(digits^2) worst case (apd).
func Mul(a, b *apd.Decimal, ctx *Context) (*apd.Decimal, error) {
	c := ctx
	if c == nil {
		c = apd.BaseContext.WithPrecision(clampPrecision(a.NumDigits() + b.NumDigits()))
	}
	z := new(apd.Decimal)
	if _, err := c.Mul(z, a, b); err != nil {
		return nil, opErrorf("mul", err)
	}

	return z, nil
}

// Pow returns base^exp under ctx for integer exp >= 0, by binary squaring
// with every intermediate product rounded under ctx.
//
// Conventions (fixed, relied upon by matrix reductions):
//   - exp == 0 yields exactly 1 for every base, including 0^0 == 1.
//   - ctx == nil yields ErrNoContext; callers needing exact semantics must
//     avoid the exponentiation path entirely.
//   - exp < 0 yields ErrNegativeExponent.
//
// Complexity: O(log exp) context multiplications.
func Pow(base *apd.Decimal, exp int64, ctx *Context) (*apd.Decimal, error) {
	// Validate policy before touching any operand.
	if ctx == nil {
		return nil, opErrorf("pow", ErrNoContext)
	}
	if exp < 0 {
		return nil, opErrorf("pow", ErrNegativeExponent)
	}

	// x^0 == 1 for every x; the 0^0 convention lives here and nowhere else.
	z := apd.New(1, 0)
	if exp == 0 {
		return z, nil
	}

	// Square-and-multiply over a private copy of the base.
	sq := new(apd.Decimal).Set(base)
	for e := exp; ; {
		if e&1 == 1 {
			if _, err := ctx.Mul(z, z, sq); err != nil {
				return nil, opErrorf("pow", err)
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		if _, err := ctx.Mul(sq, sq, sq); err != nil {
			return nil, opErrorf("pow", err)
		}
	}

	return z, nil
}

// Equal reports whether a and b denote the same numeric value.
// This is value equality (compare == 0), never representation equality:
// 1.50 and 1.5 are equal even though their internal scales differ.
func Equal(a, b *apd.Decimal) bool {
	return a.Cmp(b) == 0
}

// MustParse parses a decimal literal or panics; intended for constants
// and tests, not for handling untrusted input.
func MustParse(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(fmt.Sprintf("dec: parse %q: %v", s, err))
	}

	return d
}

// exactLinearContext returns a context wide enough that a+b (or a-b) is
// exact: enough digits to span from the higher operand's leading digit
// down to the lower operand's last stored digit, plus a carry digit.
func exactLinearContext(a, b *apd.Decimal) *Context {
	hi := adjustedExponent(a)
	if h := adjustedExponent(b); h > hi {
		hi = h
	}
	lo := int64(a.Exponent)
	if l := int64(b.Exponent); l < lo {
		lo = l
	}

	return apd.BaseContext.WithPrecision(clampPrecision(hi - lo + 2))
}

// adjustedExponent is the exponent of the most significant digit of d
// (GDA "adjusted exponent"): Exponent + NumDigits - 1.
func adjustedExponent(d *apd.Decimal) int64 {
	return int64(d.Exponent) + d.NumDigits() - 1
}

// clampPrecision folds a digit count into apd's precision range [1, 2^32).
func clampPrecision(n int64) uint32 {
	if n < 1 {
		return 1
	}
	if n > math.MaxUint32 {
		return math.MaxUint32
	}

	return uint32(n)
}
