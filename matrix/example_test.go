// SPDX-License-Identifier: MIT
// Package matrix_test — runnable documentation examples.
package matrix_test

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/decmat/dec"
	"github.com/katalvlaran/decmat/matrix"
)

// ExampleAdd demonstrates the sparse fast path: two mostly-zero matrices
// combine at the cost of their stored cells, not their full size.
func ExampleAdd() {
	a, _ := matrix.SparseOf(2, 2,
		dec.MustParse("1"), dec.MustParse("0"),
		dec.MustParse("0"), dec.MustParse("1"))
	b, _ := matrix.SparseOf(2, 2,
		dec.MustParse("0"), dec.MustParse("2"),
		dec.MustParse("2"), dec.MustParse("0"))

	sum, _ := matrix.Add(a, b, nil) // nil context: exact arithmetic

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			v, _ := sum.At(r, c)
			if c > 0 {
				fmt.Print(" ")
			}
			fmt.Print(v)
		}
		fmt.Println()
	}
	// Output:
	// 1 2
	// 2 1
}

// ExampleBuilder demonstrates incremental construction and the
// compression diagnostics of the frozen result.
func ExampleBuilder() {
	b, _ := matrix.NewBuilder(3, 3)
	_ = b.Set(0, 0, dec.MustParse("5"))

	m, _ := b.Build() // frozen: no further mutation possible

	fmt.Println("filled:", m.FilledCount())
	fmt.Println("empty: ", m.EmptyCount())
	// Output:
	// filled: 1
	// empty:  8
}

// ExampleSum demonstrates the closed-form default contribution: a
// million implicit cells cost one multiplication.
func ExampleSum() {
	b, _ := matrix.NewBuilder(1000, 1000)
	_ = b.SetDefault(dec.MustParse("3"))
	_ = b.Set(0, 0, dec.MustParse("5"))
	m, _ := b.Build()

	total, _ := matrix.Sum(m, dec.New(10, apd.RoundHalfEven))
	fmt.Println(total)
	// Output:
	// 3000002
}
