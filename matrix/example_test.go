package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/apsp/matrix"
)

// ExampleDense shows the row-major dump of a small overlap matrix.
func ExampleDense() {
	m, err := matrix.NewDense(2, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = m.Set(0, 1, 3)
	fmt.Print(m)

	if err := m.Set(1, 0, -1); err != nil {
		fmt.Println(err)
	}

	// Output:
	// [0, 3]
	// [0, 0]
	// Dense.Set(1,0): matrix: negative value
}

// ExampleDiff compares a computed matrix against a reference one.
func ExampleDiff() {
	got, _ := matrix.NewDense(2, 2)
	want, _ := matrix.NewDense(2, 2)
	_ = got.Set(0, 1, 2)
	_ = want.Set(0, 1, 3)

	cells, _ := matrix.Diff(got, want)
	for _, c := range cells {
		fmt.Println(c)
	}

	// Output:
	// (0,1) got=2 want=3
}
