package eqset_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linsolve/eqset"
)

// ExampleEquationSet demonstrates the Empty → Filling → Ready lifecycle:
// build a 2×2 system row by row, watch IsReady flip, and see a third row
// rejected without disturbing the accepted system.
func ExampleEquationSet() {
	set, err := eqset.New(2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_ = set.AddEquation([]float64{8, -6}, 2) // 8x − 6y = 2
	fmt.Println("ready after one row:", set.IsReady())

	_ = set.AddEquation([]float64{2, 3}, 2) // 2x + 3y = 2
	fmt.Println("ready after two rows:", set.IsReady())

	err = set.AddEquation([]float64{3, 0}, 5)
	fmt.Println("third row rejected:", errors.Is(err, eqset.ErrSetFull))

	fmt.Print(set)
	// Output:
	// ready after one row: false
	// ready after two rows: true
	// third row rejected: true
	// [8, -6] = 2
	// [2, 3] = 2
}
