package knight_test

import (
	"fmt"

	"github.com/katalvlaran/pathseek/grid"
	"github.com/katalvlaran/pathseek/knight"
)

func ExampleMoves() {
	n, ok, err := knight.Moves(grid.Location{}, grid.Location{Row: 13, Col: 13}, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(n, ok)
	// Output: 10 true
}

func ExampleFromText() {
	start, goal, obstacles, err := knight.FromText("S *\n* E")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(start, goal, obstacles)
	// Output: (0,0) (1,2) [(0,2) (1,0)]
}
