package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazelab/maze"
)

// ExampleParse decodes a hand-drawn grid and lists its landmarks.
func ExampleParse() {
	g, err := maze.Parse("XXXXX\nXS FX\nXXXXX\nXXXXX\nXXXXX\n")
	if err != nil {
		fmt.Println(err)
		return
	}
	start, _ := g.Start()
	fmt.Println("size", g.Size())
	fmt.Println("start", start)
	fmt.Println("finishes", g.Finishes())
	fmt.Println("open", len(g.OpenCells()))

	// Output:
	// size 5
	// start (1,1)
	// finishes [(1,3)]
	// open 3
}

// ExampleAddDeadEnds opens the two wall cells that have three wall
// neighbors: (2,3) and then (3,4).
func ExampleAddDeadEnds() {
	g, _ := maze.Parse(corridor)
	fmt.Println("opened", maze.AddDeadEnds(g))
	fmt.Print(g)

	// Output:
	// opened 2
	// XXXXXX
	// XS   X
	// X X XX
	// X XX X
	// X   FX
	// XXXXXX
}
