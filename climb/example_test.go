package climb_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/terrain"
)

// ExampleFinder_FromStart finds the fewest steps on the canonical heightmap.
func ExampleFinder_FromStart() {
	g, _ := terrain.ParseString(`
Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`)
	f, _ := climb.New(g)

	d, err := f.FromStart()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", d)

	// Output:
	// steps: 31
}

// ExampleFinder_FindDistance_unreachable shows the explicit unreachable outcome.
func ExampleFinder_FindDistance_unreachable() {
	g, _ := terrain.Build([]string{"SbcE"})
	f, _ := climb.New(g, climb.WithStrategy(climb.StrategyDijkstra))

	_, err := f.FindDistance(g.Start())
	fmt.Println(errors.Is(err, climb.ErrUnreachable))

	// Output:
	// true
}

// ExampleDistanceField prints every cell's distance to 'E' (-1: no path).
func ExampleDistanceField() {
	g, _ := terrain.Build([]string{
		"Sby",
		"czE",
	})
	field := climb.DistanceField(g)
	for y := 0; y < g.Height; y++ {
		fmt.Println(field[y*g.Width : (y+1)*g.Width])
	}

	// Output:
	// [-1 -1 1]
	// [-1 1 0]
}
