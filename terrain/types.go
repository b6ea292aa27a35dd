// Package terrain defines core types, constants, and sentinel errors
// for the terrain subpackage of github.com/katalvlaran/hillclimb.
package terrain

import "fmt"

// Elevation bounds. 'a' (and 'S') sit at MinElevation, 'z' (and 'E') at MaxElevation.
const (
	MinElevation = 0
	MaxElevation = 25
)

// MaxClimb is the largest upward elevation change a single step may make.
const MaxClimb = 1

// Marker tags a cell with its role in the grid.
type Marker int

const (
	// MarkerNone is an ordinary terrain cell.
	MarkerNone Marker = iota
	// MarkerStart is the unique 'S' cell.
	MarkerStart
	// MarkerEnd is the unique 'E' cell (the destination).
	MarkerEnd
)

// String returns a readable marker name.
func (m Marker) String() string {
	switch m {
	case MarkerStart:
		return "start"
	case MarkerEnd:
		return "end"
	default:
		return "normal"
	}
}

// Cell identifies a grid position by column X and row Y, both zero-based.
type Cell struct {
	X, Y int
}

// String formats the cell as "x,y".
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Grid is an immutable rectangular elevation surface. Width and Height define
// dimensions; elevations are stored row-major (index = y*Width + x).
// start and end hold the row-major indices of the 'S' and 'E' cells.
// neighborOffsets is precomputed for orthogonal adjacency lookups (N, E, S, W).
type Grid struct {
	Width, Height   int
	elevations      []uint8
	start, end      int
	neighborOffsets [4][2]int
}
