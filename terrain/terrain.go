// Package terrain turns a heightmap of letters into an immutable elevation
// surface and answers adjacency and elevation queries over it.
//
//   - 'a'..'z' map to elevations 0..25
//   - 'S' marks the start (elevation 0), 'E' the destination (elevation 25)
//   - Adjacency is orthogonal only (N, E, S, W), no wraparound
//   - A step u→v is allowed iff elevation(v) ≤ elevation(u) + 1
package terrain

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// elevationTable maps an ASCII byte to its elevation, or -1 if the byte is not terrain.
var elevationTable = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = int8(c - 'a')
	}
	t['S'] = MinElevation
	t['E'] = MaxElevation

	return t
}()

// ElevationOf returns the elevation encoded by r and whether r is a terrain character.
// Complexity: O(1).
func ElevationOf(r rune) (int, bool) {
	if r < 0 || r > 0xFF {
		return 0, false
	}
	e := elevationTable[r]
	if e < 0 {
		return 0, false
	}

	return int(e), true
}

// Build constructs a Grid from rows of terrain text.
// Every failure is a *FormatError wrapping ErrEmptyGrid, ErrNonRectangular,
// ErrUnknownRune or ErrMarkerCount.
// Algorithmic complexity: O(W×H) time and memory.
func Build(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &FormatError{Err: ErrEmptyGrid}
	}
	h, w := len(rows), len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, &FormatError{
				Line: y + 1,
				Err:  fmt.Errorf("%w: got %d, want %d", ErrNonRectangular, len(row), w),
			}
		}
	}

	g := &Grid{
		Width:           w,
		Height:          h,
		elevations:      make([]uint8, w*h),
		start:           -1,
		end:             -1,
		neighborOffsets: [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
	}
	starts, ends := 0, 0
	for y, row := range rows {
		for x := 0; x < w; x++ {
			b := row[x]
			e := elevationTable[b]
			if e < 0 {
				return nil, &FormatError{
					Line:   y + 1,
					Column: x + 1,
					Err:    fmt.Errorf("%w %q", ErrUnknownRune, b),
				}
			}
			i := g.index(x, y)
			g.elevations[i] = uint8(e)
			switch b {
			case 'S':
				starts++
				g.start = i
			case 'E':
				ends++
				g.end = i
			}
		}
	}
	if starts != 1 || ends != 1 {
		return nil, &FormatError{
			Err: fmt.Errorf("%w: found %d start and %d end", ErrMarkerCount, starts, ends),
		}
	}

	return g, nil
}

// Parse reads terrain text, one row per line, and builds a Grid.
// Leading and trailing blank lines are ignored, as are '\r' line endings.
func Parse(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var rows []string
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("terrain: read input: %w", err)
	}

	// trim surrounding blank lines; skipped counts the leading ones so error
	// positions still refer to input lines
	skipped := 0
	for len(rows) > 0 && rows[0] == "" {
		rows = rows[1:]
		skipped++
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	g, err := Build(rows)
	if fe, ok := err.(*FormatError); ok && fe.Line > 0 {
		fe.Line += skipped
	}

	return g, err
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Grid, error) {
	return Parse(strings.NewReader(s))
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Len returns the number of cells, W×H.
func (g *Grid) Len() int {
	return len(g.elevations)
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Index maps an in-bounds cell to its row-major index.
// The result is unspecified for cells outside the grid; check InBounds first.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return g.index(c.X, c.Y)
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(i int) Cell {
	return Cell{X: i % g.Width, Y: i / g.Width}
}

// Start returns the unique 'S' cell.
func (g *Grid) Start() Cell { return g.CellAt(g.start) }

// End returns the unique 'E' cell.
func (g *Grid) End() Cell { return g.CellAt(g.end) }

// ElevationAt returns the elevation of c in [MinElevation, MaxElevation].
// It panics with an error wrapping ErrOutOfBounds if c is out of bounds.
func (g *Grid) ElevationAt(c Cell) int {
	g.mustContain(c)

	return int(g.elevations[g.Index(c)])
}

// MarkerAt reports the role of c.
// It panics with an error wrapping ErrOutOfBounds if c is out of bounds.
func (g *Grid) MarkerAt(c Cell) Marker {
	g.mustContain(c)
	switch g.Index(c) {
	case g.start:
		return MarkerStart
	case g.end:
		return MarkerEnd
	default:
		return MarkerNone
	}
}

// mustContain panics if c lies outside the grid. Without it a column past
// the right edge would alias the first cell of the next row.
func (g *Grid) mustContain(c Cell) {
	if !g.InBounds(c) {
		panic(fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.Width, g.Height))
	}
}

// Neighbors returns the orthogonally adjacent in-bounds cells of c in N, E, S, W order.
// Returns nil if c itself is out of bounds.
func (g *Grid) Neighbors(c Cell) []Cell {
	if !g.InBounds(c) {
		return nil
	}
	out := make([]Cell, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		n := Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// CanStep reports whether a single step from one cell to the other is legal:
// both in bounds, orthogonally adjacent, and climbing at most MaxClimb.
func (g *Grid) CanStep(from, to Cell) bool {
	if !g.InBounds(from) || !g.InBounds(to) {
		return false
	}
	dx, dy := from.X-to.X, from.Y-to.Y
	if dx*dx+dy*dy != 1 {
		return false
	}

	return g.ElevationAt(to) <= g.ElevationAt(from)+MaxClimb
}

// Successors appends to dst the row-major indices of cells reachable from
// index i in one legal step, and returns the extended slice.
// Passing a reused dst[:0] avoids allocation in hot loops.
func (g *Grid) Successors(i int, dst []int) []int {
	x, y := i%g.Width, i/g.Width
	limit := int(g.elevations[i]) + MaxClimb
	for _, d := range g.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= g.Width || ny < 0 || ny >= g.Height {
			continue
		}
		j := g.index(nx, ny)
		if int(g.elevations[j]) <= limit {
			dst = append(dst, j)
		}
	}

	return dst
}

// Predecessors appends to dst the row-major indices of cells from which
// index i can be entered in one legal step (the reversed edge relation).
func (g *Grid) Predecessors(i int, dst []int) []int {
	x, y := i%g.Width, i/g.Width
	floor := int(g.elevations[i]) - MaxClimb
	for _, d := range g.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= g.Width || ny < 0 || ny >= g.Height {
			continue
		}
		j := g.index(nx, ny)
		if int(g.elevations[j]) >= floor {
			dst = append(dst, j)
		}
	}

	return dst
}

// CellsAtElevation yields every cell whose elevation equals e, in row-major
// order. The sequence is finite and may be ranged over any number of times.
func (g *Grid) CellsAtElevation(e int) iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for i, v := range g.elevations {
			if int(v) != e {
				continue
			}
			if !yield(g.CellAt(i)) {
				return
			}
		}
	}
}

// String renders the grid back to its text form, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height)
	for i, v := range g.elevations {
		switch i {
		case g.start:
			sb.WriteByte('S')
		case g.end:
			sb.WriteByte('E')
		default:
			sb.WriteByte('a' + v)
		}
		if (i+1)%g.Width == 0 && i+1 < len(g.elevations) {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
