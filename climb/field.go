package climb

import "github.com/katalvlaran/hillclimb/terrain"

// DistanceField returns, for every row-major cell index, the fewest steps
// from that cell to the grid's end cell, or NoPath if none exists.
//
// It runs a single breadth-first search backwards from the destination over
// the reversed edge relation (terrain.Grid.Predecessors), so the whole
// field costs O(V + E), the same as one forward search.
func DistanceField(g *terrain.Grid) []int {
	if g == nil {
		return nil
	}
	n := g.Len()
	field := make([]int, n)
	for i := range field {
		field[i] = NoPath
	}

	end := g.Index(g.End())
	field[end] = 0
	queue := make([]int, 0, n)
	queue = append(queue, end)
	buf := make([]int, 0, 4)

	for head := 0; head < len(queue); head++ {
		v := queue[head]
		buf = g.Predecessors(v, buf[:0])
		for _, u := range buf {
			if field[u] != NoPath {
				continue
			}
			field[u] = field[v] + 1
			queue = append(queue, u)
		}
	}

	return field
}
