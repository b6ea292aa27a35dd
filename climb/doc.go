// Package climb provides the constrained shortest-path search over a
// terrain.Grid: fewest unit steps from a source to the 'E' cell, where each
// step climbs at most one elevation level and may descend freely.
//
// What
//
//   - Finder.FindDistance(source, opts...) returns a finite distance, or one
//     of the explicit outcomes ErrUnreachable / ErrBoundExceeded. A missing
//     route is never encoded as a number.
//   - Three interchangeable strategies, all returning identical distances:
//   - StrategyBFS      FIFO queue (default)
//   - StrategyDijkstra binary heap, lazy decrease-key
//   - StrategyScan     linear scan for the minimum unvisited cell
//   - DistanceField(g) computes every cell's distance to 'E' with one
//     reverse search.
//
// Invariants
//
//   - Tentative distances only decrease (observable via WithOnRelax).
//   - Each cell is settled at most once; a settled distance is final
//     (observable via WithOnSettle).
//   - Each iteration settles one cell or discards a stale entry, and the
//     grid is finite, so every search terminates.
//   - Distance and visited state live only for the duration of one call.
//
// Upper bound
//
//	WithUpperBound(n) abandons the search as soon as the smallest unvisited
//	distance is ≥ n: the true distance, if any, cannot beat n. Multi-source
//	callers pass their best-so-far to skip hopeless candidates.
//
// Complexity (V = W×H cells, E ≤ 4V edges)
//
//   - BFS:      O(V + E) time, O(V) memory
//   - Dijkstra: O((V + E) log V) time, O(V + E) memory
//   - Scan:     O(V²) time, O(V) memory
//
// Usage
//
//	f, err := climb.New(grid)
//	if err != nil {
//		// ErrNilGrid or ErrOptionViolation
//	}
//	d, err := f.FromStart()
//	switch {
//	case errors.Is(err, climb.ErrUnreachable):
//		// no route
//	case err != nil:
//		// bad input, cancellation or hook error
//	default:
//		fmt.Println(d)
//	}
//
// Errors
//
//   - ErrNilGrid          if the grid pointer is nil.
//   - ErrOptionViolation  for an unknown strategy or a negative bound.
//   - ErrUnreachable      when the destination cannot be reached.
//   - ErrBoundExceeded    when WithUpperBound cut the search short.
//   - terrain.ErrOutOfBounds for a source outside the grid.
//   - Context errors and wrapped OnSettle errors.
package climb
