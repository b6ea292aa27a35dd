// Package terrain parses a letter heightmap into an immutable elevation grid.
//
// What:
//
//   - Build / Parse / ParseString validate the text and produce a *Grid.
//   - ElevationAt, MarkerAt, Start, End answer per-cell queries.
//   - Neighbors and CanStep describe orthogonal adjacency and the climb rule.
//   - Successors / Predecessors expose the implicit directed edge relation
//     over row-major indices for search code.
//   - CellsAtElevation lazily enumerates candidate cells (iter.Seq).
//
// Why:
//
//   - Search code never touches characters: elevations are decoded once
//     through a fixed lookup table and stored row-major.
//   - The grid is read-only after construction, so any number of searches
//     may share it across goroutines without locking.
//
// Complexity:
//
//   - Build:            O(W×H) time and memory.
//   - Neighbors/CanStep/Successors/Predecessors: O(1).
//   - CellsAtElevation: O(W×H) per full iteration.
//
// Errors:
//
//   - *FormatError wrapping one of:
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownRune:    a character other than 'a'..'z', 'S', 'E'.
//   - ErrMarkerCount:    not exactly one 'S' and one 'E'.
//   - ErrOutOfBounds: returned by callers (e.g. climb) when a cell lies outside the grid.
package terrain
