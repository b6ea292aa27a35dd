// Package hillclimb finds the fewest steps across a letter heightmap,
// where every step may climb at most one level and descend any amount.
//
// 🚀 What is hillclimb?
//
//	A small, zero-surprise library plus CLI that brings together:
//		• terrain:     parse 'a'..'z' / 'S' / 'E' text into an immutable grid
//		• climb:       single-source search (BFS, heap Dijkstra, linear scan)
//		• multisource: best distance over every lowest cell, optionally in parallel
//
// ✨ Why hillclimb?
//
//   - Explicit outcomes: an unreachable destination is ErrUnreachable, never a magic number
//   - Safe sharing: grids are read-only; each search owns its state
//   - Extensible: hooks (OnSettle, OnRelax, OnImprove) for tracing and tests
//
// Under the hood:
//
//	terrain/        Grid, Cell, FormatError, elevation table, adjacency
//	climb/          Finder, strategies, upper-bound pruning, DistanceField
//	multisource/    BestDistance, Reverse, Candidates
//	cmd/hillclimb/  command-line driver (config, logging)
//
// Quick ASCII example:
//
//	Sabqponm
//	abcryxxl
//	accszExk      from S: 31 steps
//	acctuvwj      from the best 'a': 29 steps
//	abdefghi
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
package hillclimb
