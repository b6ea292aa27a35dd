// Package multisource reduces many single-source climb searches to the
// single best distance to the destination.
//
// What
//
//   - BestDistance(f, candidates, opts...) searches from every candidate
//     with a *climb.Finder and keeps the minimum finite distance.
//   - Candidates(g) yields the lowest-elevation cells ('S' and every 'a').
//   - Reverse(g, candidates) answers the same query with one reverse sweep;
//     it is the cheap path for large grids and a cross-check for the first.
//
// Options
//
//   - WithWorkers(n):   run up to n searches concurrently (errgroup, SetLimit).
//   - WithPruning(bool): bound later searches by the best so far (default on).
//   - WithStrategy(s):  forward a climb.Strategy to every search.
//   - WithContext(ctx): cancel outstanding searches.
//   - WithOnImprove(fn): observe each new best distance.
//
// Concurrency
//
//	Every search owns its distance and visited state and reads a shared,
//	immutable grid. The best distance is published through an atomic for
//	pruning and folded into the Result under a mutex, so the reported
//	minimum and its source are identical for any worker count.
//
// Errors
//
//   - ErrNilFinder, ErrOptionViolation, ErrNoCandidates.
//   - climb.ErrUnreachable (wrapped) when every candidate is unreachable.
//   - The first failing search's error (cancellation, terrain.ErrOutOfBounds).
package multisource
