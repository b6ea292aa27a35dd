// Package multisource answers "what is the shortest climb to 'E' from any
// of these cells?" by running climb searches over a set of candidates and
// reducing to the global minimum finite distance.
//
// Candidates that cannot reach the destination are skipped, not fatal; the
// query fails only when every candidate is unreachable. Searches may run
// sequentially or fan out over a bounded number of goroutines; the result
// does not depend on candidate order or worker count.
package multisource

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/terrain"
)

// Candidates yields every lowest-elevation cell of g ('S' and every 'a').
func Candidates(g *terrain.Grid) iter.Seq[terrain.Cell] {
	return g.CellsAtElevation(terrain.MinElevation)
}

// BestDistance returns the minimum distance to the destination over all
// candidates, searching each with f.
//
// Returns:
//   - (Result, nil) with the best distance and its source;
//   - ErrNilFinder, ErrOptionViolation for invalid input;
//   - ErrNoCandidates if candidates is nil or yields nothing;
//   - an error wrapping climb.ErrUnreachable if no candidate reaches 'E'
//     (the Result still carries the counters);
//   - an error wrapping climb.ErrBoundExceeded if no candidate finished and
//     at least one was cut off by an upper bound set on f;
//   - the first search error otherwise (cancellation, out-of-bounds cell).
//
// With pruning enabled each search receives an upper bound of best+1, so a
// candidate is abandoned once it can no longer match or beat the best so far.
// Matching is still explored so that ties always resolve to the lowest
// row-major index, whatever the evaluation order.
func BestDistance(f *climb.Finder, candidates iter.Seq[terrain.Cell], opts ...Option) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFinder
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if candidates == nil {
		return Result{}, ErrNoCandidates
	}

	r := &reducer{finder: f, grid: f.Grid(), opts: o}
	r.bound.Store(int64(climb.Infinity))

	var (
		n   int
		err error
	)
	if o.Workers == 1 {
		n, err = r.sequential(candidates)
	} else {
		n, err = r.parallel(candidates)
	}
	if err != nil {
		return Result{}, err
	}

	return r.finish(n)
}

// Reverse answers the same query as BestDistance with one reverse sweep
// (climb.DistanceField) instead of one search per candidate.
func Reverse(g *terrain.Grid, candidates iter.Seq[terrain.Cell]) (Result, error) {
	if g == nil {
		return Result{}, climb.ErrNilGrid
	}
	if candidates == nil {
		return Result{}, ErrNoCandidates
	}

	field := climb.DistanceField(g)
	r := &reducer{grid: g, opts: DefaultOptions()}
	n := 0
	for c := range candidates {
		n++
		if !g.InBounds(c) {
			return Result{}, fmt.Errorf("%w: candidate %v", terrain.ErrOutOfBounds, c)
		}
		r.res.Evaluated++
		d := field[g.Index(c)]
		if d == climb.NoPath {
			r.res.Unreachable++
			continue
		}
		r.offer(c, d)
	}

	return r.finish(n)
}

// reducer accumulates the min-reduction across candidate searches.
// bound mirrors res.Distance for lock-free reads by workers; res and found
// are guarded by mu.
type reducer struct {
	finder *climb.Finder
	grid   *terrain.Grid
	opts   Options
	bound  atomic.Int64

	mu    sync.Mutex
	res   Result
	found bool
}

// sequential evaluates candidates one at a time in sequence order.
func (r *reducer) sequential(candidates iter.Seq[terrain.Cell]) (int, error) {
	n := 0
	for c := range candidates {
		n++
		if err := r.evaluate(r.opts.Ctx, c); err != nil {
			return n, err
		}
	}

	return n, nil
}

// parallel fans candidates out to at most opts.Workers goroutines.
// The first error cancels the remaining searches.
func (r *reducer) parallel(candidates iter.Seq[terrain.Cell]) (int, error) {
	g, gctx := errgroup.WithContext(r.opts.Ctx)
	g.SetLimit(r.opts.Workers)

	n := 0
	for c := range candidates {
		if gctx.Err() != nil {
			break
		}
		n++
		g.Go(func() error {
			return r.evaluate(gctx, c)
		})
	}

	if err := g.Wait(); err != nil {
		return n, err
	}

	// the loop may have stopped on a parent cancellation before any search failed
	return n, r.opts.Ctx.Err()
}

// evaluate searches from c and folds the outcome into the result.
func (r *reducer) evaluate(ctx context.Context, c terrain.Cell) error {
	callOpts := []climb.Option{
		climb.WithContext(ctx),
		climb.WithStrategy(r.opts.Strategy),
	}
	if r.opts.Prune {
		if b := r.bound.Load(); b != int64(climb.Infinity) {
			callOpts = append(callOpts, climb.WithUpperBound(int(b)+1))
		}
	}

	d, err := r.finder.FindDistance(c, callOpts...)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.res.Evaluated++
	switch {
	case errors.Is(err, climb.ErrUnreachable):
		r.res.Unreachable++
	case errors.Is(err, climb.ErrBoundExceeded):
		r.res.Pruned++
	case err != nil:
		return fmt.Errorf("multisource: candidate %v: %w", c, err)
	default:
		r.offer(c, d)
	}

	return nil
}

// offer records (c, d) if it beats the current best, or ties it from a
// lower row-major index. Callers must hold mu when running concurrently.
func (r *reducer) offer(c terrain.Cell, d int) {
	if r.found {
		if d > r.res.Distance {
			return
		}
		if d == r.res.Distance && r.grid.Index(c) >= r.grid.Index(r.res.Source) {
			return
		}
	}
	improved := !r.found || d < r.res.Distance
	r.found = true
	r.res.Distance = d
	r.res.Source = c
	r.bound.Store(int64(d))
	if improved {
		r.opts.OnImprove(c, d)
	}
}

// finish converts the accumulated state into the public outcome.
func (r *reducer) finish(n int) (Result, error) {
	if n == 0 {
		return Result{}, ErrNoCandidates
	}
	switch {
	case r.found:
	case r.res.Pruned > 0:
		// a bound the caller put on the Finder cut searches short; some of
		// them may still have a route
		return r.res, fmt.Errorf("%w: %d of %d candidates cut off, %d unreachable",
			climb.ErrBoundExceeded, r.res.Pruned, n, r.res.Unreachable)
	default:
		return r.res, fmt.Errorf("%w: none of %d candidates reach the destination", climb.ErrUnreachable, n)
	}

	return r.res, nil
}
