// Package multisource defines options, results and sentinel errors for the
// minimum-over-candidates distance query.
package multisource

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/terrain"
)

var (
	// ErrNilFinder is returned if a nil *climb.Finder is passed.
	ErrNilFinder = errors.New("multisource: finder is nil")

	// ErrNoCandidates is returned when the candidate sequence yields nothing.
	ErrNoCandidates = errors.New("multisource: no candidate sources")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("multisource: invalid option supplied")
)

// Result summarizes a multi-source query.
//
//   - Distance:    the minimum finite distance over all candidates.
//   - Source:      the candidate achieving it (lowest row-major index on ties).
//   - Evaluated:   candidates searched.
//   - Unreachable: candidates with no route to the destination.
//   - Pruned:      candidates abandoned because they could not beat the best so far.
type Result struct {
	Distance    int
	Source      terrain.Cell
	Evaluated   int
	Unreachable int
	Pruned      int
}

// Option configures BestDistance via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for BestDistance.
type Options struct {
	// Ctx allows cancellation and deadlines; it is forwarded to every search.
	Ctx context.Context

	// Workers is the number of concurrent searches. 1 runs sequentially.
	Workers int

	// Prune passes the best distance found so far as an upper bound to
	// each later search so hopeless candidates stop early.
	Prune bool

	// Strategy is forwarded to climb for every candidate search.
	Strategy climb.Strategy

	// OnImprove is called whenever a strictly better distance is found.
	// With Workers > 1 it is called from worker goroutines, serialized.
	OnImprove func(c terrain.Cell, dist int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with defaults:
//   - context.Background()
//   - Workers = 1 (sequential)
//   - Prune = true
//   - climb.StrategyBFS
//   - no-op OnImprove
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   1,
		Prune:     true,
		Strategy:  climb.StrategyBFS,
		OnImprove: func(terrain.Cell, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of concurrent searches.
//
//	n ≥ 1: run at most n searches at once
//	n < 1: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithPruning toggles upper-bound pruning.
func WithPruning(on bool) Option {
	return func(o *Options) {
		o.Prune = on
	}
}

// WithStrategy selects the climb strategy used for each candidate.
func WithStrategy(s climb.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithOnImprove registers a callback run on each new best distance.
func WithOnImprove(fn func(c terrain.Cell, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}
