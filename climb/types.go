// Package climb defines options, strategies and sentinel errors for the
// constrained shortest-path search over a terrain.Grid.
package climb

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/hillclimb/terrain"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("climb: grid is nil")

	// ErrUnreachable reports that the destination cannot be reached from the
	// source under the climb constraint. It is an expected outcome, not a fault.
	ErrUnreachable = errors.New("climb: destination unreachable")

	// ErrBoundExceeded reports that the search was abandoned because every
	// remaining tentative distance met or exceeded the caller's upper bound.
	ErrBoundExceeded = errors.New("climb: upper bound reached before destination")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("climb: invalid option supplied")
)

// Infinity is the tentative distance of a cell that has not been reached yet,
// and the default (absent) upper bound.
const Infinity = math.MaxInt

// NoPath marks a cell with no route to the destination in a DistanceField.
const NoPath = -1

// Strategy selects the frontier discipline used by FindDistance.
// All strategies return identical distances; they differ only in cost.
type Strategy int

const (
	// StrategyBFS uses a FIFO queue. O(V + E). Default.
	StrategyBFS Strategy = iota
	// StrategyDijkstra uses a binary heap with lazy decrease-key. O((V + E) log V).
	StrategyDijkstra
	// StrategyScan selects the next cell by scanning every unvisited cell. O(V²).
	StrategyScan
)

var strategyNames = [...]string{
	StrategyBFS:      "bfs",
	StrategyDijkstra: "dijkstra",
	StrategyScan:     "scan",
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// ParseStrategy maps a name ("bfs", "dijkstra", "scan") to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(name, n) {
			return Strategy(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, name)
}

// Option configures a search via functional arguments.
// Invalid Options are recorded internally and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy selects BFS, Dijkstra or Scan.
	Strategy Strategy

	// UpperBound abandons the search with ErrBoundExceeded once the smallest
	// unvisited tentative distance is ≥ UpperBound. Infinity disables it.
	UpperBound int

	// OnSettle is called exactly once per cell when its distance becomes final.
	// If it returns an error, the search aborts and propagates that error.
	OnSettle func(c terrain.Cell, dist int) error

	// OnRelax is called every time a cell's tentative distance decreases,
	// including the source's initial assignment (old == Infinity).
	OnRelax func(c terrain.Cell, old, dist int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - StrategyBFS
//   - no upper bound (Infinity)
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Strategy:   StrategyBFS,
		UpperBound: Infinity,
		OnSettle:   func(terrain.Cell, int) error { return nil },
		OnRelax:    func(terrain.Cell, int, int) {},
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

// WithStrategy selects the search strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s < StrategyBFS || s > StrategyScan {
			o.err = fmt.Errorf("%w: unknown strategy %d", ErrOptionViolation, int(s))
			return
		}
		o.Strategy = s
	}
}

// WithUpperBound abandons searches that cannot finish below n.
//
//	n ≥ 0:    searches whose next distance would be ≥ n fail with ErrBoundExceeded
//	Infinity: explicit "no bound"
//	n < 0:    invalid option → ErrOptionViolation
func WithUpperBound(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: UpperBound cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.UpperBound = n
	}
}

// WithOnSettle registers a callback run when a cell's distance is finalized;
// returning an error from it stops the search.
func WithOnSettle(fn func(c terrain.Cell, dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback run whenever a tentative distance decreases.
func WithOnRelax(fn func(c terrain.Cell, old, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
