// Package climb computes the fewest unit steps from a source cell to the
// destination of a terrain.Grid, where a step may climb at most one
// elevation level and may descend any amount.
//
// Every search owns its distance and visited arrays; nothing is shared
// between calls except the read-only grid, so a Finder is safe for
// concurrent use.
package climb

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hillclimb/terrain"
)

// Finder runs constrained shortest-path searches toward the grid's 'E' cell.
type Finder struct {
	grid *terrain.Grid
	opts []Option
}

// New returns a Finder over g. The options become defaults for every
// FindDistance call and are validated immediately.
func New(g *terrain.Grid, opts ...Option) (*Finder, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Finder{grid: g, opts: opts}, nil
}

// Grid returns the grid the Finder searches.
func (f *Finder) Grid() *terrain.Grid { return f.grid }

// FromStart is FindDistance from the grid's 'S' cell.
func (f *Finder) FromStart(opts ...Option) (int, error) {
	return f.FindDistance(f.grid.Start(), opts...)
}

// FindDistance returns the fewest steps from source to the grid's end cell.
// Per-call options are applied after the Finder's defaults.
//
// Returns:
//   - (d, nil) on success;
//   - ErrUnreachable if no legal route exists;
//   - ErrBoundExceeded if the UpperBound cut the search short;
//   - terrain.ErrOutOfBounds for a source outside the grid;
//   - ErrOptionViolation for bad options, ctx.Err() on cancellation,
//     or a wrapped OnSettle error.
//
// The distance is meaningful only when err == nil.
func (f *Finder) FindDistance(source terrain.Cell, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range f.opts {
		opt(&o)
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if !f.grid.InBounds(source) {
		return 0, fmt.Errorf("%w: source %v", terrain.ErrOutOfBounds, source)
	}

	s := newSearch(f.grid, o, f.grid.Index(source))
	switch o.Strategy {
	case StrategyDijkstra:
		return s.dijkstra()
	case StrategyScan:
		return s.scan()
	default:
		return s.bfs()
	}
}

// search encapsulates the mutable state of one FindDistance call.
type search struct {
	grid    *terrain.Grid
	opts    Options
	ctx     context.Context
	source  int
	target  int
	dist    []int  // best-known distance from source; Infinity if unreached
	visited []bool // true once dist is final
	buf     []int  // reused successor buffer
}

// newSearch allocates fresh per-call state sized to the grid.
func newSearch(g *terrain.Grid, o Options, source int) *search {
	n := g.Len()
	s := &search{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		source:  source,
		target:  g.Index(g.End()),
		dist:    make([]int, n),
		visited: make([]bool, n),
		buf:     make([]int, 0, 4),
	}
	for i := range s.dist {
		s.dist[i] = Infinity
	}

	return s
}

// cancelled reports a pending context error, if any.
func (s *search) cancelled() error {
	select {
	case <-s.ctx.Done():
		return s.ctx.Err()
	default:
		return nil
	}
}

// lower sets dist[v] = d if d improves on it and reports whether it did.
func (s *search) lower(v, d int) bool {
	old := s.dist[v]
	if d >= old {
		return false
	}
	s.dist[v] = d
	s.opts.OnRelax(s.grid.CellAt(v), old, d)

	return true
}

// settle finalizes u. It returns done=true with the answer when u is the
// destination, and ErrBoundExceeded when u's distance reaches the bound.
func (s *search) settle(u int) (done bool, err error) {
	d := s.dist[u]
	if d >= s.opts.UpperBound {
		return true, fmt.Errorf("%w: next distance %d ≥ bound %d", ErrBoundExceeded, d, s.opts.UpperBound)
	}
	s.visited[u] = true
	if err := s.opts.OnSettle(s.grid.CellAt(u), d); err != nil {
		return true, fmt.Errorf("climb: OnSettle error at %v: %w", s.grid.CellAt(u), err)
	}

	return u == s.target, nil
}

// successors returns the unvisited cells one legal step away from u.
// The returned slice is only valid until the next call.
func (s *search) successors(u int) []int {
	s.buf = s.grid.Successors(u, s.buf[:0])
	out := s.buf[:0]
	for _, v := range s.buf {
		if !s.visited[v] {
			out = append(out, v)
		}
	}

	return out
}
