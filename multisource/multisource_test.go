package multisource_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/multisource"
	"github.com/katalvlaran/hillclimb/terrain"
)

const sample = `
Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

// BestDistanceSuite runs the multi-source query on the canonical grid.
type BestDistanceSuite struct {
	suite.Suite
	grid   *terrain.Grid
	finder *climb.Finder
	// expected winner: lowest row-major candidate with distance 29
	want terrain.Cell
}

func (s *BestDistanceSuite) SetupSuite() {
	g, err := terrain.ParseString(sample)
	require.NoError(s.T(), err)
	f, err := climb.New(g)
	require.NoError(s.T(), err)
	s.grid, s.finder = g, f

	field := climb.DistanceField(g)
	for c := range multisource.Candidates(g) {
		if field[g.Index(c)] == 29 {
			s.want = c
			break
		}
	}
}

// TestSample checks the canonical answer of 29.
func (s *BestDistanceSuite) TestSample() {
	res, err := multisource.BestDistance(s.finder, multisource.Candidates(s.grid))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 29, res.Distance)
	require.Equal(s.T(), s.want, res.Source)
	require.Equal(s.T(), 6, res.Evaluated)
}

// TestNotWorseThanStart holds because 'S' is itself a candidate.
func (s *BestDistanceSuite) TestNotWorseThanStart() {
	start, err := s.finder.FromStart()
	require.NoError(s.T(), err)
	res, err := multisource.BestDistance(s.finder, multisource.Candidates(s.grid))
	require.NoError(s.T(), err)
	require.LessOrEqual(s.T(), res.Distance, start)
}

// TestConfigurationsAgree varies workers, pruning, strategy and candidate order.
func (s *BestDistanceSuite) TestConfigurationsAgree() {
	forward := slices.Collect(multisource.Candidates(s.grid))
	backward := slices.Clone(forward)
	slices.Reverse(backward)

	for _, workers := range []int{1, 2, 4, 16} {
		for _, prune := range []bool{true, false} {
			for _, st := range []climb.Strategy{climb.StrategyBFS, climb.StrategyDijkstra, climb.StrategyScan} {
				for _, cands := range [][]terrain.Cell{forward, backward} {
					name := fmt.Sprintf("workers=%d prune=%v %s", workers, prune, st)
					res, err := multisource.BestDistance(
						s.finder, slices.Values(cands),
						multisource.WithWorkers(workers),
						multisource.WithPruning(prune),
						multisource.WithStrategy(st),
					)
					require.NoError(s.T(), err, name)
					require.Equal(s.T(), 29, res.Distance, name)
					require.Equal(s.T(), s.want, res.Source, name)
					require.Equal(s.T(), len(cands), res.Evaluated, name)
					if !prune {
						require.Zero(s.T(), res.Pruned, name)
					}
				}
			}
		}
	}
}

// TestReverseAgrees compares the one-sweep answer.
func (s *BestDistanceSuite) TestReverseAgrees() {
	res, err := multisource.Reverse(s.grid, multisource.Candidates(s.grid))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 29, res.Distance)
	require.Equal(s.T(), s.want, res.Source)
	require.Equal(s.T(), 6, res.Evaluated)
}

// TestOnImprove sees strictly decreasing distances ending at the answer.
func (s *BestDistanceSuite) TestOnImprove() {
	var seen []int
	res, err := multisource.BestDistance(
		s.finder, multisource.Candidates(s.grid),
		multisource.WithOnImprove(func(_ terrain.Cell, d int) { seen = append(seen, d) }),
	)
	require.NoError(s.T(), err)
	require.NotEmpty(s.T(), seen)
	require.Equal(s.T(), 31, seen[0], "'S' is evaluated first")
	for i := 1; i < len(seen); i++ {
		require.Less(s.T(), seen[i], seen[i-1])
	}
	require.Equal(s.T(), res.Distance, seen[len(seen)-1])
}

// TestCancelled propagates context cancellation in both modes.
func (s *BestDistanceSuite) TestCancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, workers := range []int{1, 4} {
		_, err := multisource.BestDistance(
			s.finder, multisource.Candidates(s.grid),
			multisource.WithContext(ctx),
			multisource.WithWorkers(workers),
		)
		require.ErrorIs(s.T(), err, context.Canceled, "workers=%d", workers)
	}
}

// TestOutOfBoundsCandidate surfaces the search error.
func (s *BestDistanceSuite) TestOutOfBoundsCandidate() {
	cands := []terrain.Cell{s.grid.Start(), {X: 99, Y: 0}}
	_, err := multisource.BestDistance(s.finder, slices.Values(cands))
	require.ErrorIs(s.T(), err, terrain.ErrOutOfBounds)

	_, err = multisource.Reverse(s.grid, slices.Values(cands))
	require.ErrorIs(s.T(), err, terrain.ErrOutOfBounds)
}

func TestBestDistanceSuite(t *testing.T) {
	suite.Run(t, new(BestDistanceSuite))
}

//----------------------------------------------------------------------------//
// Error paths
//----------------------------------------------------------------------------//

// TestBestDistance_Errors verifies invalid inputs and options are rejected.
func TestBestDistance_Errors(t *testing.T) {
	g, err := terrain.ParseString(sample)
	require.NoError(t, err)
	f, err := climb.New(g)
	require.NoError(t, err)

	_, err = multisource.BestDistance(nil, multisource.Candidates(g))
	assert.ErrorIs(t, err, multisource.ErrNilFinder)

	_, err = multisource.BestDistance(f, multisource.Candidates(g), multisource.WithWorkers(0))
	assert.ErrorIs(t, err, multisource.ErrOptionViolation)

	_, err = multisource.BestDistance(f, nil)
	assert.ErrorIs(t, err, multisource.ErrNoCandidates)

	_, err = multisource.BestDistance(f, g.CellsAtElevation(99))
	assert.ErrorIs(t, err, multisource.ErrNoCandidates)

	_, err = multisource.BestDistance(f, multisource.Candidates(g), multisource.WithStrategy(climb.Strategy(42)))
	assert.ErrorIs(t, err, climb.ErrOptionViolation)

	_, err = multisource.Reverse(nil, multisource.Candidates(g))
	assert.ErrorIs(t, err, climb.ErrNilGrid)

	_, err = multisource.Reverse(g, g.CellsAtElevation(99))
	assert.ErrorIs(t, err, multisource.ErrNoCandidates)
}

// TestAllUnreachable fails only when no candidate reaches the destination.
func TestAllUnreachable(t *testing.T) {
	g, err := terrain.Build([]string{
		"Saaaa",
		"aaEaa",
		"aaaaa",
	})
	require.NoError(t, err)
	f, err := climb.New(g)
	require.NoError(t, err)

	for _, workers := range []int{1, 3} {
		res, err := multisource.BestDistance(f, multisource.Candidates(g), multisource.WithWorkers(workers))
		require.ErrorIs(t, err, climb.ErrUnreachable)
		require.Equal(t, 14, res.Evaluated)
		require.Equal(t, 14, res.Unreachable)
	}

	res, err := multisource.Reverse(g, multisource.Candidates(g))
	require.ErrorIs(t, err, climb.ErrUnreachable)
	require.Equal(t, 14, res.Unreachable)
}

// TestSkipsUnreachable ignores candidates that cannot climb out.
func TestSkipsUnreachable(t *testing.T) {
	// the left 'a' column is walled off by 'z'; only the right 'a' reaches E
	g, err := terrain.Build([]string{
		"SzabcdefghijklmnopqrstuvwxyE",
		"azzzzzzzzzzzzzzzzzzzzzzzzzzz",
	})
	require.NoError(t, err)
	f, err := climb.New(g)
	require.NoError(t, err)

	res, err := multisource.BestDistance(f, multisource.Candidates(g), multisource.WithWorkers(2))
	require.NoError(t, err)
	require.Equal(t, 25, res.Distance)
	require.Equal(t, terrain.Cell{X: 2, Y: 0}, res.Source)
	require.Equal(t, 3, res.Evaluated)
	require.Equal(t, 2, res.Unreachable)
}

// TestFinderBoundIsNotUnreachable separates searches cut off by a bound set
// on the Finder from candidates that have no route at all.
func TestFinderBoundIsNotUnreachable(t *testing.T) {
	g, err := terrain.ParseString(sample)
	require.NoError(t, err)

	tight, err := climb.New(g, climb.WithUpperBound(10))
	require.NoError(t, err)
	for _, workers := range []int{1, 4} {
		res, err := multisource.BestDistance(tight, multisource.Candidates(g), multisource.WithWorkers(workers))
		require.ErrorIs(t, err, climb.ErrBoundExceeded, "workers=%d", workers)
		assert.NotErrorIs(t, err, climb.ErrUnreachable)
		assert.Equal(t, 6, res.Evaluated)
		assert.Equal(t, 6, res.Pruned)
		assert.Equal(t, 0, res.Unreachable)
	}

	loose, err := climb.New(g, climb.WithUpperBound(30))
	require.NoError(t, err)
	res, err := multisource.BestDistance(loose, multisource.Candidates(g))
	require.NoError(t, err)
	assert.Equal(t, 29, res.Distance)

	// walled-off candidates are unreachable, the open one is cut off
	g, err = terrain.Build([]string{
		"SzabcdefghijklmnopqrstuvwxyE",
		"azzzzzzzzzzzzzzzzzzzzzzzzzzz",
	})
	require.NoError(t, err)
	f, err := climb.New(g, climb.WithUpperBound(5))
	require.NoError(t, err)
	res, err = multisource.BestDistance(f, multisource.Candidates(g))
	require.ErrorIs(t, err, climb.ErrBoundExceeded)
	assert.Equal(t, 2, res.Unreachable)
	assert.Equal(t, 1, res.Pruned)
}

//----------------------------------------------------------------------------//
// Random cross-check
//----------------------------------------------------------------------------//

// randomRows generates a noisy heightmap with low values, so that many
// candidates exist and some of them reach 'E'.
func randomRows(rng *rand.Rand, w, h int) []string {
	rows := make([]string, h)
	for y := range rows {
		b := make([]byte, w)
		for x := range b {
			b[x] = byte('a' + rng.Intn(4))
		}
		rows[y] = string(b)
	}
	ex, ey := rng.Intn(w), rng.Intn(h)
	sx, sy := rng.Intn(w), rng.Intn(h)
	for sx == ex && sy == ey {
		sx, sy = rng.Intn(w), rng.Intn(h)
	}
	r := []byte(rows[ey])
	r[ex] = 'E'
	rows[ey] = string(r)
	r = []byte(rows[sy])
	r[sx] = 'S'
	rows[sy] = string(r)

	// ring E with a ramp so it is usually reachable
	for _, d := range [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		x, y := ex+d[0], ey+d[1]
		if x < 0 || y < 0 || x >= w || y >= h || (x == sx && y == sy) {
			continue
		}
		if rng.Intn(3) == 0 {
			r := []byte(rows[y])
			r[x] = 'z'
			rows[y] = string(r)
		}
	}

	return rows
}

// TestRandom_MatchesReverse compares parallel BestDistance against Reverse.
func TestRandom_MatchesReverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 60; round++ {
		rows := randomRows(rng, 3+rng.Intn(10), 2+rng.Intn(8))
		g, err := terrain.Build(rows)
		require.NoError(t, err)
		f, err := climb.New(g)
		require.NoError(t, err)

		want, wantErr := multisource.Reverse(g, multisource.Candidates(g))
		got, gotErr := multisource.BestDistance(f, multisource.Candidates(g), multisource.WithWorkers(3))

		name := fmt.Sprintf("round %d\n%s", round, g)
		if wantErr != nil {
			require.True(t, errors.Is(wantErr, climb.ErrUnreachable), name)
			require.ErrorIs(t, gotErr, climb.ErrUnreachable, name)
			continue
		}
		require.NoError(t, gotErr, name)
		require.Equal(t, want.Distance, got.Distance, name)
		require.Equal(t, want.Source, got.Source, name)
	}
}
