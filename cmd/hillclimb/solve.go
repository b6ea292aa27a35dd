package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/multisource"
	"github.com/katalvlaran/hillclimb/terrain"
)

// outcome is a distance or the explicit absence of one.
type outcome struct {
	Distance  int
	Reachable bool
}

func (o outcome) String() string {
	if !o.Reachable {
		return "unreachable"
	}
	return strconv.Itoa(o.Distance)
}

// answers holds the two results: from 'S', and best over all lowest cells.
type answers struct {
	Start outcome
	Best  outcome
}

// toOutcome folds climb.ErrUnreachable into an outcome; other errors pass through.
func toOutcome(d int, err error) (outcome, error) {
	switch {
	case errors.Is(err, climb.ErrUnreachable):
		return outcome{}, nil
	case err != nil:
		return outcome{}, err
	default:
		return outcome{Distance: d, Reachable: true}, nil
	}
}

func solveInput(ctx context.Context, c Config, in io.Reader) (answers, error) {
	g, err := terrain.Parse(in)
	if err != nil {
		return answers{}, err
	}
	log.WithFields(logrus.Fields{
		"width":  g.Width,
		"height": g.Height,
		"start":  g.Start().String(),
		"end":    g.End().String(),
	}).Info("heightmap loaded")

	return solve(ctx, c, g)
}

// solve runs the start search and the multi-source search concurrently.
func solve(ctx context.Context, c Config, g *terrain.Grid) (answers, error) {
	st, err := climb.ParseStrategy(c.Strategy)
	if err != nil {
		return answers{}, err
	}
	f, err := climb.New(g, climb.WithStrategy(st))
	if err != nil {
		return answers{}, err
	}

	var ans answers
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		began := time.Now()
		o, err := toOutcome(f.FromStart(climb.WithContext(egCtx)))
		if err != nil {
			return fmt.Errorf("search from start: %w", err)
		}
		ans.Start = o
		log.WithFields(logrus.Fields{
			"strategy": st.String(),
			"result":   o.String(),
			"elapsed":  time.Since(began).String(),
		}).Info("start search finished")
		return nil
	})
	eg.Go(func() error {
		began := time.Now()
		res, err := bestDistance(egCtx, c, f)
		o, err := toOutcome(res.Distance, err)
		if err != nil {
			return fmt.Errorf("multi-source search: %w", err)
		}
		ans.Best = o
		log.WithFields(logrus.Fields{
			"mode":        c.MultiSource,
			"result":      o.String(),
			"source":      res.Source.String(),
			"evaluated":   res.Evaluated,
			"unreachable": res.Unreachable,
			"pruned":      res.Pruned,
			"elapsed":     time.Since(began).String(),
		}).Info("multi-source search finished")
		return nil
	})
	if err := eg.Wait(); err != nil {
		return answers{}, err
	}

	if c.Verify {
		if err := verify(g, ans); err != nil {
			return answers{}, err
		}
		log.Debug("answers verified against reverse sweep")
	}

	return ans, nil
}

func bestDistance(ctx context.Context, c Config, f *climb.Finder) (multisource.Result, error) {
	g := f.Grid()
	if c.MultiSource == modeReverse {
		return multisource.Reverse(g, multisource.Candidates(g))
	}
	st, err := climb.ParseStrategy(c.Strategy)
	if err != nil {
		return multisource.Result{}, err
	}

	return multisource.BestDistance(f, multisource.Candidates(g),
		multisource.WithContext(ctx),
		multisource.WithWorkers(c.Workers),
		multisource.WithPruning(c.Prune),
		multisource.WithStrategy(st),
		multisource.WithOnImprove(func(cell terrain.Cell, d int) {
			log.WithFields(logrus.Fields{
				"source":   cell.String(),
				"distance": d,
			}).Debug("new best path found")
		}),
	)
}

// verify recomputes both answers from one reverse sweep and compares.
func verify(g *terrain.Grid, ans answers) error {
	field := climb.DistanceField(g)
	want := outcome{}
	if d := field[g.Index(g.Start())]; d != climb.NoPath {
		want = outcome{Distance: d, Reachable: true}
	}
	if want != ans.Start {
		return fmt.Errorf("verify: start distance %s, reverse sweep says %s", ans.Start, want)
	}

	o, err := toOutcome(func() (int, error) {
		res, err := multisource.Reverse(g, multisource.Candidates(g))
		return res.Distance, err
	}())
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	if o != ans.Best {
		return fmt.Errorf("verify: best distance %s, reverse sweep says %s", ans.Best, o)
	}

	return nil
}
