package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/bounded-gol/model"
	"github.com/sheikhrachel/bounded-gol/utils"
)

const (
	stopCompleted  = "completed"
	stopExtinction = "extinction"
	stopStagnation = "stagnation detected"
)

// demoCells is the starting shape of the classic 5x5 demo
var demoCells = []model.Cell{
	{Row: 2, Col: 2},
	{Row: 2, Col: 3},
	{Row: 2, Col: 4},
	{Row: 3, Col: 4},
}

// initializeGame builds and seeds the grid described by config
func initializeGame(config utils.Config) (*model.Grid, error) {
	var opts []model.Option
	if config.StrictColumns {
		opts = append(opts, model.WithColumnBound(model.ColumnBoundWidth))
	}

	grid, err := model.NewGrid(config.Width, config.Height, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create grid")
	}
	if err = seedGrid(grid, config); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to seed grid")
	}
	return grid, nil
}

// seedGrid places the configured pattern followed by any explicit cells
func seedGrid(grid *model.Grid, config utils.Config) error {
	var err error
	switch config.Pattern {
	case utils.PatternDemo:
		err = grid.ApplyCells(demoCells)
	case utils.PatternGlider:
		err = grid.AddGlider(1, 1)
	case utils.PatternBlinker:
		err = grid.AddBlinker(centre(grid.Height(), 1), centre(grid.Width(), 3))
	case utils.PatternBlock:
		err = grid.AddBlock(centre(grid.Height(), 2), centre(grid.Width(), 2))
	case utils.PatternRandom:
		grid.Randomize(rand.New(rand.NewPCG(uint64(config.Seed), 0)), config.RandomDensity)
	case utils.PatternNone:
	default:
		err = errors.Wrapf(utils.ErrInvalidConfig, "[seedGrid] unknown pattern %q", config.Pattern)
	}
	if err != nil {
		return err
	}
	return grid.ApplyCells(config.Cells)
}

// centre returns the 1-based start offset that centres span cells in size
func centre(size, span int) int {
	return max(1, (size-span)/2+1)
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(w, "Grid: %dx%d | Pattern: %s | Initial living cells: %d\n",
		grid.Width(), grid.Height(), config.Pattern, grid.CountLivingCells())
	fmt.Fprintf(w, "Generations: %d | Stop on stagnation: %v\n",
		config.Generations, config.StopOnStagnation)
	fmt.Fprintln(w)
}

// checkStopConditions determines if the run should end early
func checkStopConditions(livingCells int, isStagnant bool, config utils.Config) (bool, string) {
	if !config.StopOnStagnation {
		return false, ""
	}
	if livingCells == 0 {
		return true, stopExtinction
	}
	if isStagnant {
		return true, stopStagnation
	}
	return false, ""
}

// simulate publishes the initial state and then one state per generation.
// It returns why the run ended.
func simulate(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	stats *utils.Stats,
	states chan<- string,
) (string, error) {
	if err := publish(ctx, states, grid.String()); err != nil {
		return "", err
	}

	var history model.History
	for generation := 1; generation <= config.Generations; generation++ {
		frameStart := time.Now()

		history.Update(grid)
		grid.NextGeneration()

		livingCells := grid.CountLivingCells()
		stats.Update(generation, livingCells, time.Since(frameStart))

		if err := publish(ctx, states, grid.String()); err != nil {
			return "", err
		}

		if stop, reason := checkStopConditions(livingCells, history.IsStagnant(grid), config); stop {
			return reason, nil
		}

		if config.FrameRate > 0 && generation < config.Generations {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(config.FrameRate):
			}
		}
	}
	return stopCompleted, nil
}

func publish(ctx context.Context, states chan<- string, state string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case states <- state:
		return nil
	}
}

// render displays every published state until the channel is closed
func render(renderer *model.TerminalRenderer, states <-chan string) error {
	first := true
	for state := range states {
		if err := renderer.Display(state, first); err != nil {
			return err
		}
		first = false
	}
	return nil
}

// displayFinalStats shows the summary printed after the run
func displayFinalStats(w io.Writer, reason string, stats *utils.Stats) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Stopped: %s\n", reason)
	fmt.Fprintf(w, "Final stats: %d generations in %.3f seconds | Living: %d | Avg Pop: %.1f\n",
		stats.TotalGenerations, stats.Runtime().Seconds(), stats.Population, stats.AveragePopulation)
	fmt.Fprintf(w, "Performance: %.1f gen/sec\n", stats.GenerationsPerSecond)
}
