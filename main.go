package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/bounded-gol/model"
	"github.com/sheikhrachel/bounded-gol/utils"
)

const configFile = "config.json"

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("%+v", err)
	}
}

// run loads the configuration, steps the grid and prints every generation
func run(args []string) error {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return errors.Wrap(err, "[run] failed to load configuration")
		}
		config = utils.DefaultConfig()
	}

	fs := flag.NewFlagSet("bounded-gol", flag.ContinueOnError)
	config.Bind(fs)
	if err = fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return errors.Wrap(err, "[run] failed to parse flags")
	}

	if err = config.Validate(); err != nil {
		return err
	}

	grid, err := initializeGame(config)
	if err != nil {
		return err
	}
	displayGameInfo(os.Stdout, config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		renderer = model.NewTerminalRenderer(config.ClearScreen)
		stats    = utils.NewStats()
		states   = make(chan string)
		reason   string
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer close(states)
		var err error
		reason, err = simulate(ctx, config, grid, stats, states)
		return err
	})
	eg.Go(func() error {
		return render(renderer, states)
	})

	if err = eg.Wait(); err != nil {
		if !errors.Is(err, context.Canceled) {
			return errors.Wrap(err, "[run] simulation failed")
		}
		fmt.Println("\nShutting down gracefully...")
		reason = "interrupted"
	}

	displayFinalStats(os.Stdout, reason, stats)
	return nil
}
