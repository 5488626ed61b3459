package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathfinder/resolve"
)

var batchFlags struct {
	workers  int
	maxSteps int
	format   string
}

var batchCmd = &cobra.Command{
	Use:   "batch FILE...",
	Short: "Solve several labyrinths concurrently",
	Long: `Solves every FILE on its own goroutine (at most --workers at a time) and
prints one summary line per file in argument order. Exit status 2 means at least
one labyrinth has no route.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workers, maxSteps, format := cfg.Workers, cfg.MaxSteps, cfg.Format
		if cmd.Flags().Changed("workers") {
			workers = batchFlags.workers
		}
		if cmd.Flags().Changed("max-steps") {
			maxSteps = batchFlags.maxSteps
		}
		if cmd.Flags().Changed("format") {
			format = batchFlags.format
		}
		return runBatch(cmd.Context(), args, format, maxSteps, workers, cmd.OutOrStdout())
	},
}

func init() {
	batchCmd.Flags().IntVarP(&batchFlags.workers, "workers", "j", 4, "concurrent resolutions (0 = one per file)")
	batchCmd.Flags().IntVar(&batchFlags.maxSteps, "max-steps", 0, "give up after N steps (0 = unlimited)")
	batchCmd.Flags().StringVar(&batchFlags.format, "format", formatAuto, "input format: text, yaml or auto")
}

// batchOutcome is the summary of one file.
type batchOutcome struct {
	length int
	steps  int
	reason resolve.Reason
	err    error
}

func (o batchOutcome) String() string {
	switch {
	case o.err != nil:
		return "error: " + o.err.Error()
	case o.length == 0:
		return fmt.Sprintf("no solution (%s) after %d step(s)", o.reason, o.steps)
	}
	return fmt.Sprintf("length %d in %d step(s)", o.length, o.steps)
}

func runBatch(ctx context.Context, paths []string, format string, maxSteps, workers int, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	outcomes := make([]batchOutcome, len(paths))

	eg, egCtx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, p := range paths {
		i, p := i, p
		eg.Go(func() error {
			o, err := solveOne(egCtx, p, format, maxSteps)
			if err != nil {
				return err
			}
			outcomes[i] = o
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	failed, unsolved := 0, 0
	for i, o := range outcomes {
		fmt.Fprintf(out, "%s: %s\n", paths[i], o)
		switch {
		case o.err != nil:
			failed++
		case o.length == 0:
			unsolved++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) could not be solved", failed, len(paths))
	}
	if unsolved > 0 {
		return fmt.Errorf("%w: %d of %d labyrinth(s)", errNoSolution, unsolved, len(paths))
	}
	return nil
}

// solveOne resolves one file. Per-file problems land in the outcome; only
// cancellation is returned as an error so it stops the whole batch.
func solveOne(ctx context.Context, path, format string, maxSteps int) (batchOutcome, error) {
	g, t, err := loadPuzzle(path, format)
	if err != nil {
		return batchOutcome{err: err}, nil
	}
	res, err := resolve.Resolve(g, t,
		resolve.WithContext(ctx),
		resolve.WithMaxSteps(maxSteps),
		resolve.WithLogger(logger.With(zap.String("file", path))))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return batchOutcome{}, err
		}
		return batchOutcome{err: err}, nil
	}
	o := batchOutcome{steps: res.Steps, reason: res.Reason}
	if res.Succeeded() {
		o.length = res.Path.Len()
	}
	return o, nil
}
