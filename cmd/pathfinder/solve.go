package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/codec"
	"github.com/katalvlaran/pathfinder/render"
	"github.com/katalvlaran/pathfinder/resolve"
)

// errNoSolution makes main exit with status 2.
var errNoSolution = errors.New("no solution")

// solveOptions are the effective solve settings after config and flags merge.
type solveOptions struct {
	format   string
	maxSteps int
	trace    bool
	mark     bool
	draw     bool
}

var solveFlags solveOptions

var solveCmd = &cobra.Command{
	Use:   "solve FILE",
	Short: "Find a shortest route from Start to End",
	Long: `Decodes the labyrinth in FILE and searches it for a shortest route.
The route is printed as one coordinate tuple per line. Exit status 2 means
no route exists (or --max-steps was reached).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := mergeSolveOptions(cmd, cfg, solveFlags)
		return runSolve(cmd.Context(), args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	solveCmd.Flags().StringVar(&solveFlags.format, "format", formatAuto, "input format: text, yaml or auto")
	solveCmd.Flags().IntVar(&solveFlags.maxSteps, "max-steps", 0, "give up after N steps (0 = unlimited)")
	solveCmd.Flags().BoolVar(&solveFlags.trace, "trace", false, "draw every step to stderr")
	solveCmd.Flags().BoolVar(&solveFlags.mark, "mark", false, "print the text form with the route marked")
	solveCmd.Flags().BoolVar(&solveFlags.draw, "render", false, "draw the grid with the route marked")
}

// mergeSolveOptions layers explicitly set flags over config defaults.
func mergeSolveOptions(cmd *cobra.Command, c Config, f solveOptions) solveOptions {
	out := f
	if !cmd.Flags().Changed("format") {
		out.format = c.Format
	}
	if !cmd.Flags().Changed("max-steps") {
		out.maxSteps = c.MaxSteps
	}
	if !cmd.Flags().Changed("trace") {
		out.trace = c.Trace
	}
	return out
}

func runSolve(ctx context.Context, path string, opts solveOptions, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	g, t, err := loadPuzzle(path, opts.format)
	if err != nil {
		return err
	}
	// Resolve bans cells in place; keep the pristine grid for output.
	pristine := g.Clone()

	ropts := []resolve.Option{
		resolve.WithContext(ctx),
		resolve.WithLogger(logger),
		resolve.WithMaxSteps(opts.maxSteps),
	}
	if opts.trace {
		ropts = append(ropts, resolve.WithHook(render.TraceHook(errOut)))
	}

	res, err := resolve.Resolve(g, t, ropts...)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	logger.Info("resolve finished",
		zap.String("path", path),
		zap.Stringer("status", res.Status),
		zap.Stringer("reason", res.Reason),
		zap.Int("steps", res.Steps))

	if !res.Succeeded() {
		return fmt.Errorf("%w: %s after %d step(s)", errNoSolution, res.Reason, res.Steps)
	}

	route := res.Coords()
	for _, c := range route {
		fmt.Fprintln(out, c)
	}
	fmt.Fprintf(out, "length: %d\n", len(route))

	if opts.mark {
		marked := pristine.Clone()
		if err := marked.MarkSolution(route); err != nil {
			return fmt.Errorf("mark route: %w", err)
		}
		if err := codec.Write(out, marked, t); err != nil {
			return fmt.Errorf("write marked grid: %w", err)
		}
		fmt.Fprintln(out)
	}
	if opts.draw {
		s, err := render.New(out).Route(pristine, route)
		if err != nil {
			return fmt.Errorf("render route: %w", err)
		}
		fmt.Fprintln(out, s)
	}
	return nil
}
