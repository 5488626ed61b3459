package resolve

import (
	"context"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/frontier"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/law"
)

// walker owns the mutable state of one resolution.
type walker struct {
	opts     Options
	ctx      context.Context
	log      *zap.Logger
	grid     *grid.Grid
	laws     law.Table
	frontier frontier.Frontier
	steps    int
}

// Resolve searches g for a shortest route from its first Start cell to any
// End cell under laws. g is mutated in place (banning) unless a hook swaps it.
//
// Returns ErrGridNil for a nil grid, ErrOptionViolation for bad options,
// frontier.ErrStep if a step cannot read the grid, or the context error on
// cancellation. Otherwise the outcome, success or failure, is in Result.
func Resolve(g *grid.Grid, laws law.Table, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		opts: o,
		ctx:  o.Ctx,
		log:  o.Logger,
		grid: g,
		laws: laws,
	}

	origin, ok := g.FindStart()
	if !ok {
		w.log.Debug("no start cell", zap.Ints("shape", g.Shape()))
		return w.fail(NoOrigin), nil
	}
	w.frontier = frontier.Frontier{frontier.NewPath(origin)}
	w.log.Debug("resolve started",
		zap.Ints("shape", g.Shape()),
		zap.Stringer("origin", origin),
		zap.Bool("no_ban", laws.NoBan))

	return w.loop()
}

// loop runs steps until a terminal state, an error or cancellation.
func (w *walker) loop() (*Result, error) {
	for {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}
		if w.opts.MaxSteps > 0 && w.steps >= w.opts.MaxSteps {
			return w.fail(StepLimit), nil
		}

		w.applyHook()

		res, err := frontier.Step(w.frontier, w.grid, w.laws)
		if err != nil {
			return nil, err
		}
		w.steps++
		w.log.Debug("step",
			zap.Int("step", w.steps),
			zap.Int("frontier", len(w.frontier)),
			zap.Int("claimed", res.Claimed),
			zap.Int("dropped", res.Dropped))

		if res.Found {
			return w.succeed(res.Solution), nil
		}
		if len(res.Next) == 0 {
			return w.fail(Exhausted), nil
		}
		w.frontier = res.Next
	}
}

// applyHook calls the hook and installs any replacements it returned.
func (w *walker) applyHook() {
	ov := w.opts.Hook(State{
		Step:     w.steps,
		Grid:     w.grid,
		Laws:     w.laws,
		Frontier: w.frontier,
	})
	if ov.Grid != nil {
		w.grid = ov.Grid
		w.log.Debug("hook replaced grid", zap.Int("step", w.steps))
	}
	if ov.Laws != nil {
		w.laws = *ov.Laws
		w.log.Debug("hook replaced laws", zap.Int("step", w.steps))
	}
	if ov.Frontier != nil {
		w.frontier = *ov.Frontier
		w.log.Debug("hook replaced frontier",
			zap.Int("step", w.steps), zap.Int("paths", len(w.frontier)))
	}
}

func (w *walker) succeed(p frontier.Path) *Result {
	w.log.Debug("resolve succeeded", zap.Int("steps", w.steps), zap.Int("length", p.Len()))
	return &Result{
		Status: Succeeded,
		Path:   p,
		Steps:  w.steps,
		Grid:   w.grid,
		Laws:   w.laws,
	}
}

func (w *walker) fail(r Reason) *Result {
	w.log.Debug("resolve failed", zap.Int("steps", w.steps), zap.Stringer("reason", r))
	return &Result{
		Status: Failed,
		Reason: r,
		Steps:  w.steps,
		Grid:   w.grid,
		Laws:   w.laws,
	}
}
