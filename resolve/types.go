package resolve

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pathfinder/frontier"
	"github.com/katalvlaran/pathfinder/grid"
	"github.com/katalvlaran/pathfinder/law"
)

// Sentinel errors for resolution.
var (
	// ErrGridNil is returned if a nil grid is passed to Resolve.
	ErrGridNil = errors.New("resolve: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("resolve: invalid option supplied")
)

// Status is the terminal state of a resolution.
type Status int

const (
	// Running is only observed by hooks; Resolve never returns it.
	Running Status = iota
	// Succeeded means a route to an End cell was found.
	Succeeded
	// Failed means no route was found; see Reason.
	Failed
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Reason explains a Failed status.
type Reason int

const (
	// NoReason accompanies Succeeded.
	NoReason Reason = iota
	// NoOrigin means the grid holds no Start cell.
	NoOrigin
	// Exhausted means every candidate route dead-ended.
	Exhausted
	// StepLimit means MaxSteps steps ran without reaching End.
	StepLimit
)

func (r Reason) String() string {
	switch r {
	case NoReason:
		return "none"
	case NoOrigin:
		return "no origin"
	case Exhausted:
		return "frontier exhausted"
	case StepLimit:
		return "step limit reached"
	}
	return fmt.Sprintf("reason(%d)", int(r))
}

// State is what a Hook sees before each step. Step counts completed steps.
type State struct {
	Step     int
	Grid     *grid.Grid
	Laws     law.Table
	Frontier frontier.Frontier
}

// Override carries optional replacements returned by a Hook.
// Nil fields leave the corresponding state unchanged.
type Override struct {
	Grid     *grid.Grid
	Laws     *law.Table
	Frontier *frontier.Frontier
}

// Hook is invoked synchronously before every step.
type Hook func(State) Override

// Option configures Resolve via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for one resolution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per step.
	Ctx context.Context

	// Hook runs before every step; the default returns an empty Override.
	Hook Hook

	// MaxSteps, if > 0, fails the run with StepLimit after that many steps.
	// 0 disables the limit.
	MaxSteps int

	// Logger receives debug-level step records.
	Logger *zap.Logger

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a no-op hook
//   - no step limit
//   - a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Hook:     func(State) Override { return Override{} },
		MaxSteps: 0,
		Logger:   zap.NewNop(),
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

// WithHook registers the per-step hook.
func WithHook(h Hook) Option {
	return func(o *Options) {
		if h != nil {
			o.Hook = h
		}
	}
}

// WithMaxSteps bounds the number of steps.
//
//	n > 0:  stop after n steps with StepLimit
//	n == 0: explicit no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLogger sets the logger used for step records.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the terminal output of Resolve.
type Result struct {
	Status Status
	Reason Reason

	// Path runs from the origin to the End cell inclusive; zero when Failed.
	Path frontier.Path

	// Steps is the number of frontier expansions performed.
	Steps int

	// Grid and Laws are the state in effect when the run ended, including
	// any banning and hook replacements.
	Grid *grid.Grid
	Laws law.Table
}

// Succeeded reports whether a route was found.
func (r *Result) Succeeded() bool { return r != nil && r.Status == Succeeded }

// Coords returns the route's coordinates, or nil when the run failed.
func (r *Result) Coords() []grid.Coord {
	if !r.Succeeded() {
		return nil
	}
	return r.Path.Coords()
}
