// Package resolve drives a labyrinth resolution: it locates the origin,
// repeatedly expands the frontier, and reports success or failure.
//
// What
//
//   - Resolve(g, laws, opts...) runs the step loop on g (mutated in place by
//     banning) and returns a Result with Status Succeeded or Failed.
//   - Before every step an optional Hook receives the current State and may
//     return an Override replacing the grid, the law table or the frontier.
//     Replacements take effect before that step executes.
//   - Failure is a value, not an error: Result.Reason tells NoOrigin,
//     Exhausted and StepLimit apart.
//
// States
//
//	Running ──step found End──▶ Succeeded (Path = origin … End)
//	   │
//	   ├─no Start cell─────────▶ Failed (NoOrigin)
//	   ├─empty next frontier───▶ Failed (Exhausted)
//	   └─MaxSteps reached──────▶ Failed (StepLimit)
//
// Aborting
//
//	A hook that returns an Override with an empty Frontier aborts the run: the
//	next step produces nothing and the driver reports Exhausted.
//
// Usage
//
//	res, err := resolve.Resolve(g, laws,
//	    resolve.WithContext(ctx),
//	    resolve.WithMaxSteps(10_000),
//	    resolve.WithLogger(logger),
//	    resolve.WithHook(func(s resolve.State) resolve.Override {
//	        fmt.Println(s.Step, len(s.Frontier))
//	        return resolve.Override{}
//	    }),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrOptionViolation, frontier.ErrStep or ctx.Err()
//	}
//	if res.Succeeded() {
//	    fmt.Println(res.Path)
//	}
//
// Concurrency
//
//	A resolution is single-threaded and owns its grid. The hook runs
//	synchronously and must not start another resolution on the same grid.
//	Distinct grids may be resolved from different goroutines.
//
// Complexity
//
//	Each step costs O(P·D²) for P live paths and D dimensions. With banning
//	enabled P is bounded by the number of free cells; with NoBan it can grow
//	exponentially, so bound it with WithMaxSteps or stricter laws.
package resolve
