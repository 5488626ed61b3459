// Package frontier implements the layered, multi-path expansion at the heart
// of the labyrinth solver.
//
// What
//
//   - Path is an immutable, append-only route. Extending a Path shares the
//     existing prefix, so branching never copies or aliases history.
//   - Frontier is the ordered set of Paths alive at the current depth.
//   - Step expands every Path by one coordinate:
//   - the first Path that sees an End neighbor wins immediately;
//   - every Path-cell neighbor becomes a new Path in the next Frontier;
//   - unless law.Table.NoBan is set, a claimed cell is rewritten to Banned on
//     the spot, so no two Paths claim the same cell in one step;
//   - Paths with no free or End neighbor are dropped.
//
// Why
//
//	All Paths advance together, one cell per step, so the first End found is
//	at minimum depth: the returned route is a shortest one in unit steps.
//
// Complexity (P = |Frontier|, D = dimensions)
//
//   - Step:   O(P·D²) time, O(P·D) new memory (prefixes are shared).
//   - Extend: O(D) time and memory.
//   - Coords: O(len) time and memory.
//
// Errors
//
//   - ErrNilGrid: Step received a nil grid.
//   - ErrStep:    a cell read failed, e.g. a Path from another grid's shape.
package frontier
