// Package law holds per-dimension movement policies ("laws") and the
// adjacency generator that turns a coordinate plus a law table into the
// candidate next coordinates of a route.
//
// Laws
//
//   - Free:         move -1 or +1 (the default for any dimension without an entry).
//   - Blocked:      never move along this dimension.
//   - Forward:      move +1 only.
//   - Backward:     move -1 only.
//   - JumpForward:  an implicit +1 step is taken before enumeration, after which
//     the dimension is Blocked for that call. Models forward-flowing time.
//   - JumpBackward: as JumpForward with -1.
//
// Dimensions are numbered from 1. Table.NoBan disables the banning of visited
// cells performed by package frontier; it is required when a cell may be
// re-entered at a different time coordinate, and can make the search
// exponential.
//
// Adjacency
//
//	Adjacent(center, t, force) applies jump pre-steps, then enumerates
//	neighbors dimension by dimension (-1 before +1 for Free), prefixing the
//	jump-adjusted center itself unless force is true. Neighbors additionally
//	drops every candidate outside the grid. Neither function deduplicates, and
//	neither mutates its input coordinate.
//
// Complexity: O(D²) time and memory per call for D dimensions.
//
// Errors:
//
//   - ErrBadDimension: dimension number below 1.
//   - ErrUnknownLaw:   law value outside the six known kinds.
package law
