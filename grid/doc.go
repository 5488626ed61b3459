// Package grid stores an N-dimensional labyrinth as a flat, row-major buffer
// of cell codes plus an explicit shape, and addresses it by stride arithmetic.
//
// What:
//
//   - Grid wraps a shape (one extent per dimension) and len(shape)-many strides
//     computed once at construction.
//   - Coordinates are plain []int vectors in grid-index order; a coordinate is
//     legal iff every component lies in [0, extent) of its dimension.
//   - Cells are small integer codes (Path, Wall, Start, End, Banned, Solution)
//     whose values are stable because they are persisted by package codec.
//   - The recursive nested form ([]any / [][]int / ...) is supported at the
//     edges: DimensionCount, ShapeOf, FlattenNested, UnflattenNested and
//     FromNested/Nested convert between it and the flat buffer.
//
// Why:
//
//   - Stride addressing has no recursion and makes legality a per-dimension
//     bounds comparison.
//   - A flat buffer is the natural input of the text codec (line 3 is exactly
//     Flatten()).
//
// Complexity:
//
//   - At, Set, Index, Legal: O(D) for D dimensions.
//   - FindStart, Count, Clone, Flatten: O(K) for K = product of extents.
//   - FromNested, FlattenNested: O(K) plus reflection overhead per leaf.
//
// Errors:
//
//   - ErrEmptyShape:        shape has no dimensions (or a nested level is empty).
//   - ErrBadExtent:         an extent is not strictly positive.
//   - ErrSizeMismatch:      cell count differs from the product of extents.
//   - ErrLeafGrid:          a bare leaf was given where a nested grid was expected.
//   - ErrNonRectangular:    siblings at one depth have different extents.
//   - ErrBadLeaf:           a nested leaf is not an integer.
//   - ErrOutOfRange:        a coordinate or index lies outside the grid.
//   - ErrDimensionMismatch: a coordinate has the wrong number of components
//     (returned together with ErrOutOfRange).
package grid
